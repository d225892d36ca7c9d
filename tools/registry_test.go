package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 38)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		require.False(t, seen[n], "duplicate tool name %q", n)
		seen[n] = true
	}
	require.Contains(t, names, "termux_battery_status")
	require.Contains(t, names, "termux_wifi_scaninfo")
}

func TestSelectTools(t *testing.T) {
	r := &fakeRunner{}

	t.Run("nil allow list selects everything", func(t *testing.T) {
		sel, err := selectTools(r, nil)
		require.NoError(t, err)
		require.Len(t, sel, len(registry))
	})

	t.Run("allow list filters and keeps order", func(t *testing.T) {
		sel, err := selectTools(r, []string{"termux_torch", "termux_battery_status"})
		require.NoError(t, err)
		require.Len(t, sel, 2)
		require.Equal(t, "termux_battery_status", sel[0].tool.Name)
		require.Equal(t, "termux_torch", sel[1].tool.Name)
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := selectTools(r, []string{"termux_battery_status", "termux_bogus"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "termux_bogus")
	})
}
