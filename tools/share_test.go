package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShareHandler(t *testing.T) {
	t.Run("file path wins over content", func(t *testing.T) {
		r := &fakeRunner{}
		_, h := shareTool(r)

		res, err := h(context.Background(), callReq(map[string]any{
			"file_path": "/sdcard/report.pdf",
			"content":   "ignored",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.Len(t, r.calls, 1)
		require.Contains(t, r.calls[0], "/sdcard/report.pdf")
		require.Equal(t, []string{""}, r.inputs)
	})

	t.Run("content is piped", func(t *testing.T) {
		r := &fakeRunner{}
		_, h := shareTool(r)

		res, err := h(context.Background(), callReq(map[string]any{"content": "note text"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.Equal(t, []string{"note text"}, r.inputs)
	})

	t.Run("neither argument is an error", func(t *testing.T) {
		r := &fakeRunner{}
		_, h := shareTool(r)

		res, err := h(context.Background(), callReq(nil))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Empty(t, r.calls)
	})
}
