package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

func TestVolumeHandler(t *testing.T) {
	t.Run("no arguments reads every stream", func(t *testing.T) {
		r := &fakeRunner{res: bridge.Result{Stdout: `[{"stream": "music", "volume": 5}]`}}
		_, h := volumeTool(r)

		res, err := h(context.Background(), callReq(nil))
		require.NoError(t, err)
		require.JSONEq(t, `[{"stream":"music","volume":5}]`, textOf(t, res))
		require.Equal(t, [][]string{{"termux-volume"}}, r.calls)
	})

	t.Run("stream alone reads that stream", func(t *testing.T) {
		r := &fakeRunner{res: bridge.Result{Stdout: `{"stream": "ring"}`}}
		_, h := volumeTool(r)

		res, err := h(context.Background(), callReq(map[string]any{"stream": "ring"}))
		require.NoError(t, err)
		require.JSONEq(t, `{"stream":"ring"}`, textOf(t, res))
		require.Equal(t, [][]string{{"termux-volume", "ring"}}, r.calls)
	})

	t.Run("stream and volume set the level", func(t *testing.T) {
		r := &fakeRunner{}
		_, h := volumeTool(r)

		res, err := h(context.Background(), callReq(map[string]any{
			"stream": "music",
			"volume": float64(0),
		}))
		require.NoError(t, err)
		require.Equal(t, "music volume set to 0", textOf(t, res))
		require.Equal(t, [][]string{{"termux-volume", "music", "0"}}, r.calls)
	})
}
