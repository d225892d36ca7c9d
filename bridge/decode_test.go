package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_Success(t *testing.T) {
	v, err := Result{Stdout: `{"percentage":87,"status":"CHARGING"}`}.DecodeJSON()
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(87), m["percentage"])
}

func TestDecodeJSON_Array(t *testing.T) {
	v, err := Result{Stdout: `[{"id":1}]`}.DecodeJSON()
	require.NoError(t, err)
	a, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, a, 1)
}

func TestDecodeJSON_NonZeroExit(t *testing.T) {
	_, err := Result{Stderr: "permission denied", ExitCode: 1}.DecodeJSON()
	require.Error(t, err)
	require.Contains(t, err.Error(), "permission denied")
}

func TestDecodeJSON_NoOutputSentinel(t *testing.T) {
	_, err := Result{ExitCode: 1}.DecodeJSON()
	require.ErrorIs(t, err, ErrNoOutput)

	// Zero exit with empty stdout is still no output
	_, err = Result{}.DecodeJSON()
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestDecodeJSON_MalformedIsError(t *testing.T) {
	_, err := Result{Stdout: "not json"}.DecodeJSON()
	require.Error(t, err)
}

func TestLenientJSON_FallsBackToRawText(t *testing.T) {
	v, err := Result{Stdout: "Recording in progress\n"}.LenientJSON()
	require.NoError(t, err)
	require.Equal(t, "Recording in progress\n", v)
}

func TestLenientJSON_ParsesWhenPossible(t *testing.T) {
	v, err := Result{Stdout: `{"isRecording":true}`}.LenientJSON()
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, m["isRecording"])
}

func TestLenientJSON_EmptyOutput(t *testing.T) {
	_, err := Result{ExitCode: 1, Stderr: "boom"}.LenientJSON()
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestText(t *testing.T) {
	out, err := Result{Stdout: "  clip  "}.Text(false)
	require.NoError(t, err)
	require.Equal(t, "  clip  ", out)

	out, err = Result{Stdout: "  clip  "}.Text(true)
	require.NoError(t, err)
	require.Equal(t, "clip", out)

	_, err = Result{ExitCode: 2, Stderr: "denied"}.Text(false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "denied")
}

func TestStatus(t *testing.T) {
	msg, err := Result{}.Status("brightness set")
	require.NoError(t, err)
	require.Equal(t, "brightness set", msg)

	_, err = Result{ExitCode: 1, Stderr: "permission denied"}.Status("brightness set")
	require.Error(t, err)
	require.Contains(t, err.Error(), "permission denied")
}
