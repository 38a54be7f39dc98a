package asr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	_, err := New("bogus", Options{})
	require.ErrorContains(t, err, "unknown engine")
	require.ErrorContains(t, err, "paraformer-onnx")
}

func TestNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"faster-whisper", "openai", "paraformer", "paraformer-onnx", "whisper"}, Names())
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := New("openai", Options{})
	require.ErrorContains(t, err, "API key")
}

func TestNewLocalEngineRequiresModel(t *testing.T) {
	// Local engines check the model store before touching PATH or not,
	// depending on the backend; either failure is acceptable here, the
	// point is that construction does not succeed on an empty store.
	_, err := New("paraformer-onnx", Options{ModelRoot: t.TempDir()})
	require.Error(t, err)
}

func TestPickLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "zh", pickLanguage("zh", "en"))
	require.Equal(t, "en", pickLanguage("", "en"))
	require.Equal(t, "", pickLanguage("", ""))
}
