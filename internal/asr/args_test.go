package asr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhisperCPPArgs(t *testing.T) {
	t.Parallel()

	args := whisperCPPArgs("/models/ggml.bin", "/tmp/a.wav", "/tmp/out", "zh")
	require.Equal(t, []string{"-m", "/models/ggml.bin", "-f", "/tmp/a.wav", "-nt", "-otxt", "-of", "/tmp/out", "-l", "zh"}, args)

	args = whisperCPPArgs("/models/ggml.bin", "/tmp/a.wav", "/tmp/out", "auto")
	require.NotContains(t, args, "-l")
}

func TestFasterWhisperArgs(t *testing.T) {
	t.Parallel()

	args := fasterWhisperArgs("/models/ct2", "/tmp/a.wav", "/tmp/out", "zh", "cpu")
	require.Equal(t, "/tmp/a.wav", args[0])
	require.Contains(t, args, "--model_directory")
	require.Contains(t, args, "/models/ct2")
	require.Contains(t, args, "--language")
	require.Contains(t, args, "zh")
	require.Contains(t, args, "--initial_prompt")
	require.Contains(t, args, mandarinPrompt)

	args = fasterWhisperArgs("/models/ct2", "/tmp/a.wav", "/tmp/out", "en", "cuda")
	require.NotContains(t, args, "--initial_prompt")
	require.Contains(t, args, "cuda")
}

func TestParaformerArgs(t *testing.T) {
	t.Parallel()

	args := paraformerArgs("/models/pf", "/tmp/a.wav", "/tmp/out")
	require.Equal(t, []string{
		"++model=/models/pf",
		"++input=/tmp/a.wav",
		"++output_dir=/tmp/out",
		"++disable_update=true",
	}, args)
}

func TestReadFunASRTranscript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "text")
	content := "utt-0 今天天气不错\nutt-1 我们出去走走\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := readFunASRTranscript(path)
	require.NoError(t, err)
	require.Equal(t, "今天天气不错 我们出去走走", text)
}

func TestReadFunASRTranscriptMissingFile(t *testing.T) {
	t.Parallel()

	_, err := readFunASRTranscript(filepath.Join(t.TempDir(), "nope"))
	require.ErrorContains(t, err, "read recognition output")
}
