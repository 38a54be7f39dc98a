package modelstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupDefaultsToFirstModel(t *testing.T) {
	t.Parallel()

	model, err := Lookup(BackendWhisper, "")
	require.NoError(t, err)
	require.Equal(t, "whisper-large-v3-turbo", model.Name)
	require.Equal(t, BackendWhisper, model.Backend)
}

func TestLookupRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := Lookup(BackendWhisper, "no-such-model")
	require.ErrorContains(t, err, "unknown model")
	require.ErrorContains(t, err, "whisper-large-v3-turbo")

	_, err = Lookup(Backend("bogus"), "")
	require.ErrorContains(t, err, "unknown backend")
}

func TestResolveReportsMissingFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	resolved, err := Resolve(root, BackendFasterWhisper, "")
	require.NoError(t, err)
	require.False(t, resolved.Ready())
	require.Len(t, resolved.Missing, 4)
	require.Contains(t, resolved.Missing, "model.bin")
	require.Equal(t, filepath.Join(root, "faster-whisper", "faster-whisper-large-v3-turbo-ct2"), resolved.Dir)
}

func TestRequireSucceedsWhenComplete(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	model, err := Lookup(BackendWhisper, "whisper-small")
	require.NoError(t, err)

	dir := ModelDir(root, model)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range model.Files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.Name), []byte("x"), 0o644))
	}

	resolved, err := Require(root, BackendWhisper, "whisper-small")
	require.NoError(t, err)
	require.True(t, resolved.Ready())
	require.Equal(t, dir, resolved.Dir)
}

func TestRequireNamesTheGaps(t *testing.T) {
	t.Parallel()

	_, err := Require(t.TempDir(), BackendParaformerONNX, "")
	require.ErrorIs(t, err, ErrModelIncomplete)
	require.ErrorContains(t, err, "model.int8.onnx")
	require.ErrorContains(t, err, "tokens.txt")
}

func TestDownloadable(t *testing.T) {
	t.Parallel()

	whisper, err := Lookup(BackendWhisper, "")
	require.NoError(t, err)
	require.True(t, whisper.Downloadable())

	paraformer, err := Lookup(BackendParaformer, "")
	require.NoError(t, err)
	require.False(t, paraformer.Downloadable())
}
