package modelstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTransport answers every request with a fixed body and keeps
// the requested paths.
type recordingTransport struct {
	mu    sync.Mutex
	body  string
	paths []string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.paths = append(rt.paths, req.URL.Path)
	rt.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Header:     make(http.Header),
	}, nil
}

func (rt *recordingTransport) requested() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.paths...)
}

func TestFetchRefusesManualModels(t *testing.T) {
	t.Parallel()

	_, err := Fetch(context.Background(), t.TempDir(), BackendParaformer, "", FetchOptions{NoProgress: true})
	require.ErrorContains(t, err, "cannot be downloaded automatically")
	require.ErrorContains(t, err, "model.pt")
}

func TestFetchSkipsCompleteModels(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	model, err := Lookup(BackendFasterWhisper, "")
	require.NoError(t, err)

	dir := ModelDir(root, model)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range model.Files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.Name), []byte("x"), 0o644))
	}

	transport := &recordingTransport{body: "x"}
	resolved, err := Fetch(context.Background(), root, BackendFasterWhisper, "", FetchOptions{
		NoProgress: true,
		HTTPClient: &http.Client{Transport: transport},
	})
	require.NoError(t, err)
	require.True(t, resolved.Ready())
	require.Empty(t, transport.requested())
}

func TestFetchReplacesCorruptChecksummedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	model, err := Lookup(BackendWhisper, "whisper-small")
	require.NoError(t, err)

	dir := ModelDir(root, model)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	corruptPath := filepath.Join(dir, model.Files[0].Name)
	require.NoError(t, os.WriteFile(corruptPath, []byte("not the model"), 0o644))

	// The replacement download serves wrong bytes too, so the fetch must
	// end in a checksum error rather than silently accepting them.
	transport := &recordingTransport{body: "still not the model"}
	_, err = Fetch(context.Background(), root, BackendWhisper, "whisper-small", FetchOptions{
		NoProgress: true,
		HTTPClient: &http.Client{Transport: transport},
	})
	require.ErrorContains(t, err, "checksum mismatch")
	require.NotEmpty(t, transport.requested())
	require.Contains(t, transport.requested()[0], "ggml-small.bin")

	// The corrupt file was removed and the failed replacement never
	// landed on the final path.
	_, statErr := os.Stat(corruptPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestVerifyChecksums(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := []byte("good payload")
	goodSum := sha256.Sum256(good)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.bin"), good, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.bin"), []byte("tampered"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unchecked.bin"), []byte("anything"), 0o644))

	resolved := Resolved{
		Model: Model{
			Name:    "verify-model",
			Backend: BackendWhisper,
			Files: []File{
				{Name: "good.bin", SHA256: hex.EncodeToString(goodSum[:])},
				{Name: "bad.bin", SHA256: hex.EncodeToString(goodSum[:])},
				{Name: "unchecked.bin"},
				{Name: "absent.bin", SHA256: hex.EncodeToString(goodSum[:])},
			},
		},
		Dir:     dir,
		Missing: []string{"absent.bin"},
	}

	require.Equal(t, []string{"bad.bin"}, verifyChecksums(resolved))
}
