package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscribeRemoteEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transcribe/", r.URL.Path)
		require.Equal(t, "key123", r.Header.Get("X-API-Key"))

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "语音识别"}`))
	}))
	defer server.Close()

	clip := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(clip, []byte("fake"), 0o644))

	stdout, _, err := runCommand(t, []string{
		"transcribe", clip,
		"--remote",
		"--server", server.URL,
		"--api-key", "key123",
	})
	require.NoError(t, err)
	require.Contains(t, stdout, "语音识别")
}

func TestTranscribeRemoteSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model directory incomplete"}`))
	}))
	defer server.Close()

	clip := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(clip, []byte("fake"), 0o644))

	_, _, err := runCommand(t, []string{"transcribe", clip, "--remote", "--server", server.URL})
	require.ErrorContains(t, err, "model directory incomplete")
}

func TestTranscribeMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := runCommand(t, []string{"transcribe", filepath.Join(t.TempDir(), "nope.wav")})
	require.ErrorContains(t, err, "audio file not found")
}

func TestDoctorReportsSections(t *testing.T) {
	stdout, _, err := runCommand(t, []string{"doctor", "--model-dir", t.TempDir()})
	require.NoError(t, err)
	require.Contains(t, stdout, "model store")
	require.Contains(t, stdout, "engine runners")
	require.Contains(t, stdout, "GPU environment")
	require.Contains(t, stdout, "desktop tools")
}
