package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAndReadBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := toneFrame(testRate / 2)
	require.NoError(t, WriteFile(path, samples, testRate, 1))

	got, rate, err := ReadFilePCM16(path)
	require.NoError(t, err)
	require.Equal(t, testRate, rate)
	require.Equal(t, samples, got)
}

func TestMarshalMatchesFileEncoding(t *testing.T) {
	t.Parallel()

	samples := toneFrame(2048)
	data, err := Marshal(samples, testRate, 1)
	require.NoError(t, err)
	require.Equal(t, "RIFF", string(data[:4]))
	require.Equal(t, "WAVE", string(data[8:12]))

	path := filepath.Join(t.TempDir(), "marshal.wav")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, rate, err := ReadFilePCM16(path)
	require.NoError(t, err)
	require.Equal(t, testRate, rate)
	require.Equal(t, samples, got)
}

func TestReadFileNormalizesToFloat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "peak.wav")
	require.NoError(t, WriteFile(path, []int16{32767, 0, -32768}, testRate, 1))

	samples, rate, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, testRate, rate)
	require.Len(t, samples, 3)
	require.InDelta(t, 1.0, samples[0], 0.001)
	require.InDelta(t, 0.0, samples[1], 0.001)
	require.InDelta(t, -1.0, samples[2], 0.001)
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
}
