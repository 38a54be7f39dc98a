package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArch(t *testing.T) {
	t.Parallel()

	require.Equal(t, "amd64", NormalizeArch("x86_64"))
	require.Equal(t, "arm64", NormalizeArch("aarch64"))
	require.Equal(t, "amd64", NormalizeArch("amd64"))
	require.Equal(t, "riscv64", NormalizeArch("riscv64"))
}

func TestDefaultModelDirForLinux(t *testing.T) {
	t.Parallel()

	dir, err := DefaultModelDirFor("linux", "/home/u", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/u", ".local", "share", "speakpipe", "models"), dir)

	dir, err = DefaultModelDirFor("linux", "/home/u", "/custom/data")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/custom/data", "speakpipe", "models"), dir)
}

func TestDefaultModelDirForDarwin(t *testing.T) {
	t.Parallel()

	dir, err := DefaultModelDirFor("darwin", "/Users/u", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/Users/u", "Library", "Application Support", "speakpipe", "models"), dir)
}

func TestDefaultModelDirUnsupportedOS(t *testing.T) {
	t.Parallel()

	_, err := DefaultModelDirFor("plan9", "/home/u", "")
	require.Error(t, err)
}

func TestDefaultConfigPathFor(t *testing.T) {
	t.Parallel()

	path, err := DefaultConfigPathFor("linux", "/home/u", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/u", ".config", "speakpipe", "config.yaml"), path)

	path, err = DefaultConfigPathFor("linux", "/home/u", "/cfg")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/cfg", "speakpipe", "config.yaml"), path)

	_, err = DefaultConfigPathFor("linux", "", "")
	require.Error(t, err)
}

func TestResolveModelDirHonorsOverride(t *testing.T) {
	t.Parallel()

	dir, err := ResolveModelDir("/opt/models/")
	require.NoError(t, err)
	require.Equal(t, filepath.Clean("/opt/models"), dir)
}
