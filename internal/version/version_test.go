package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveVersionOutsideGitRepo(t *testing.T) {
	t.Parallel()

	git := func(args ...string) (string, error) {
		return "", errors.New("not a git repository")
	}

	require.Equal(t, "1.2.3", resolveVersion("1.2.3", git))
}

func TestResolveVersionOnExactTag(t *testing.T) {
	t.Parallel()

	git := func(args ...string) (string, error) {
		switch args[0] {
		case "rev-parse":
			return ".git", nil
		case "describe":
			return "v1.2.3", nil
		}
		return "", errors.New("unexpected git call")
	}

	require.Equal(t, "1.2.3", resolveVersion("1.2.3", git))
}

func TestResolveVersionBetweenTags(t *testing.T) {
	t.Parallel()

	calls := 0
	git := func(args ...string) (string, error) {
		calls++
		switch {
		case args[0] == "rev-parse":
			return ".git", nil
		case args[0] == "describe" && len(args) == 3:
			return "", errors.New("no exact match")
		default:
			return "v1.2.3-4-gabcdef0", nil
		}
	}

	require.Equal(t, "1.2.3-4-gabcdef0", resolveVersion("1.2.3", git))
	require.Equal(t, 3, calls)
}

func TestResolveVersionEmptyBaseFallsBack(t *testing.T) {
	t.Parallel()

	git := func(args ...string) (string, error) {
		return "", errors.New("no git")
	}

	require.Equal(t, "0.0.0", resolveVersion("", git))
}
