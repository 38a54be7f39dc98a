package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/speakpipe/speakpipe/internal/cli"
)

func TestShouldPrintUsageHint(t *testing.T) {
	t.Parallel()

	require.True(t, shouldPrintUsageHint(errors.New("unknown command \"bad\" for \"speakpipe\"")))
	require.True(t, shouldPrintUsageHint(errors.New("unknown flag: --oops")))
	require.True(t, shouldPrintUsageHint(errors.New("accepts 1 arg(s), received 0")))
	require.False(t, shouldPrintUsageHint(errors.New("fetch model \"whisper-small\": context deadline exceeded")))
	require.False(t, shouldPrintUsageHint(nil))
}

func TestHelpHintTarget(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd()
	require.Equal(t, "speakpipe", helpHintTarget(root, []string{"--badflag"}))
	require.Equal(t, "speakpipe", helpHintTarget(root, []string{"badcmd"}))
	require.Equal(t, "speakpipe transcribe", helpHintTarget(root, []string{"transcribe"}))
	require.Equal(t, "speakpipe listen", helpHintTarget(root, []string{"listen", "--no-paste"}))
}
