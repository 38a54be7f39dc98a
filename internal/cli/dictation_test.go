package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/speakpipe/speakpipe/internal/audio"
	"github.com/speakpipe/speakpipe/internal/config"
)

func dictationApp(transcript string, transcribeErr error) (*appState, *bytes.Buffer, *[]string) {
	out := new(bytes.Buffer)
	var delivered []string
	app := &appState{
		cfg: config.Default(),
		out: out,
		transcribeFn: func(context.Context, string) (string, error) {
			return transcript, transcribeErr
		},
		pasteFn: func(_ context.Context, v string) error {
			delivered = append(delivered, v)
			return nil
		},
		copyFn: func(context.Context, string) error { return nil },
	}
	return app, out, &delivered
}

func speechSamples(d time.Duration) []int16 {
	n := int(d.Seconds() * 16000)
	samples := make([]int16, n)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 12000
		} else {
			samples[i] = -12000
		}
	}
	return samples
}

func TestHandleSegmentDeliversTranscript(t *testing.T) {
	t.Parallel()

	app, out, delivered := dictationApp("今天天气不错", nil)

	seg := &audio.Segment{Index: 1, Samples: speechSamples(time.Second), Duration: time.Second}
	app.handleSegment(context.Background(), seg)

	require.Contains(t, out.String(), "今天天气不错")
	require.Equal(t, []string{"今天天气不错"}, *delivered)
}

func TestHandleSegmentSurvivesTranscriptionFailure(t *testing.T) {
	t.Parallel()

	app, out, delivered := dictationApp("", errors.New("server down"))

	seg := &audio.Segment{Index: 1, Samples: speechSamples(time.Second), Duration: time.Second}
	app.handleSegment(context.Background(), seg)

	require.Empty(t, out.String())
	require.Empty(t, *delivered)
}

func TestHandleDictationDiscardsShortTakes(t *testing.T) {
	t.Parallel()

	app, out, delivered := dictationApp("should not appear", nil)

	app.handleDictation(context.Background(), speechSamples(100*time.Millisecond), 300*time.Millisecond)

	require.Empty(t, out.String())
	require.Empty(t, *delivered)
}

func TestHandleDictationTranscribesLongTakes(t *testing.T) {
	t.Parallel()

	app, _, delivered := dictationApp("我们出去走走", nil)

	app.handleDictation(context.Background(), speechSamples(time.Second), 300*time.Millisecond)

	require.Equal(t, []string{"我们出去走走"}, *delivered)
}

func TestWriteSegmentWAVRejectsEmpty(t *testing.T) {
	t.Parallel()

	app := &appState{cfg: config.Default()}
	_, err := app.writeSegmentWAV(nil)
	require.ErrorContains(t, err, "no audio captured")
}
