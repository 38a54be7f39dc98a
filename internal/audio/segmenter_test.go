package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testRate = 16000

// toneFrame synthesizes n samples of a loud sine wave.
func toneFrame(n int) []int16 {
	frame := make([]int16, n)
	for i := range frame {
		frame[i] = int16(20000 * math.Sin(2*math.Pi*440*float64(i)/testRate))
	}
	return frame
}

func silentFrame(n int) []int16 {
	return make([]int16, n)
}

// quietFrame synthesizes a low-level hum well under the default voice
// threshold.
func quietFrame(n int) []int16 {
	frame := make([]int16, n)
	for i := range frame {
		frame[i] = int16(100 * math.Sin(2*math.Pi*50*float64(i)/testRate))
	}
	return frame
}

// The activity decision is a single RMS energy gate: a segment opens on
// the first frame whose level clears the voice threshold, and sub-threshold
// signal does not count as speech no matter how long it runs.
func TestSegmenterGatesOnRMSLevelOnly(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(DefaultSegmenterConfig(testRate))

	for i := 0; i < 100; i++ {
		require.Nil(t, seg.Feed(quietFrame(480)))
	}
	require.False(t, seg.Active())

	require.Nil(t, seg.Feed(toneFrame(480)))
	require.True(t, seg.Active())
}

func TestSegmenterIgnoresLeadingSilence(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(DefaultSegmenterConfig(testRate))

	for i := 0; i < 50; i++ {
		require.Nil(t, seg.Feed(silentFrame(480)))
	}
	require.False(t, seg.Active())
}

func TestSegmenterEmitsAfterSilenceHold(t *testing.T) {
	t.Parallel()

	cfg := DefaultSegmenterConfig(testRate)
	cfg.SilenceHold = 500 * time.Millisecond
	seg := NewSegmenter(cfg)

	// One second of speech.
	voicedFrames := testRate / 480
	for i := 0; i < voicedFrames; i++ {
		require.Nil(t, seg.Feed(toneFrame(480)))
	}
	require.True(t, seg.Active())

	// Feed silence until the hold elapses. 500ms at 16kHz is 8000
	// samples; frames of 480 samples cross it on the 17th frame.
	var got *Segment
	for i := 0; i < 20 && got == nil; i++ {
		got = seg.Feed(silentFrame(480))
	}

	require.NotNil(t, got)
	require.Equal(t, 1, got.Index)
	require.False(t, seg.Active())
	// Segment includes the speech plus the trailing silence frames.
	require.GreaterOrEqual(t, got.Duration, time.Second)
}

func TestSegmenterDiscardsShortSegments(t *testing.T) {
	t.Parallel()

	cfg := DefaultSegmenterConfig(testRate)
	cfg.MinDuration = 2 * time.Second
	seg := NewSegmenter(cfg)

	for i := 0; i < 10; i++ {
		require.Nil(t, seg.Feed(toneFrame(480)))
	}
	got := seg.Flush()
	require.Nil(t, got)
	require.False(t, seg.Active())
}

func TestSegmenterVoiceResetsSilenceRun(t *testing.T) {
	t.Parallel()

	cfg := DefaultSegmenterConfig(testRate)
	cfg.SilenceHold = 300 * time.Millisecond
	seg := NewSegmenter(cfg)

	require.Nil(t, seg.Feed(toneFrame(480)))

	// Silence just short of the hold, then speech again.
	for i := 0; i < 9; i++ {
		require.Nil(t, seg.Feed(silentFrame(480)))
	}
	require.Nil(t, seg.Feed(toneFrame(480)))
	require.True(t, seg.Active())

	// Now a full silence run closes it.
	var got *Segment
	for i := 0; i < 15 && got == nil; i++ {
		got = seg.Feed(silentFrame(480))
	}
	require.NotNil(t, got)
}

func TestSegmenterNumbersSegmentsSequentially(t *testing.T) {
	t.Parallel()

	cfg := DefaultSegmenterConfig(testRate)
	cfg.SilenceHold = 100 * time.Millisecond
	seg := NewSegmenter(cfg)

	emit := func() *Segment {
		seg.Feed(toneFrame(4800))
		var got *Segment
		for i := 0; i < 10 && got == nil; i++ {
			got = seg.Feed(silentFrame(480))
		}
		return got
	}

	first := emit()
	second := emit()
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.Equal(t, 1, first.Index)
	require.Equal(t, 2, second.Index)
}

func TestSegmenterFlushReturnsTrailingSpeech(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(DefaultSegmenterConfig(testRate))
	seg.Feed(toneFrame(4800))

	got := seg.Flush()
	require.NotNil(t, got)
	require.Len(t, got.Samples, 4800)
	require.Nil(t, seg.Flush(), "second flush has nothing to emit")
}
