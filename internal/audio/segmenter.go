package audio

import "time"

// SegmenterConfig tunes the voice-activity segmentation of a continuous
// capture stream.
type SegmenterConfig struct {
	SampleRate int
	// VoiceThresholdDBFS is the RMS level a frame must reach to count as
	// speech.
	VoiceThresholdDBFS float64
	// SilenceHold is how long the signal must stay below the threshold
	// before an open segment closes.
	SilenceHold time.Duration
	// MinDuration discards segments shorter than this.
	MinDuration time.Duration
}

// DefaultSegmenterConfig mirrors the dictation defaults: a segment closes
// after half a second of silence and no minimum length is enforced.
func DefaultSegmenterConfig(sampleRate int) SegmenterConfig {
	return SegmenterConfig{
		SampleRate:         sampleRate,
		VoiceThresholdDBFS: -40,
		SilenceHold:        500 * time.Millisecond,
		MinDuration:        0,
	}
}

// Segment is a run of consecutive speech samples cut from the stream.
type Segment struct {
	Index    int
	Samples  []int16
	Duration time.Duration
}

// Segmenter slices a capture stream into speech segments. Feed it frames
// in capture order; time is tracked by sample count, so results are
// deterministic and independent of wall-clock scheduling.
//
// A segment opens on the first frame whose RMS level clears the voice
// threshold, collects every following frame, and closes once the level
// has stayed below the threshold for SilenceHold. Segments shorter than
// MinDuration are discarded.
type Segmenter struct {
	cfg SegmenterConfig

	buf            []int16
	active         bool
	silenceSamples int
	nextIndex      int
}

func NewSegmenter(cfg SegmenterConfig) *Segmenter {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	return &Segmenter{cfg: cfg, nextIndex: 1}
}

// Feed processes one frame and returns a completed segment, or nil while
// a segment is still open or no speech has started.
func (s *Segmenter) Feed(frame []int16) *Segment {
	if len(frame) == 0 {
		return nil
	}

	voiced := Measure(frame).RMSdBFS >= s.cfg.VoiceThresholdDBFS

	if !s.active {
		if !voiced {
			return nil
		}
		s.active = true
		s.silenceSamples = 0
		s.buf = append(s.buf[:0], frame...)
		return nil
	}

	s.buf = append(s.buf, frame...)

	if voiced {
		s.silenceSamples = 0
		return nil
	}

	s.silenceSamples += len(frame)
	if s.silenceDuration() < s.cfg.SilenceHold {
		return nil
	}

	return s.closeSegment()
}

// Flush closes and returns the in-flight segment, if any. Call on
// shutdown so trailing speech is not lost.
func (s *Segmenter) Flush() *Segment {
	if !s.active {
		return nil
	}
	return s.closeSegment()
}

// Active reports whether a segment is currently open.
func (s *Segmenter) Active() bool {
	return s.active
}

func (s *Segmenter) closeSegment() *Segment {
	samples := make([]int16, len(s.buf))
	copy(samples, s.buf)

	s.active = false
	s.buf = s.buf[:0]
	s.silenceSamples = 0

	duration := samplesToDuration(len(samples), s.cfg.SampleRate)
	if duration < s.cfg.MinDuration {
		return nil
	}

	seg := &Segment{
		Index:    s.nextIndex,
		Samples:  samples,
		Duration: duration,
	}
	s.nextIndex++
	return seg
}

func (s *Segmenter) silenceDuration() time.Duration {
	return samplesToDuration(s.silenceSamples, s.cfg.SampleRate)
}

func samplesToDuration(samples, sampleRate int) time.Duration {
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}
