package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/audio"
)

func newListenCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Continuous dictation: voice-activated segments pasted at the cursor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runListen(cmd.Context())
		},
	}

	bindClientFlags(cmd, app)
	bindCaptureFlags(cmd, app)
	cmd.Flags().BoolVar(&app.noPaste, "no-paste", false, "Copy transcripts instead of pasting them")

	return cmd
}

func (a *appState) runListen(ctx context.Context) error {
	cfg := a.cfg

	rec, err := a.newRecorderFn(cfg.Audio.SampleRate, cfg.Audio.Channels, cfg.Audio.Device)
	if err != nil {
		return fmt.Errorf("open capture device: %w", err)
	}
	defer rec.Close()

	segmenter := audio.NewSegmenter(audio.SegmenterConfig{
		SampleRate:         int(cfg.Audio.SampleRate),
		VoiceThresholdDBFS: cfg.VAD.ThresholdDBFS,
		SilenceHold:        time.Duration(cfg.VAD.SilenceHoldMs) * time.Millisecond,
		MinDuration:        time.Duration(cfg.VAD.MinSegmentMs) * time.Millisecond,
	})

	// The capture callback owns the segmenter; segments cross to the
	// main loop over this channel.
	segments := make(chan *audio.Segment, 4)
	sink := func(frame []int16) {
		if seg := segmenter.Feed(frame); seg != nil {
			select {
			case segments <- seg:
			default:
				a.log().Warn("dropping speech segment; transcription is falling behind", zap.Int("segment", seg.Index))
			}
		}
	}

	if err := rec.Start(sink); err != nil {
		return fmt.Errorf("start capture: %w", err)
	}

	listenCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log().Info("listening; speak and pause to dictate, Ctrl-C to stop",
		zap.Float64("threshold_dbfs", cfg.VAD.ThresholdDBFS),
		zap.Int("silence_hold_ms", cfg.VAD.SilenceHoldMs),
	)

	for {
		select {
		case seg := <-segments:
			a.handleSegment(ctx, seg)
		case <-listenCtx.Done():
			rec.Stop()
			// the segment cut off by the interrupt still gets delivered
			if seg := segmenter.Flush(); seg != nil {
				a.handleSegment(ctx, seg)
			}
			for {
				select {
				case seg := <-segments:
					a.handleSegment(ctx, seg)
				default:
					a.log().Info("stopped listening")
					return nil
				}
			}
		}
	}
}

// handleSegment transcribes one speech segment and delivers the result.
// Per-segment failures are logged, not fatal: dictation keeps running.
func (a *appState) handleSegment(ctx context.Context, seg *audio.Segment) {
	a.log().Debug("processing segment", zap.Int("segment", seg.Index), zap.Duration("duration", seg.Duration))

	wavPath, err := a.writeSegmentWAV(seg.Samples)
	if err != nil {
		a.log().Warn("could not spool segment", zap.Int("segment", seg.Index), zap.Error(err))
		return
	}
	defer os.Remove(wavPath)

	transcript, err := a.transcribeFn(ctx, wavPath)
	if err != nil {
		a.log().Warn("segment transcription failed", zap.Int("segment", seg.Index), zap.Error(err))
		return
	}

	if err := a.deliverTranscript(ctx, transcript); err != nil {
		a.log().Warn("could not deliver transcript", zap.Int("segment", seg.Index), zap.Error(err))
	}
}
