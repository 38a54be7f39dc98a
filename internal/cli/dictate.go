package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/hotkey"
)

func newDictateCmd(app *appState) *cobra.Command {
	var keys string
	var mode string

	cmd := &cobra.Command{
		Use:   "dictate",
		Short: "Push-to-talk dictation gated by a global hotkey",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if keys != "" {
				app.cfg.Hotkey.Keys = strings.Split(keys, "+")
			}
			if mode != "" {
				app.cfg.Hotkey.Mode = mode
			}
			return app.runDictate(cmd.Context())
		},
	}

	bindClientFlags(cmd, app)
	bindCaptureFlags(cmd, app)
	cmd.Flags().StringVar(&keys, "hotkey", "", "Key combo, e.g. ctrl+shift+r")
	cmd.Flags().StringVar(&mode, "mode", "", "Hotkey mode: hold or toggle")
	cmd.Flags().BoolVar(&app.noPaste, "no-paste", false, "Copy transcripts instead of pasting them")

	return cmd
}

func (a *appState) runDictate(ctx context.Context) error {
	cfg := a.cfg

	mode, err := hotkey.ParseMode(cfg.Hotkey.Mode)
	if err != nil {
		return err
	}

	rec, err := a.newRecorderFn(cfg.Audio.SampleRate, cfg.Audio.Channels, cfg.Audio.Device)
	if err != nil {
		return fmt.Errorf("open capture device: %w", err)
	}
	defer rec.Close()

	listener := hotkey.NewListener(cfg.Hotkey.Keys, mode)
	go listener.Run()
	defer listener.Stop()

	dictateCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log().Info("ready; hold the hotkey to dictate, Ctrl-C to quit",
		zap.Strings("keys", cfg.Hotkey.Keys),
		zap.String("mode", string(mode)),
	)

	minDuration := time.Duration(cfg.VAD.MinSegmentMs) * time.Millisecond

	for {
		select {
		case <-dictateCtx.Done():
			a.log().Info("stopped dictation")
			return nil
		case ev, ok := <-listener.Events():
			if !ok {
				return nil
			}
			switch ev.Type {
			case hotkey.EventStart:
				if err := rec.Start(nil); err != nil {
					a.log().Warn("could not start capture", zap.Error(err))
				}
			case hotkey.EventStop:
				samples := rec.Stop()
				a.handleDictation(ctx, samples, minDuration)
			}
		}
	}
}

// handleDictation delivers one push-to-talk take. Takes shorter than the
// minimum are discarded as accidental key presses.
func (a *appState) handleDictation(ctx context.Context, samples []int16, minDuration time.Duration) {
	duration := time.Duration(len(samples)) * time.Second / time.Duration(a.cfg.Audio.SampleRate)
	if duration < minDuration {
		a.log().Debug("discarding short take", zap.Duration("duration", duration), zap.Duration("minimum", minDuration))
		return
	}

	wavPath, err := a.writeSegmentWAV(samples)
	if err != nil {
		a.log().Warn("could not spool recording", zap.Error(err))
		return
	}
	defer os.Remove(wavPath)

	transcript, err := a.transcribeFn(ctx, wavPath)
	if err != nil {
		a.log().Warn("transcription failed", zap.Error(err))
		return
	}

	if err := a.deliverTranscript(ctx, transcript); err != nil {
		a.log().Warn("could not deliver transcript", zap.Error(err))
	}
}
