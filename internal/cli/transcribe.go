package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/asr"
	"github.com/speakpipe/speakpipe/internal/audio"
	"github.com/speakpipe/speakpipe/internal/client"
	"github.com/speakpipe/speakpipe/internal/zhconv"
)

func newTranscribeCmd(app *appState) *cobra.Command {
	var copyToClipboard bool
	var remote bool

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file with the configured engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath := filepath.Clean(args[0])
			if _, err := os.Stat(audioPath); err != nil {
				return fmt.Errorf("audio file not found: %w", err)
			}

			var transcript string
			var err error
			if remote {
				transcript, err = app.transcribeRemote(cmd.Context(), audioPath)
			} else {
				transcript, err = app.transcribeLocal(cmd.Context(), audioPath)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), transcript)
			if isBlankTranscript(transcript) {
				app.log().Warn(noSpeechHint())
				return nil
			}

			if copyToClipboard {
				if err := app.copyFn(cmd.Context(), transcript); err != nil {
					return err
				}
				app.log().Info("transcript copied to clipboard")
			}
			return nil
		},
	}

	bindEngineFlags(cmd, app)
	bindClientFlags(cmd, app)
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy transcript to clipboard")
	cmd.Flags().BoolVar(&remote, "remote", false, "Send audio to the server instead of running a local engine")

	return cmd
}

// transcribeLocal runs the configured engine in-process.
func (a *appState) transcribeLocal(ctx context.Context, audioPath string) (string, error) {
	engine, err := a.buildEngine()
	if err != nil {
		return "", err
	}

	// Gate WAV input on the silence threshold so a muted mic does not
	// burn an engine invocation. Other containers go straight through.
	if strings.EqualFold(filepath.Ext(audioPath), ".wav") {
		if silent, metrics, err := audio.IsSilentWAV(audioPath, a.cfg.VAD.ThresholdDBFS); err == nil && silent {
			a.log().Warn("input is silent, skipping engine",
				zap.Float64("peak_dbfs", metrics.PeakdBFS),
				zap.Float64("threshold_dbfs", a.cfg.VAD.ThresholdDBFS),
			)
			return blankAudioToken, nil
		}
	}

	a.log().Info("transcribing...",
		zap.String("audio", audioPath),
		zap.String("engine", engine.Name()),
		zap.String("language", a.cfg.Engine.Language),
	)
	stopSpinner := startSpinner(a.progressEnabled(), "Transcribing")
	started := time.Now()

	result, err := engine.Transcribe(ctx, asr.Request{AudioPath: audioPath})
	stopSpinner()
	if err != nil {
		a.log().Warn("transcription failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return "", err
	}
	a.log().Info("transcription finished", zap.Duration("elapsed", time.Since(started)))

	text := result.Text
	if a.cfg.Engine.Simplify {
		text = zhconv.Convert(text)
	}
	return text, nil
}

// transcribeRemote uploads the file to the transcription server.
func (a *appState) transcribeRemote(ctx context.Context, audioPath string) (string, error) {
	c := client.New(a.cfg.Server.URL, client.WithAPIKey(a.cfg.Server.APIKey))

	stopSpinner := startSpinner(a.progressEnabled(), "Transcribing")
	started := time.Now()
	text, err := c.Transcribe(ctx, audioPath)
	stopSpinner()
	if err != nil {
		a.log().Warn("transcription failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return "", err
	}

	a.log().Info("transcription finished", zap.Duration("elapsed", time.Since(started)))
	return text, nil
}

func (a *appState) buildEngine() (asr.Engine, error) {
	modelDir, err := a.modelStorageDir()
	if err != nil {
		return nil, err
	}

	return asr.New(a.cfg.Engine.Name, asr.Options{
		ModelRoot: modelDir,
		Model:     a.cfg.Engine.Model,
		Language:  a.cfg.Engine.Language,
		APIKey:    a.cfg.Engine.OpenAIKey,
		BaseURL:   a.cfg.Engine.OpenAIBaseURL,
		Logger:    a.log(),
	})
}
