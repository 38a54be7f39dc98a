package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/speakpipe/speakpipe/internal/audio"
	"github.com/speakpipe/speakpipe/internal/clipboard"
	"github.com/speakpipe/speakpipe/internal/config"
	"github.com/speakpipe/speakpipe/internal/logging"
	"github.com/speakpipe/speakpipe/internal/platform"
	"github.com/speakpipe/speakpipe/internal/version"
)

// recorder is the slice of audio.Recorder the commands need; tests
// substitute a fake.
type recorder interface {
	Start(sink func([]int16)) error
	Stop() []int16
	Close() error
}

type appState struct {
	verbose    bool
	jsonLogs   bool
	noProgress bool
	configPath string

	// flag overrides, applied on top of the config file when set
	serverURL  string
	addr       string
	engineName string
	model      string
	modelDir   string
	language   string
	apiKey     string
	device     string
	noPaste    bool

	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer

	transcribeFn  func(ctx context.Context, audioPath string) (string, error)
	copyFn        func(ctx context.Context, value string) error
	pasteFn       func(ctx context.Context, value string) error
	newRecorderFn func(sampleRate, channels uint32, device string) (recorder, error)
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		out: os.Stdout,
	}
	app.transcribeFn = app.transcribeRemote
	app.copyFn = clipboard.CopyText
	app.newRecorderFn = func(sampleRate, channels uint32, device string) (recorder, error) {
		return audio.NewRecorder(sampleRate, channels, device)
	}

	cmd := &cobra.Command{
		Use:           "speakpipe",
		Short:         "Voice dictation over a local speech recognition server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Verbose: app.verbose, JSON: app.jsonLogs})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			return app.loadConfig()
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&app.verbose, "verbose", false, "Enable verbose logs")
	pf.BoolVar(&app.jsonLogs, "json", false, "Enable JSON logging")
	pf.BoolVar(&app.noProgress, "no-progress", false, "Disable progress indicators")
	pf.StringVar(&app.configPath, "config", "", "Config file path (default ~/.config/speakpipe/config.yaml)")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newListenCmd(app))
	cmd.AddCommand(newDictateCmd(app))
	cmd.AddCommand(newTranscribeCmd(app))
	cmd.AddCommand(newDevicesCmd(app))
	cmd.AddCommand(newSetupCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindEngineFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().StringVar(&app.engineName, "engine", "", "Engine: whisper|faster-whisper|paraformer|paraformer-onnx|openai")
	cmd.Flags().StringVar(&app.model, "model", "", "Model name within the engine's registry")
	cmd.Flags().StringVar(&app.modelDir, "model-dir", "", "Model store root (default ~/.local/share/speakpipe/models)")
	cmd.Flags().StringVar(&app.language, "language", "", "Language code (zh|en|auto|...)")
}

func bindClientFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().StringVar(&app.serverURL, "server", "", "Transcription server URL")
	cmd.Flags().StringVar(&app.apiKey, "api-key", "", "API key for the server")
}

func bindCaptureFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().StringVar(&app.device, "device", "", "Capture device name substring (run \"speakpipe devices\" to list)")
}

// loadConfig reads the config file and lays flag overrides on top.
func (a *appState) loadConfig() error {
	path, err := platform.ResolveConfigPath(a.configPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if a.serverURL != "" {
		cfg.Server.URL = a.serverURL
	}
	if a.addr != "" {
		cfg.Server.Addr = a.addr
	}
	if a.apiKey != "" {
		cfg.Server.APIKey = a.apiKey
	}
	if a.engineName != "" {
		cfg.Engine.Name = a.engineName
	}
	if a.model != "" {
		cfg.Engine.Model = a.model
	}
	if a.modelDir != "" {
		cfg.Engine.ModelDir = a.modelDir
	}
	if a.language != "" {
		cfg.Engine.Language = a.language
	}
	if a.device != "" {
		cfg.Audio.Device = a.device
	}
	if a.noPaste {
		cfg.Paste.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	return nil
}

// modelStorageDir resolves the model store root and makes sure it
// exists.
func (a *appState) modelStorageDir() (string, error) {
	dir, err := platform.ResolveModelDir(a.cfg.Engine.ModelDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create model directory %s: %w", dir, err)
	}
	return dir, nil
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) outWriter() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// writeSegmentWAV spools captured samples to a temp WAV file. Callers
// remove it once the transcript is back.
func (a *appState) writeSegmentWAV(samples []int16) (string, error) {
	if len(samples) == 0 {
		return "", errors.New("no audio captured")
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("speakpipe-%d.wav", time.Now().UnixNano()))
	if err := audio.WriteFile(path, samples, int(a.cfg.Audio.SampleRate), int(a.cfg.Audio.Channels)); err != nil {
		return "", fmt.Errorf("write recording: %w", err)
	}
	return path, nil
}

// deliverTranscript prints the transcript and pushes it to the
// clipboard or the focused window. Blank transcripts are printed but
// never pasted.
func (a *appState) deliverTranscript(ctx context.Context, transcript string) error {
	fmt.Fprintln(a.outWriter(), transcript)

	if isBlankTranscript(transcript) {
		a.log().Warn(noSpeechHint())
		return nil
	}

	if a.cfg.Paste.Enabled {
		pasteFn := a.pasteFn
		if pasteFn == nil {
			paster := clipboard.NewPaster(a.log())
			paster.Restore = a.cfg.Paste.RestoreClipboard
			pasteFn = paster.PasteText
		}
		if err := pasteFn(ctx, transcript); err != nil {
			a.log().Warn("paste failed; falling back to clipboard copy", zap.Error(err))
		} else {
			return nil
		}
	}

	if err := a.copyFn(ctx, transcript); err != nil {
		if errors.Is(err, clipboard.ErrUnavailable) {
			a.log().Warn("clipboard tool unavailable; transcript left on stdout")
			return nil
		}
		a.log().Warn("failed to copy transcript to clipboard; transcript left on stdout", zap.Error(err))
		return nil
	}

	a.log().Info("transcript copied to clipboard")
	return nil
}
