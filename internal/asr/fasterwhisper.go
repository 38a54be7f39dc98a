package asr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/gpuenv"
	"github.com/speakpipe/speakpipe/internal/modelstore"
)

const fasterWhisperEnv = "SPEAKPIPE_FASTER_WHISPER"

// fasterWhisper drives the whisper-ctranslate2 runner against a
// CTranslate2 model directory. The Mandarin prompt keeps the model from
// drifting into traditional script or English on short clips.
type fasterWhisper struct {
	executable string
	modelDir   string
	language   string
	device     string
	logger     *zap.Logger
}

const mandarinPrompt = "中文"

func newFasterWhisper(opts Options) (Engine, error) {
	executable, err := lookupTool(fasterWhisperEnv, "whisper-ctranslate2")
	if err != nil {
		return nil, err
	}

	resolved, err := modelstore.Require(opts.ModelRoot, modelstore.BackendFasterWhisper, opts.Model)
	if err != nil {
		return nil, err
	}

	language := opts.Language
	if language == "" {
		language = "zh"
	}

	return &fasterWhisper{
		executable: executable,
		modelDir:   resolved.Dir,
		language:   language,
		device:     gpuenv.Provider(),
		logger:     opts.Logger,
	}, nil
}

func (f *fasterWhisper) Name() string { return "faster-whisper" }

func (f *fasterWhisper) Transcribe(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Result{}, errors.New("audio path is required")
	}

	outDir, err := os.MkdirTemp("", "speakpipe-fw-")
	if err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := fasterWhisperArgs(f.modelDir, req.AudioPath, outDir, pickLanguage(req.Language, f.language), f.device)
	if err := runTool(ctx, f.logger, f.executable, args); err != nil {
		return Result{}, err
	}

	base := strings.TrimSuffix(filepath.Base(req.AudioPath), filepath.Ext(req.AudioPath))
	content, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return Result{}, fmt.Errorf("read transcript output: %w", err)
	}

	return Result{Text: strings.TrimSpace(string(content))}, nil
}

func fasterWhisperArgs(modelDir, audioPath, outDir, language, device string) []string {
	args := []string{
		audioPath,
		"--model_directory", modelDir,
		"--device", device,
		"--output_format", "txt",
		"--output_dir", outDir,
		"--verbose", "False",
	}
	if language != "" && language != "auto" {
		args = append(args, "--language", language)
	}
	if language == "zh" {
		args = append(args, "--initial_prompt", mandarinPrompt)
	}
	return args
}
