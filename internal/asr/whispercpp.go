package asr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/modelstore"
)

const whisperCLIEnv = "SPEAKPIPE_WHISPER_CLI"

// whisperCPP drives the whisper.cpp command line runner against a ggml
// model file.
type whisperCPP struct {
	executable string
	modelPath  string
	language   string
	logger     *zap.Logger
}

func newWhisperCPP(opts Options) (Engine, error) {
	executable, err := lookupTool(whisperCLIEnv, "whisper-cli")
	if err != nil {
		return nil, err
	}

	resolved, err := modelstore.Require(opts.ModelRoot, modelstore.BackendWhisper, opts.Model)
	if err != nil {
		return nil, err
	}

	return &whisperCPP{
		executable: executable,
		modelPath:  filepath.Join(resolved.Dir, resolved.Files[0].Name),
		language:   opts.Language,
		logger:     opts.Logger,
	}, nil
}

func (w *whisperCPP) Name() string { return "whisper" }

func (w *whisperCPP) Transcribe(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Result{}, errors.New("audio path is required")
	}

	outBase := filepath.Join(os.TempDir(), fmt.Sprintf("speakpipe-%d", time.Now().UnixNano()))
	txtOut := outBase + ".txt"

	args := whisperCPPArgs(w.modelPath, req.AudioPath, outBase, pickLanguage(req.Language, w.language))
	if err := runTool(ctx, w.logger, w.executable, args); err != nil {
		return Result{}, err
	}

	defer os.Remove(txtOut)
	content, err := os.ReadFile(txtOut)
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}

	return Result{Text: strings.TrimSpace(string(content))}, nil
}

func whisperCPPArgs(modelPath, audioPath, outBase, language string) []string {
	args := []string{"-m", modelPath, "-f", audioPath, "-nt", "-otxt", "-of", outBase}
	if language != "" && language != "auto" {
		args = append(args, "-l", language)
	}
	return args
}

func pickLanguage(requested, configured string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return configured
}
