package asr

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/modelstore"
)

const funasrEnv = "SPEAKPIPE_FUNASR"

// paraformer drives the FunASR command line runner against a PyTorch
// Paraformer export. FunASR writes recognition results under
// <output_dir>/1best_recog/text as "<key> <transcript>" lines.
type paraformer struct {
	executable string
	modelDir   string
	logger     *zap.Logger
}

func newParaformer(opts Options) (Engine, error) {
	executable, err := lookupTool(funasrEnv, "funasr")
	if err != nil {
		return nil, err
	}

	resolved, err := modelstore.Require(opts.ModelRoot, modelstore.BackendParaformer, opts.Model)
	if err != nil {
		return nil, err
	}

	return &paraformer{
		executable: executable,
		modelDir:   resolved.Dir,
		logger:     opts.Logger,
	}, nil
}

func (p *paraformer) Name() string { return "paraformer" }

func (p *paraformer) Transcribe(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Result{}, errors.New("audio path is required")
	}

	outDir, err := os.MkdirTemp("", "speakpipe-funasr-")
	if err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := paraformerArgs(p.modelDir, req.AudioPath, outDir)
	if err := runTool(ctx, p.logger, p.executable, args); err != nil {
		return Result{}, err
	}

	text, err := readFunASRTranscript(filepath.Join(outDir, "1best_recog", "text"))
	if err != nil {
		return Result{}, err
	}

	return Result{Text: text}, nil
}

func paraformerArgs(modelDir, audioPath, outDir string) []string {
	return []string{
		"++model=" + modelDir,
		"++input=" + audioPath,
		"++output_dir=" + outDir,
		"++disable_update=true",
	}
}

// readFunASRTranscript strips the utterance key column and joins the
// remaining transcript lines.
func readFunASRTranscript(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read recognition output: %w", err)
	}
	defer f.Close()

	var parts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, text, found := strings.Cut(line, " "); found {
			line = strings.TrimSpace(text)
		}
		if line != "" {
			parts = append(parts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan recognition output: %w", err)
	}

	return strings.Join(parts, " "), nil
}
