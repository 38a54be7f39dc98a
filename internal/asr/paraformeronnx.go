//go:build cgo

package asr

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sherpa "github.com/k2-fsa/sherpa-onnx-go/sherpa_onnx"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/audio"
	"github.com/speakpipe/speakpipe/internal/gpuenv"
	"github.com/speakpipe/speakpipe/internal/modelstore"
)

// paraformerONNX runs the quantized Paraformer export in-process through
// sherpa-onnx. No external runner, no output files.
type paraformerONNX struct {
	recognizer *sherpa.OfflineRecognizer
	logger     *zap.Logger
}

func newParaformerONNX(opts Options) (Engine, error) {
	resolved, err := modelstore.Require(opts.ModelRoot, modelstore.BackendParaformerONNX, opts.Model)
	if err != nil {
		return nil, err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = 4
	}

	config := sherpa.OfflineRecognizerConfig{}
	config.FeatConfig.SampleRate = 16000
	config.FeatConfig.FeatureDim = 80
	config.ModelConfig.Paraformer.Model = filepath.Join(resolved.Dir, "model.int8.onnx")
	config.ModelConfig.Tokens = filepath.Join(resolved.Dir, "tokens.txt")
	config.ModelConfig.NumThreads = threads
	config.ModelConfig.Provider = gpuenv.Provider()
	config.DecodingMethod = "greedy_search"

	recognizer := sherpa.NewOfflineRecognizer(&config)
	if recognizer == nil {
		return nil, fmt.Errorf("create paraformer recognizer from %s", resolved.Dir)
	}

	return &paraformerONNX{recognizer: recognizer, logger: opts.Logger}, nil
}

func (p *paraformerONNX) Name() string { return "paraformer-onnx" }

func (p *paraformerONNX) Transcribe(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Result{}, errors.New("audio path is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	samples, sampleRate, err := audio.ReadFile(req.AudioPath)
	if err != nil {
		return Result{}, fmt.Errorf("read audio: %w", err)
	}

	stream := sherpa.NewOfflineStream(p.recognizer)
	if stream == nil {
		return Result{}, errors.New("create recognition stream")
	}
	defer sherpa.DeleteOfflineStream(stream)

	stream.AcceptWaveform(sampleRate, samples)
	p.recognizer.Decode(stream)

	result := stream.GetResult()
	if result == nil {
		return Result{}, errors.New("recognizer returned no result")
	}

	return Result{Text: strings.TrimSpace(result.Text)}, nil
}

// Close releases the native recognizer.
func (p *paraformerONNX) Close() error {
	if p.recognizer != nil {
		sherpa.DeleteOfflineRecognizer(p.recognizer)
		p.recognizer = nil
	}
	return nil
}
