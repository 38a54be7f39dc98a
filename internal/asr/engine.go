// Package asr turns recorded audio files into text. Each engine wraps
// one recognition backend; local backends load their model from the
// store layout <root>/<backend>/<model-name> and refuse to start until
// that directory is complete.
package asr

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

type Request struct {
	AudioPath string
	// Language overrides the engine's configured language for this
	// request. Empty means use the engine default.
	Language string
}

type Result struct {
	Text string
}

type Engine interface {
	Name() string
	Transcribe(ctx context.Context, req Request) (Result, error)
}

// Options configures engine construction. ModelRoot is the model store
// root for local engines; APIKey and BaseURL only matter for the remote
// one.
type Options struct {
	ModelRoot string
	Model     string
	Language  string
	Threads   int
	APIKey    string
	BaseURL   string
	Logger    *zap.Logger
}

type factory func(Options) (Engine, error)

var factories = map[string]factory{
	"whisper":         newWhisperCPP,
	"faster-whisper":  newFasterWhisper,
	"paraformer":      newParaformer,
	"paraformer-onnx": newParaformerONNX,
	"openai":          newOpenAI,
}

// New builds the named engine. Construction validates everything that
// can be validated up front, model files on disk included, so a serving
// process fails fast instead of on the first request.
func New(name string, opts Options) (Engine, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	build, ok := factories[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (known: %s)", name, strings.Join(Names(), ", "))
	}

	return build(opts)
}

// Names lists the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
