package asr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// openAIEngine sends audio to an OpenAI-compatible transcription API.
// No local models, so the model store is not consulted.
type openAIEngine struct {
	client   *openai.Client
	model    string
	language string
	logger   *zap.Logger
}

func newOpenAI(opts Options) (Engine, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai engine requires an API key")
	}

	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientConfig.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &openAIEngine{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		language: opts.Language,
		logger:   opts.Logger,
	}, nil
}

func (o *openAIEngine) Name() string { return "openai" }

func (o *openAIEngine) Transcribe(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Result{}, errors.New("audio path is required")
	}

	apiReq := openai.AudioRequest{
		Model:    o.model,
		FilePath: req.AudioPath,
	}
	if lang := pickLanguage(req.Language, o.language); lang != "" && lang != "auto" {
		apiReq.Language = lang
	}

	resp, err := o.client.CreateTranscription(ctx, apiReq)
	if err != nil {
		return Result{}, fmt.Errorf("transcription API: %w", err)
	}

	return Result{Text: strings.TrimSpace(resp.Text)}, nil
}
