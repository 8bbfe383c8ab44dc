package client

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/pokespeare/pokespeare"
)

const openAIService = "openai"

// OpenAITranslator is an alternative TranslationClient backed by an OpenAI
// chat model. Useful when the Funtranslations quota is exhausted.
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
	onRequest   func()
}

// OpenAIConfig holds configuration for the OpenAI translator.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
	RequestHook func()  // Invoked before every outgoing request (optional)
}

// NewOpenAITranslator creates a new OpenAI-backed translator.
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		onRequest:   cfg.RequestHook,
	}
}

const shakespeareanPrompt = `You are a translator of modern English into Shakespearean English.
Rewrite the text provided by the user in the style of William Shakespeare.
Preserve the meaning. Reply with the rewritten text only, no commentary.`

// Translate rewrites the text in Shakespearean English via a chat model.
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if t.onRequest != nil {
		t.onRequest()
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: shakespeareanPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: t.temperature,
	})
	if err != nil {
		return "", &pokespeare.UpstreamError{
			Service: openAIService,
			Kind:    classifyOpenAIError(err),
			Message: "chat completion failed",
			Cause:   err,
		}
	}

	if len(resp.Choices) == 0 {
		return "", &pokespeare.UpstreamError{
			Service: openAIService,
			Kind:    pokespeare.KindDataError,
			Message: "no choices in completion response",
		}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyOpenAIError maps API errors onto the upstream error taxonomy.
// Rate limits and input rejections are domain errors of the translator;
// everything with a 5xx status is a server error; the rest is transport.
func classifyOpenAIError(err error) pokespeare.ErrorKind {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return pokespeare.KindUnavailable
	}
	switch {
	case apiErr.HTTPStatusCode == http.StatusTooManyRequests,
		apiErr.HTTPStatusCode == http.StatusBadRequest:
		return pokespeare.KindTranslationRejected
	case apiErr.HTTPStatusCode >= 500:
		return pokespeare.KindServerError
	default:
		return pokespeare.KindUnexpectedStatus
	}
}

// Verify OpenAITranslator implements TranslationClient
var _ TranslationClient = (*OpenAITranslator)(nil)
