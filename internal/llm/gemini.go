package llm

import (
	"context"
	"errors"
	"log"
	"net/http"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli    *genai.Client
	apiKey string
	model  string
	rl     *rpsLimiter
}

// NewGeminiClient creates a Gemini client. The credential is passed in
// explicitly; an empty key yields a client that reports ErrNotConfigured on
// every call. rps/burst throttle outbound calls and may be zero to disable.
func NewGeminiClient(ctx context.Context, apiKey, model string, rps float64, burst int) (*GeminiClient, error) {
	c := &GeminiClient{apiKey: apiKey, model: model, rl: newRPSLimiter(rps, burst)}
	if apiKey == "" {
		return c, nil
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c.cli = cli
	return c, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error {
	if g.rl != nil {
		g.rl.Stop()
	}
	return nil
}

// Complete sends a single generation request. One attempt only; transient
// failures are reported to the caller as StatusError.
func (g *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" || g.cli == nil {
		return "", ErrNotConfigured
	}
	if err := g.rl.Acquire(ctx); err != nil {
		return "", err
	}

	log.Printf("LLM request (%s): %d bytes", TaskFrom(ctx), len(req.Prompt))

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: req.Prompt}}}},
		cfg,
	)
	if err != nil {
		code := http.StatusServiceUnavailable
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			code = apiErr.Code
		}
		return "", &StatusError{Code: code, Body: err.Error()}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
