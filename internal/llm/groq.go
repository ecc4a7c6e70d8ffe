package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// GroqClient calls the Groq Chat Completions API (OpenAI-compatible).
// See: https://console.groq.com/docs/api-reference
type GroqClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

// NewGroqClient creates a Groq client. An empty apiKey is allowed; the
// client then reports ErrNotConfigured on every call rather than failing
// construction, so a keyless deployment still boots with AI disabled.
func NewGroqClient(apiKey, model string) *GroqClient {
	return &GroqClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.groq.com/openai/v1/chat/completions",
	}
}

func (g *GroqClient) Name() string { return "Groq:" + g.model }
func (g *GroqClient) Close() error { return nil }

type groqChatReq struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}
type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type groqChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues exactly one chat-completion call and returns the raw
// completion text. The response is deliberately not requested as
// response_format=json_object: downstream normalization owns recovery from
// sloppy output, and some tasks embed non-JSON sentinels in their contract.
func (g *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := groqChatReq{
		Model:       g.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, groqMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, groqMessage{Role: "user", Content: req.Prompt})

	b, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	log.Printf("LLM request (%s): %d bytes", TaskFrom(ctx), len(req.Prompt))

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return "", &StatusError{Code: http.StatusServiceUnavailable, Body: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(raw) > max {
			raw = raw[:max]
		}
		return "", &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var out groqChatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", ErrEmptyCompletion
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}
