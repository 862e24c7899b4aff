package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Provider generates a chat completion for a single prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
)

// NewProvider builds a chat-completions provider for the configured backend.
// Both Groq and OpenAI speak the same wire format, only the endpoint and
// credentials differ.
func NewProvider(name, apiKey, model string, httpClient *http.Client) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("LLM API key not configured")
	}

	switch name {
	case "groq":
		return &chatProvider{endpoint: groqEndpoint, apiKey: apiKey, model: model, httpClient: httpClient}, nil
	case "openai":
		return &chatProvider{endpoint: openAIEndpoint, apiKey: apiKey, model: model, httpClient: httpClient}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (valid: groq, openai)", name)
	}
}

type chatProvider struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *chatProvider) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("chat API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
