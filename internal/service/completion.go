package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest is the chat-completions request body.
type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// CompletionService issues single-turn chat requests against an
// OpenAI-compatible completions endpoint (Groq by default).
type CompletionService struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewCompletionService creates a CompletionService. The API key is resolved
// once at startup and passed in explicitly; pipeline code never reads the
// environment.
func NewCompletionService(apiURL, apiKey, model string) *CompletionService {
	return &CompletionService{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content verbatim. A non-200 reply becomes an *UpstreamError
// carrying the upstream status and raw body; there is no retry, since the
// caller is a synchronous request awaiting a human-facing answer.
func (s *CompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("completion service returned an error")
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", formatErrorf("failed to decode completion response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", formatErrorf("completion response has no choices")
	}

	log.Debug().Str("model", s.model).Msg("completion succeeded")
	return result.Choices[0].Message.Content, nil
}
