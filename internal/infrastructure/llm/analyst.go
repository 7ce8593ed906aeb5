package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"SignalTracker/internal/config"
	"SignalTracker/internal/ports"
)

// AnalystClient generates venture-analyst commentary through an
// OpenAI-compatible chat completion API.
type AnalystClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ ports.CommentaryClient = (*AnalystClient)(nil)

const analystSystemPrompt = "You are a venture capital analyst. Given one news item about a startup, " +
	"reply in markdown with three sections: **The Signal** (the key takeaway), " +
	"**Potential** (the upside or market opportunity), and **Risks** (the immediate " +
	"risks or challenges). Keep it brief and insightful."

// NewAnalystClient builds a client from configuration.
func NewAnalystClient(cfg config.AnalystConfig) *AnalystClient {
	return &AnalystClient{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// AnalystTake requests commentary for one news item.
func (c *AnalystClient) AnalystTake(ctx context.Context, title, description string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("analyst client is nil")
	}
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("analyst client misconfigured")
	}

	user := fmt.Sprintf("News item:\n- Title: %q\n- Description: %q", title, description)
	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": analystSystemPrompt},
			{"role": "user", "content": user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal analyst payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request analyst take: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("analyst api error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode analyst response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("analyst response had no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
