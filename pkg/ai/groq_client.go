// pkg/ai/groq_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	maxCompletionTokens = 512
	requestTimeout      = 60 * time.Second
)

type groqClient struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewGroq returns a Client backed by a Groq (OpenAI-compatible)
// chat-completions endpoint. Sampling is deterministic: temperature 0,
// output capped at 512 tokens.
func NewGroq(endpoint, key, model string) Client {
	return &groqClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *groqClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature":           0,
		"max_completion_tokens": maxCompletionTokens,
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(out.Choices) == 0 {
		return "", ErrGeneration
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", ErrGeneration
	}
	return content, nil
}
