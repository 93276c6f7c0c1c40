package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/personalfinancemanagentdashboard/babu/config"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

// Client is a minimal OpenAI chat-completions client. A nil *Client means
// the feature is disabled and every AI endpoint answers 503.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient returns nil when no API key is configured.
func NewClient(cfg config.OpenAIConfig) *Client {
	if !cfg.Enabled() {
		return nil
	}

	return &Client{
		apiKey: cfg.APIKey,
		apiURL: completionsURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Message content is either a plain string or, for vision requests, a list
// of ContentPart values.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

func TextMessage(role, content string) Message {
	return Message{Role: role, Content: content}
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat-completion request and returns the first choice,
// trimmed.
func (c *Client) Complete(ctx context.Context, model string, messages []Message, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
