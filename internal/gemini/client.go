// Package gemini is a minimal client for the generateContent endpoint of the
// Google Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"glean/internal/page"
)

const (
	ackText = "I understand the page context and will provide helpful responses."

	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 2000
	maxContextContent      = 2000
)

// Turn is one prior conversation turn. Role is "user" or "model".
type Turn struct {
	Role string
	Text string
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey          string
	baseURL         string
	model           string
	temperature     float64
	maxOutputTokens int
	httpClient      *http.Client
	log             *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		apiKey:          cfg.APIKey,
		baseURL:         baseURL,
		model:           model,
		temperature:     defaultTemperature,
		maxOutputTokens: defaultMaxOutputTokens,
		httpClient:      &http.Client{Timeout: timeout},
		log:             log,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Complete sends the context preamble, an acknowledgment turn, any prior
// conversation turns, and the final prompt, and returns the completion text.
func (c *Client) Complete(ctx context.Context, snap page.Snapshot, history []Turn, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	contents := []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: contextPreamble(snap)}}},
		{Role: "model", Parts: []geminiPart{{Text: ackText}}},
	}
	for _, t := range history {
		role := "model"
		if t.Role == "user" {
			role = "user"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: t.Text}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: prompt}}})

	reqBody := geminiRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("completion request failed", zap.Error(err))
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil && errResp.Error.Message != "" {
			c.log.Error("completion rejected", zap.Int("status", resp.StatusCode), zap.String("message", errResp.Error.Message))
			return "", fmt.Errorf("%s", errResp.Error.Message)
		}
		c.log.Error("completion rejected", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("API error: %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("%s", gr.Error.Message)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no response from model")
	}

	c.log.Info("completion received",
		zap.String("model", c.model),
		zap.Int("response_len", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

func contextPreamble(snap page.Snapshot) string {
	content := snap.PageContent
	if runes := []rune(content); len(runes) > maxContextContent {
		content = string(runes[:maxContextContent])
	}

	return fmt.Sprintf(`You are a helpful AI assistant integrated into a reading assistant.

Current Page Context:
- Title: %s
- URL: %s
- Domain: %s
- Selected Text: "%s"

Page Content Summary:
%s

Provide helpful, accurate, and context-aware responses based on this information.`,
		snap.Title, snap.URL, snap.Domain, snap.SelectedText, content)
}
