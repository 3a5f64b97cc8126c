// Package provider implements the outbound call to an OpenAI-compatible
// chat completions API, used by the fetch-updates action to pull a
// digest of concepts worth learning.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultAPIBase = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	systemInstruction = "You are a frontend development trends analyst. " +
		"Reply with a short plain-text digest of concepts worth learning right now, " +
		"one concept per line with a one-sentence reason."
	userQuery = "What concepts, tools, and techniques should a frontend developer " +
		"be aware of this month?"
)

// ErrUpstreamProtocol means the provider answered with a success status
// but the body lacked the expected choices[0].message.content field.
var ErrUpstreamProtocol = errors.New("upstream response missing message content")

// UpstreamError is a non-success transport response from the provider,
// carrying the status and body verbatim.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// Config holds the provider settings. The model identifier is
// configuration, not a hard-coded contract.
type Config struct {
	APIKey  string
	APIBase string
	Model   string
}

// Client issues the single synchronous request the fetch-updates
// action needs. One instance per server, created only when a
// credential is present.
type Client struct {
	apiKey  string
	apiBase string
	model   string
	httpc   *http.Client
}

// New creates a Client, filling in API base and model defaults.
func New(cfg Config) *Client {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Client{
		apiKey:  cfg.APIKey,
		apiBase: cfg.APIBase,
		model:   cfg.Model,
		// No timeout: the action enforces no deadline, retry, or
		// cancellation — a hung upstream blocks that invocation.
		httpc: &http.Client{},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// FetchConceptUpdates performs one POST to /chat/completions with the
// fixed instruction/query pair and returns the extracted text verbatim,
// untruncated and unmodified.
func (c *Client) FetchConceptUpdates(ctx context.Context) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userQuery},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiBase+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamProtocol, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrUpstreamProtocol
	}
	return parsed.Choices[0].Message.Content, nil
}
