// Package explain calls the external LLM to produce per-question tutoring
// explanations. The service is treated as unreliable: every failure is
// reported as apperr.ErrService and never cached.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request carries the question context sent to the tutor prompt. UserAnswer
// is the original, denormalized answer as the user typed or selected it.
type Request struct {
	QuestionText  string
	CorrectAnswer string
	UserAnswer    string
	Options       []string
}

// Generator is what the review layer consumes; Client is the live
// implementation, tests substitute their own.
type Generator interface {
	Explain(ctx context.Context, req Request) (string, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

const systemPrompt = "You are a helpful and detailed quiz explanation expert."

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("You are an expert tutor. Please provide a brief, helpful, and encouraging explanation ")
	b.WriteString("for the following quiz result. Explain why the correct answer is right and why the ")
	b.WriteString("user's answer was wrong.\n\n")
	fmt.Fprintf(&b, "Question: %q\n", req.QuestionText)
	fmt.Fprintf(&b, "User's Answer: %q\n", req.UserAnswer)
	fmt.Fprintf(&b, "Correct Answer: %q\n", req.CorrectAnswer)
	if len(req.Options) > 0 {
		fmt.Fprintf(&b, "All Options: %s\n", strings.Join(req.Options, ", "))
	}
	b.WriteString("\nStructure your response to first explain why the correct answer is right, ")
	b.WriteString("and then briefly state why the other options are incorrect.")
	return b.String()
}

// Explain sends a chat-completion request and returns the explanation text.
func (c *Client) Explain(ctx context.Context, req Request) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", wrapServiceErr("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wrapServiceErr("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", wrapServiceErr("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", wrapServiceErr("malformed response: %v", err)
	}
	if len(response.Choices) == 0 {
		return "", wrapServiceErr("response contained no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
