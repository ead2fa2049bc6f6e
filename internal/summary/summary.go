package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	generatePath   = "/v1beta/models/gemini-pro:generateContent"
)

// Summarizer shortens announcement text. Failure is acceptable:
// callers treat an empty result as "no summary".
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Client calls the hosted text-summarization API. Best-effort by
// contract: a short timeout, no retries beyond resty's default.
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(5 * time.Second),
		apiKey: apiKey,
	}
}

// SetBaseURL overrides the API host, for tests.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("summary: api key not configured")
	}

	prompt := "Summarize the following university announcement concisely: " + text

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&out).
		Post(generatePath)

	if err != nil {
		return "", fmt.Errorf("summary: request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("summary: api returned %s", resp.Status())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("summary: empty response")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
