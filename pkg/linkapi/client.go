package linkapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the generate-link API client.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	retryAttempts int
	retryDelay    time.Duration
}

// New creates a client for the generate-link API. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		retryAttempts: 1,
	}
}

// WithTimeout bounds every attempt. Zero disables the timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithRetry makes Generate try up to attempts times, waiting n*delay before
// the n-th retry. Only transport errors and 5xx answers are retried.
func (c *Client) WithRetry(attempts int, delay time.Duration) *Client {
	if attempts < 1 {
		attempts = 1
	}
	c.retryAttempts = attempts
	c.retryDelay = delay
	return c
}

// WithHTTPClient swaps the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Generate sends the trimmed prompt to the API and returns the parsed body.
// An empty prompt is sent as-is.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	var lastErr error

	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * c.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		res, err := c.generate(ctx, prompt)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}

	return nil, lastErr
}

// GenerateURL is the exact URL Generate requests for prompt.
func (c *Client) GenerateURL(prompt string) string {
	q := url.Values{}
	q.Set(PromptParam, strings.TrimSpace(prompt))
	return c.baseURL + GeneratePath + "?" + q.Encode()
}

func (c *Client) generate(ctx context.Context, prompt string) (*Result, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GenerateURL(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call generate-link API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generate-link response: %w", err)
	}

	return Parse(raw)
}

// Parse decodes a generate-link body. Anything but a JSON object is
// ErrMalformedResponse.
func Parse(raw []byte) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedResponse)
	}

	var body bytes.Buffer
	if err := json.Compact(&body, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &Result{Fields: fields, Body: body.Bytes()}, nil
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, ErrMalformedResponse)
}
