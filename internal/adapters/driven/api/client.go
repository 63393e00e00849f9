// Package api provides the HTTP client adapter for the Brix marketplace
// backend. It implements the driven ProjectAPI, QuestionnaireAPI,
// GenerationAPI and DocumentAPI ports over a single authenticated client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.brix.build"
	DefaultTimeout = 30 * time.Second

	// requestRate throttles client calls to stay well inside the
	// marketplace's per-client quota.
	requestRate = 5 // requests per second
)

// Config holds configuration for the marketplace client.
type Config struct {
	// BaseURL is the API base URL (default: https://api.brix.build).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// Tokens supplies bearer tokens for authenticated calls (required).
	Tokens driven.TokenProvider
}

// Client is the marketplace API client.
type Client struct {
	client  *http.Client
	baseURL string
	tokens  driven.TokenProvider
	limiter *rate.Limiter
}

// NewClient creates a marketplace client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("api: token provider is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		tokens:  cfg.Tokens,
		limiter: rate.NewLimiter(rate.Limit(requestRate), requestRate),
	}, nil
}

// do performs an authenticated JSON exchange. A nil body sends no payload;
// a nil out discards the response body. Non-2xx responses become APIError,
// with 404 and 401 mapped onto the domain sentinels by errors.go.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody, req.URL.String())
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
