// Package gateway is the application's only network boundary. Every
// backend capability is one method on Client; requests carry the bearer
// credential when one is present, are attempted exactly once, and fail
// with a RemoteError classified from the HTTP status.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the current session credential. An empty string
// means no session; the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource, convenient for tests and
// one-shot commands.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client talks to the backend REST API.
type Client struct {
	tokens     TokenSource
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the API rooted at origin (the /api prefix is
// appended here).
func New(origin string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(origin, "/") + "/api",
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorBody is the shape of backend error payloads.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request and decodes the response into out (ignored when
// out is nil). It never retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("Gateway request", "method", method, "path", path, "query", query.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Kind: KindNetworkUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr != nil || eb.Message == "" {
			eb.Message = strings.TrimSpace(string(raw))
		}
		slog.Debug("Gateway request failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return &RemoteError{
			Kind:    kindFromStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: eb.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}
