// Package holidaze is the single chokepoint for outbound calls to the remote
// Holidaze REST API. No other package talks to the network directly.
package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config holds the remote API settings.
type Config struct {
	// BaseURL is the Holidaze resource root (venues, bookings, profiles).
	BaseURL string
	// AuthBaseURL is the root for /auth endpoints. Defaults to BaseURL.
	AuthBaseURL string
	// APIKey is sent as the X-Noroff-API-Key header on every request.
	APIKey string
	// Timeout bounds a single request. Defaults to 10s.
	Timeout time.Duration
}

// Client is a stateless request/response wrapper around the remote API. It
// attaches default headers and tokens, serializes bodies, and normalizes
// error responses. It does not retry and does not break circuits.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for the remote API.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("holidaze base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("holidaze API key is required")
	}
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = cfg.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		log: log,
	}, nil
}

// requestOptions mirror the knobs every call site may set. The zero value is
// a plain GET against the resource base URL with default headers.
type requestOptions struct {
	method             string
	body               any
	token              string
	headers            map[string]string
	skipDefaultHeaders bool
	baseURL            string
}

// do issues one request and returns the raw response body. A 204 response
// returns (nil, nil): success with nothing to parse. Non-2xx responses are
// normalized into *APIError carrying the server-provided message.
func (c *Client) do(ctx context.Context, endpoint string, opts requestOptions) (json.RawMessage, error) {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}
	baseURL := opts.baseURL
	if baseURL == "" {
		baseURL = c.cfg.BaseURL
	}

	var reqBody io.Reader
	if opts.body != nil && method != http.MethodGet && method != http.MethodDelete {
		payload, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, endpoint, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	if !opts.skipDefaultHeaders {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Noroff-API-Key", c.cfg.APIKey)
	}
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("holidaze request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, raw)
		c.log.Warn("holidaze request rejected",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	return raw, nil
}

// decodeData unmarshals the data field of an enveloped response into v,
// failing fast on malformed server payloads.
func decodeData(raw json.RawMessage, v any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return errors.New("response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
