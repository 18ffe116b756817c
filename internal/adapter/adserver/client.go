package adserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"dfp-sync/internal/config/configs"
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/metrics"
)

// maxResponseSize is the maximum accepted response size (10MB)
const maxResponseSize = 10 * 1024 * 1024

var (
	ErrConfigMissingBaseURL = errors.New("adserver: base url is required")
	ErrConfigMissingToken   = errors.New("adserver: token is required")
)

// Client calls the ad server's JSON API gateway. Every service method is
// exposed as POST {base}/{network}/{Service}/{method}; the response body
// wraps the return value in "rval". A single limiter throttles all calls.
type Client struct {
	baseURL    *url.URL
	network    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client from configuration.
func NewClient(cfg configs.AdServer) (*Client, error) {
	if cfg.BaseURL.Host == "" {
		return nil, ErrConfigMissingBaseURL
	}
	if cfg.Token == "" {
		return nil, ErrConfigMissingToken
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	base := cfg.BaseURL
	return &Client{
		baseURL:    &base,
		network:    cfg.Network,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		limiter:    rate.NewLimiter(limit, burst),
	}, nil
}

type envelope struct {
	Rval json.RawMessage `json:"rval"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// call invokes service.method with body and decodes the return value into
// out. Numbers are decoded as json.Number so 64-bit ids survive intact.
func (c *Client) call(ctx context.Context, service, method string, body, out any) (err error) {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordAdServerRequest(service, method, status, time.Since(start).Seconds())
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// the limiter refuses waits that would outlast the deadline
		return fmt.Errorf("%w: %s.%s: %v", port.ErrRemoteRateLimited, service, method, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("adserver: failed to encode %s.%s request: %w", service, method, err)
	}

	endpoint := c.baseURL.JoinPath(c.network, service, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("adserver: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %s.%s: read response: %v", port.ErrRemoteUnavailable, service, method, err)
	}

	if resp.StatusCode >= 400 {
		return statusError(service, method, resp.StatusCode, respBody)
	}

	var env envelope
	if err = json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("%w: %s.%s: %v", port.ErrRemoteInvalidResponse, service, method, err)
	}
	if out == nil || len(env.Rval) == 0 || string(env.Rval) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(env.Rval))
	dec.UseNumber()
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %s.%s: %v", port.ErrRemoteInvalidResponse, service, method, err)
	}
	return nil
}

func statusError(service, method string, code int, body []byte) error {
	var sentinel error
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		sentinel = port.ErrRemoteAuthFailed
	case code == http.StatusTooManyRequests:
		sentinel = port.ErrRemoteRateLimited
	case code >= 500:
		sentinel = port.ErrRemoteUnavailable
	default:
		sentinel = port.ErrRemoteRejected
	}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && eb.Error.Message != "" {
		return fmt.Errorf("%w: %s.%s: HTTP %d: %s", sentinel, service, method, code, eb.Error.Message)
	}
	return fmt.Errorf("%w: %s.%s: HTTP %d", sentinel, service, method, code)
}

// getByStatement fetches one page of records matching stmt.
func (c *Client) getByStatement(ctx context.Context, service, method string, stmt port.Statement) (*port.Page, error) {
	var page port.Page
	if err := c.call(ctx, service, method, map[string]any{"filterStatement": stmt}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// mutate sends records under field and returns the records echoed back.
func (c *Client) mutate(ctx context.Context, service, method, field string, records []domain.Record) ([]domain.Record, error) {
	var out []domain.Record
	if err := c.call(ctx, service, method, map[string]any{field: records}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
