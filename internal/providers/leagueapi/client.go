package leagueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/http/requestutil"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/providers"
)

// Config controls how the client reaches the league API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client calls the league REST API. Every call takes the caller's credentials explicitly.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

var _ providers.LeagueAPI = (*Client)(nil)

// NewClient constructs a league API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// call describes one league API request. endpoint is the route template used for metrics.
type call struct {
	method   string
	path     string
	endpoint string
	query    url.Values
	body     any
}

func (c *Client) do(ctx context.Context, creds auth.Credentials, rc call, out any) error {
	req, err := c.buildRequest(ctx, creds, rc)
	if err != nil {
		return err
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		nErr := &providers.NetworkError{Method: rc.method, Path: rc.path, Err: err}
		c.observe(ctx, rc, start, 0, nErr)
		return nErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		nErr := &providers.NetworkError{
			Method:     rc.method,
			Path:       rc.path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
		c.observe(ctx, rc, start, resp.StatusCode, nErr)
		return nErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		nErr := &providers.NetworkError{Method: rc.method, Path: rc.path, StatusCode: resp.StatusCode, Err: err}
		c.observe(ctx, rc, start, resp.StatusCode, nErr)
		return nErr
	}
	c.observe(ctx, rc, start, resp.StatusCode, nil)

	if out == nil {
		return nil
	}
	payload := unwrapData(body)
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("leagueapi: decode %s %s: %w", rc.method, rc.path, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, creds auth.Credentials, rc call) (*http.Request, error) {
	var body io.Reader
	if rc.body != nil {
		encoded, err := json.Marshal(rc.body)
		if err != nil {
			return nil, fmt.Errorf("leagueapi: encode %s %s: %w", rc.method, rc.path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL+rc.path, body)
	if err != nil {
		return nil, err
	}
	if len(rc.query) > 0 {
		req.URL.RawQuery = rc.query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer := creds.Bearer(); bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	if id := requestutil.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(requestutil.HeaderRequestID, id)
	}
	return req, nil
}

func (c *Client) observe(ctx context.Context, rc call, start time.Time, status int, err error) {
	duration := c.now().Sub(start)
	c.metrics.RecordUpstreamCall(rc.endpoint, duration, err)

	logger := logging.FromContext(ctx, c.logger)
	if logger == nil {
		return
	}
	args := []any{
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldMethod, rc.method),
		slog.String(logging.FieldPath, rc.path),
		slog.Int(logging.FieldStatusCode, status),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if err != nil {
		logger.Warn("league api call failed", append(args, logging.FieldError, err)...)
		return
	}
	logger.Debug("league api call", args...)
}

func escape(id fmt.Stringer) string {
	return url.PathEscape(id.String())
}
