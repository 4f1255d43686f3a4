package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/psyclinic/internal/domain"
)

// Getter is the read-only view of the clinic API that the landing site needs.
// Get issues a GET for path (relative to the API base, query string included)
// and decodes the JSON body into dst.
type Getter interface {
	Get(ctx context.Context, path string, dst any) error
}

// Client is a small JSON client for the clinic backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	logger  *slog.Logger
	timeout time.Duration
	token   string
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend: baseURL is required")
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Zero timeout leaves the client unbounded; request contexts still apply.
	httpClient := &http.Client{Timeout: cfg.timeout}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		if d < 0 {
			return fmt.Errorf("backend: negative timeout %s", d)
		}
		cfg.timeout = d
		return nil
	}
}

// WithToken sets a service token used when the request context carries none.
func WithToken(token string) Option {
	return func(cfg *clientConfig) error {
		cfg.token = token
		return nil
	}
}

// Get implements Getter.
func (c *Client) Get(ctx context.Context, path string, dst any) error {
	return c.doJSON(ctx, http.MethodGet, c.url(path), "GET "+operationName(path), dst)
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// doJSON executes an HTTP request and decodes the JSON response into dst.
// A non-2xx status yields an *APIError; an undecodable body wraps
// domain.ErrMalformedResponse.
func (c *Client) doJSON(ctx context.Context, method, url, operation string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.DebugContext(ctx, "backend request", "operation", operation, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend response", "operation", operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return newAPIError(operation, resp.StatusCode, body)
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("%s: decode response: %w: %v", operation, domain.ErrMalformedResponse, err)
		}
	}
	return nil
}

func (c *Client) bearer(ctx context.Context) string {
	if token := TokenFromContext(ctx); token != "" {
		return token
	}
	return c.token
}

// operationName strips the query so log lines group by endpoint.
func operationName(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
