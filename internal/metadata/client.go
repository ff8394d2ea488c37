// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata is a client for the remote metadata service that
// completes partial catalog entries: book details by ISBN and webpage
// titles by URL.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/citeref/internal/httputil"
	"github.com/pdiddy/citeref/pkg/types"
)

const (
	// DefaultEndpoint is the public metadata service.
	DefaultEndpoint = "http://docman.zhuof.wang"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	isbnPath  = "/isbn/"
	titlePath = "/title/"
)

// ErrIncompleteResponse indicates the service answered 200 but left out a
// field the caller needs.
var ErrIncompleteResponse = errors.New("incomplete metadata response")

// Client fetches metadata from the service. Lookups are issued one at a
// time; nothing is cached between calls.
type Client struct {
	httpClient httputil.Doer
	limiter    *rate.Limiter
	logger     *zap.Logger
	endpoint   string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc httputil.Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEndpoint sets the service base URL (for testing or a self-hosted service).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with each lookup.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit caps lookups per second. A value <= 0 removes the cap.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLogger sets the logger used for per-lookup debug output.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a metadata client with the default endpoint and timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     zap.NewNop(),
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a client from MetadataConfig, filling in
// defaults for zero values.
func NewClientFromConfig(cfg types.MetadataConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return NewClient(
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithEndpoint(endpoint),
		WithUserAgent(cfg.UserAgent),
		WithRateLimit(cfg.RateLimit),
		WithLogger(logger),
	)
}

// bookResponse is the body of GET /isbn/{isbn}. Year may arrive as a string
// or a number.
type bookResponse struct {
	Author    *string   `json:"author"`
	Title     *string   `json:"title"`
	Publisher *string   `json:"publisher"`
	Year      *yearText `json:"year"`
}

// titleResponse is the body of GET /title/{url}.
type titleResponse struct {
	Title *string `json:"title"`
}

// FetchBookInfo looks up book details by ISBN.
func (c *Client) FetchBookInfo(ctx context.Context, isbn string) (types.Book, error) {
	var resp bookResponse
	if err := c.get(ctx, isbnPath+EncodeComponent(isbn), &resp); err != nil {
		return types.Book{}, fmt.Errorf("fetching book info for ISBN %s: %w", isbn, err)
	}

	var missing []string
	if resp.Author == nil {
		missing = append(missing, "author")
	}
	if resp.Title == nil {
		missing = append(missing, "title")
	}
	if resp.Publisher == nil {
		missing = append(missing, "publisher")
	}
	if resp.Year == nil {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return types.Book{}, fmt.Errorf("fetching book info for ISBN %s: %w: missing %s",
			isbn, ErrIncompleteResponse, strings.Join(missing, ", "))
	}

	return types.Book{
		Author:    *resp.Author,
		Title:     *resp.Title,
		Publisher: *resp.Publisher,
		Year:      string(*resp.Year),
	}, nil
}

// FetchWebpageTitle looks up the title of the page at pageURL.
func (c *Client) FetchWebpageTitle(ctx context.Context, pageURL string) (string, error) {
	var resp titleResponse
	if err := c.get(ctx, titlePath+EncodeComponent(pageURL), &resp); err != nil {
		return "", fmt.Errorf("fetching webpage title for URL %s: %w", pageURL, err)
	}
	if resp.Title == nil {
		return "", fmt.Errorf("fetching webpage title for URL %s: %w: missing title", pageURL, ErrIncompleteResponse)
	}
	return *resp.Title, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	err := httputil.GetJSON(ctx, c.httpClient, c.endpoint+path, c.userAgent, v)
	c.logger.Debug("metadata lookup",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}

// yearText accepts a JSON string or integer and keeps its text form. An
// integer may be written as an integral float such as 1988.0 and must fit in
// 32 bits, the same rule the catalog applies to its own year fields.
type yearText string

func (y *yearText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*y = yearText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("year must be a string or integer, got %s", b)
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
		*y = yearText(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
		*y = yearText(strconv.Itoa(int(f)))
		return nil
	}
	return fmt.Errorf("year must be a string or integer, got %s", b)
}
