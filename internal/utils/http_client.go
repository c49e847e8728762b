package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the scan API key on every outbound request.
const APIKeyHeader = "x-pan-token"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prepended to every relative request path. A trailing slash
	// is removed.
	BaseURL string

	// APIKey is sent in the [APIKeyHeader] header when non-empty.
	APIKey string

	// Timeout is the client-wide ceiling for a single request. Per-call
	// timeouts are applied through the request context on top of it.
	Timeout time.Duration

	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
}

// NewHTTPClient creates a JSON HTTP client from opts.
//
// resty's own retry mechanism is left disabled: retries are owned by the
// caller so that each attempt is visible and classified explicitly.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	if opts.Timeout > 0 {
		cli.SetTimeout(opts.Timeout)
	}
	if opts.APIKey != "" {
		cli.SetHeader(APIKeyHeader, opts.APIKey)
	}
	if opts.UserAgent != "" {
		cli.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: cli}
}
