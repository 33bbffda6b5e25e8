// ABOUTME: Standard HTTP client implementation with retry logic, charset decoding and politeness throttling
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient document fetching

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"textprep-app-api/core/interfaces"
)

const (
	maxRetries       = 3
	defaultUserAgent = "TextprepAPI/1.0"
	defaultTimeout   = 10 * time.Second
)

// Options configures the HTTP client
type Options struct {
	// Timeout bounds each request including body read
	Timeout time.Duration

	// UserAgent identifies the service to document sources
	UserAgent string

	// RequestsPerSecond throttles outbound requests when positive.
	// Gutenberg mirrors ask crawlers to keep a modest request rate.
	RequestsPerSecond float64

	// Transport overrides the underlying RoundTripper. Nil means
	// http.DefaultTransport.
	Transport http.RoundTripper
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the given options
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
		limiter:   limiter,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	// Set User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	// Perform request with retry logic
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
				// Continue with retry
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Close body for retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if resp == nil {
		return nil, lastErr
	}

	body := io.ReadCloser(resp.Body)
	if resp.StatusCode == http.StatusOK {
		body, err = decodeBody(resp)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}

	// Set User-Agent
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// wait blocks until the politeness limiter admits another request
func (c *StandardHTTPClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// decodeBody converts the response body to UTF-8 based on the declared
// or sniffed charset. Gutenberg mirrors serve both Latin-1 and UTF-8.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	decoded, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err == io.EOF {
		// An empty body has nothing to decode
		return resp.Body, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	return &decodedBody{Reader: decoded, closer: resp.Body}, nil
}

// decodedBody streams the charset-decoded body while closing the
// underlying network body
type decodedBody struct {
	io.Reader
	closer io.Closer
}

func (b *decodedBody) Close() error {
	return b.closer.Close()
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
