package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"github.com/nao1215/lookupbot/internal/model"
	"github.com/nao1215/lookupbot/internal/normalize"
)

const (
	// DefaultTimeout bounds a whole lookup, from dial to the last body byte.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps how much of the response body is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies the bot to the lookup API.
	DefaultUserAgent = "lookupbot/1.0"
)

// Searcher is the behaviour the command orchestrator needs from a lookup
// backend. *Client implements it.
type Searcher interface {
	// Lookup queries the backend for number and classifies the answer.
	Lookup(ctx context.Context, number string) model.Result
}

// Client queries the lookup API.
// It is safe for concurrent use; every call is an independent request.
type Client struct {
	baseURL      *url.URL
	key          string
	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodySize  int64
	proxyAddress string
	logger       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
// WithProxy is ignored when a client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the total time allowed for one lookup.
// Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodySize limits the number of body bytes decoded.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithProxy routes requests through a SOCKS5 proxy at addr ("host:port"),
// for example a local Tor daemon.
func WithProxy(addr string) Option {
	return func(c *Client) {
		c.proxyAddress = addr
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the API at baseURL authenticated with key.
// No request is made until Lookup is called.
func NewClient(baseURL, key string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:     u,
		key:         key,
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		c.httpClient, err = c.newHTTPClient()
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// newHTTPClient builds the default HTTP client, dialing through the SOCKS5
// proxy when one is configured.
func (c *Client) newHTTPClient() (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // DefaultTransport is always *http.Transport

	if c.proxyAddress != "" {
		if _, _, err := net.SplitHostPort(c.proxyAddress); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, c.proxyAddress)
		}

		dialer, err := proxy.SOCKS5("tcp", c.proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}, nil
}

// queryURL returns the request URL for number. Query parameters already
// present on the base URL are kept.
func (c *Client) queryURL(number string) string {
	u := *c.baseURL
	q := u.Query()
	q.Set("key", c.key)
	q.Set("number", number)
	u.RawQuery = q.Encode()
	return u.String()
}

// Lookup performs one search for number.
// The returned Result is never nil-valued: every failure becomes an error
// Result wrapping ErrInvalidNumber, ErrTransport, ErrMalformedResponse or an
// *UpstreamError.
func (c *Client) Lookup(ctx context.Context, number string) model.Result {
	if !normalize.IsValidNumber(number) {
		return model.ErrorResult(fmt.Errorf("%w: %q", ErrInvalidNumber, number))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(number), nil)
	if err != nil {
		return model.ErrorResult(fmt.Errorf("%w: %w", ErrTransport, stripURL(err)))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransport, stripURL(err))
		c.logger.Warn("lookup request failed", "number", number, "error", err)
		return model.ErrorResult(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodySize)) //nolint:errcheck // drain for connection reuse
		c.logger.Warn("lookup API returned non-2xx status", "number", number, "status", resp.StatusCode)
		return model.ErrorResult(&UpstreamError{StatusCode: resp.StatusCode})
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodySize))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedResponse, stripURL(err))
		c.logger.Warn("lookup response could not be decoded", "number", number, "error", err)
		return model.ErrorResult(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: trailing data after JSON value", ErrMalformedResponse)
		c.logger.Warn("lookup response could not be decoded", "number", number, "error", err)
		return model.ErrorResult(err)
	}

	result := Classify(payload)
	c.logger.Debug("lookup completed",
		"number", number,
		"kind", result.Kind,
		"records", result.Count(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return result
}

// stripURL drops the request URL (which carries the API key) from errors
// produced by net/http.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
