package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/lookupbot/internal/model"
)

// newTestServer returns a server that answers every request with status and body.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test server
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// newTestClient creates a Client for srv with a fixed key.
func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()

	c, err := NewClient(baseURL, "secret-key", opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("empty base URL returns ErrNoBaseURL", func(t *testing.T) {
		t.Parallel()
		if _, err := NewClient("", "k"); !errors.Is(err, ErrNoBaseURL) {
			t.Errorf("expected ErrNoBaseURL, got %v", err)
		}
	})

	t.Run("non-http scheme returns ErrInvalidBaseURL", func(t *testing.T) {
		t.Parallel()
		if _, err := NewClient("ftp://example.com/api", "k"); !errors.Is(err, ErrInvalidBaseURL) {
			t.Errorf("expected ErrInvalidBaseURL, got %v", err)
		}
	})

	t.Run("relative URL returns ErrInvalidBaseURL", func(t *testing.T) {
		t.Parallel()
		if _, err := NewClient("/api.php", "k"); !errors.Is(err, ErrInvalidBaseURL) {
			t.Errorf("expected ErrInvalidBaseURL, got %v", err)
		}
	})

	t.Run("bad proxy address returns ErrInvalidProxyAddress", func(t *testing.T) {
		t.Parallel()
		_, err := NewClient("https://example.com/api", "k", WithProxy("no-port"))
		if !errors.Is(err, ErrInvalidProxyAddress) {
			t.Errorf("expected ErrInvalidProxyAddress, got %v", err)
		}
	})

	t.Run("valid proxy address is accepted", func(t *testing.T) {
		t.Parallel()
		if _, err := NewClient("https://example.com/api", "k", WithProxy("127.0.0.1:9050")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("default timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, "https://example.com/api")
		if c.timeout != 30*time.Second {
			t.Errorf("expected 30s, got %v", c.timeout)
		}
	})
}

func TestClientQueryURL(t *testing.T) {
	t.Parallel()

	type seen struct {
		query url.Values
		ua    string
	}
	seenCh := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCh <- seen{query: r.URL.Query(), ua: r.Header.Get("User-Agent")}
		_, _ = w.Write([]byte(`[]`)) //nolint:errcheck // test server
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL+"/api.php?format=json", WithUserAgent("test-agent"))
	c.Lookup(context.Background(), "9876543210")

	got := <-seenCh
	gotKey, gotNumber, gotExtra, gotUA := got.query.Get("key"), got.query.Get("number"), got.query.Get("format"), got.ua

	if gotKey != "secret-key" {
		t.Errorf("expected key secret-key, got %q", gotKey)
	}
	if gotNumber != "9876543210" {
		t.Errorf("expected number 9876543210, got %q", gotNumber)
	}
	if gotExtra != "json" {
		t.Errorf("expected existing query parameter to be kept, got %q", gotExtra)
	}
	if gotUA != "test-agent" {
		t.Errorf("expected user agent test-agent, got %q", gotUA)
	}
}

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClientWithHTTPClient(t *testing.T) {
	t.Parallel()

	srv, hits := newTestServer(t, http.StatusOK, `[{"name":"asha"}]`)

	var calls atomic.Int32
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return http.DefaultTransport.RoundTrip(r)
	})}

	res := newTestClient(t, srv.URL, WithHTTPClient(hc)).Lookup(context.Background(), "9876543210")

	if res.Kind != model.KindRecords || res.Count() != 1 {
		t.Fatalf("expected one record, got %v (%v)", res.Kind, res.Err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected the supplied client to carry 1 request, got %d", calls.Load())
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 server hit, got %d", hits.Load())
	}
}

func TestClientLookup(t *testing.T) {
	t.Parallel()

	t.Run("list of records keeps order", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK,
			`[{"name":"a","mobile":"9876543210"},{"name":"b"},{"name":"c"}]`)
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

		if res.Kind != model.KindRecords {
			t.Fatalf("expected records, got %v (%v)", res.Kind, res.Err)
		}
		if res.Count() != 3 {
			t.Fatalf("expected 3 records, got %d", res.Count())
		}
		for i, want := range []string{"a", "b", "c"} {
			if got := res.Records[i].Name(); got != want {
				t.Errorf("record %d: expected %q, got %q", i, want, got)
			}
		}
	})

	t.Run("single object is one record", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK, `{"name":"asha","mobile":9876543210}`)
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

		if res.Kind != model.KindRecords || res.Count() != 1 {
			t.Fatalf("expected one record, got %+v", res)
		}
		if got := res.Records[0].Mobile(); got != "9876543210" {
			t.Errorf("expected numeric mobile to render as digits, got %q", got)
		}
	})

	t.Run("empty payloads are empty results", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`[]`, `{}`, `null`} {
			srv, _ := newTestServer(t, http.StatusOK, body)
			res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")
			if res.Kind != model.KindEmpty {
				t.Errorf("body %s: expected empty, got %v", body, res.Kind)
			}
		}
	})

	t.Run("error field is an upstream error", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK, `{"error":"invalid key"}`)
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

		if res.Kind != model.KindError {
			t.Fatalf("expected error, got %v", res.Kind)
		}
		var upErr *UpstreamError
		if !errors.As(res.Err, &upErr) {
			t.Fatalf("expected *UpstreamError, got %T", res.Err)
		}
		if upErr.Message != "invalid key" {
			t.Errorf("expected message 'invalid key', got %q", upErr.Message)
		}
		if !errors.Is(res.Err, ErrUpstream) {
			t.Error("expected errors.Is(err, ErrUpstream)")
		}
	})

	t.Run("non-2xx status is an upstream error", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusInternalServerError, `oops`)
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

		var upErr *UpstreamError
		if !errors.As(res.Err, &upErr) {
			t.Fatalf("expected *UpstreamError, got %v", res.Err)
		}
		if upErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", upErr.StatusCode)
		}
		if res.Err.Error() != "API status 500" {
			t.Errorf("unexpected message %q", res.Err.Error())
		}
	})

	t.Run("invalid JSON is a malformed response", func(t *testing.T) {
		t.Parallel()

		bodies := []string{
			`<html>not json</html>`,
			``,
			`[] <html>502 Bad Gateway</html>`,
			`{"name":"asha"}{"name":"ravi"}`,
			`{"name":"asha"} Warning: mysqli_connect() failed`,
		}
		for _, body := range bodies {
			srv, _ := newTestServer(t, http.StatusOK, body)
			res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

			if res.Kind != model.KindError {
				t.Errorf("body %q: expected error, got %v", body, res.Kind)
			}
			if !errors.Is(res.Err, ErrMalformedResponse) {
				t.Errorf("body %q: expected ErrMalformedResponse, got %v", body, res.Err)
			}
		}
	})

	t.Run("trailing whitespace is accepted", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, http.StatusOK, "[{\"name\":\"asha\"}]\n  \n")
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "9876543210")

		if res.Kind != model.KindRecords || res.Count() != 1 {
			t.Errorf("expected one record, got %v (%v)", res.Kind, res.Err)
		}
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			_, _ = w.Write([]byte(`[]`)) //nolint:errcheck // test server
		}))
		t.Cleanup(srv.Close)

		res := newTestClient(t, srv.URL, WithTimeout(50*time.Millisecond)).
			Lookup(context.Background(), "9876543210")

		if !errors.Is(res.Err, ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", res.Err)
		}
	})

	t.Run("connection failure does not leak the key", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		deadURL := srv.URL
		srv.Close()

		res := newTestClient(t, deadURL).Lookup(context.Background(), "9876543210")

		if !errors.Is(res.Err, ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", res.Err)
		}
		if strings.Contains(res.Err.Error(), "secret-key") {
			t.Errorf("error leaks API key: %v", res.Err)
		}
	})

	t.Run("invalid number sends no request", func(t *testing.T) {
		t.Parallel()

		srv, hits := newTestServer(t, http.StatusOK, `[]`)
		res := newTestClient(t, srv.URL).Lookup(context.Background(), "12345")

		if !errors.Is(res.Err, ErrInvalidNumber) {
			t.Errorf("expected ErrInvalidNumber, got %v", res.Err)
		}
		if hits.Load() != 0 {
			t.Errorf("expected no request, got %d", hits.Load())
		}
	})
}
