package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
)

// Options configures an HTTPClient.
type Options struct {
	BaseURL   string        // e.g. "http://127.0.0.1:8000"
	APIPrefix string        // "/api" or ""
	Timeout   time.Duration // per attempt; 0 disables
	RetryMax  int           // transport-level retries on connection errors only
	Logger    logrus.FieldLogger
}

// HTTPClient talks to the backend over HTTP, keeping the session cookie in
// a cookie jar.
type HTTPClient struct {
	baseURL string
	prefix  string
	client  *retryablehttp.Client
	log     logrus.FieldLogger
}

// NewHTTPClient creates a client for the given backend.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q needs scheme and host", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.CheckRetry = retryConnectionErrors
	rc.HTTPClient.Jar = jar
	rc.HTTPClient.Timeout = opts.Timeout
	// A redirect to /login is how the backend reports an expired session;
	// following it would turn that into a 200 HTML page.
	rc.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(base.String(), "/"),
		prefix:  normalizePrefix(opts.APIPrefix),
		client:  rc,
		log:     logger,
	}, nil
}

// retryConnectionErrors retries only when no response arrived at all. Any
// HTTP status is final.
func retryConnectionErrors(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err == nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func normalizePrefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// FetchProviders fetches /api/providers.
func (c *HTTPClient) FetchProviders(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "providers", c.apiPath("/providers", nil), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCountries fetches /api/countries?provider=.
func (c *HTTPClient) FetchCountries(ctx context.Context, provider string) ([]string, error) {
	q := url.Values{"provider": {provider}}
	var out []string
	if err := c.getJSON(ctx, "countries", c.apiPath("/countries", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchEvents fetches /api/events?provider=&country=.
func (c *HTTPClient) FetchEvents(ctx context.Context, provider, country string) ([]Event, error) {
	q := url.Values{"provider": {provider}, "country": {country}}
	var out []Event
	if err := c.getJSON(ctx, "events", c.apiPath("/events", q), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}

// ICSURL returns the calendar export link for a selection.
func (c *HTTPClient) ICSURL(provider, country string) string {
	return c.baseURL + c.apiPath("/ics", url.Values{"provider": {provider}, "country": {country}})
}

// DownloadICS streams the calendar export into w and returns the filename
// proposed by the backend.
func (c *HTTPClient) DownloadICS(ctx context.Context, provider, country string, w io.Writer) (string, error) {
	q := url.Values{"provider": {provider}, "country": {country}}
	resp, err := c.do(ctx, "ics", http.MethodGet, c.apiPath("/ics", q), nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", failure("ics", err)
	}
	return attachmentName(resp.Header.Get("Content-Disposition"), "pedidos.ics"), nil
}

// Login posts the credentials form. The session cookie lands in the jar.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := c.newRequest(ctx, http.MethodPost, "/login", strings.NewReader(form.Encode()))
	if err != nil {
		return failure("login", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.send("login", req)
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	// The backend redirects on success and re-renders the form on failure.
	if resp.StatusCode == http.StatusSeeOther || resp.StatusCode == http.StatusFound {
		return nil
	}
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusUnauthorized {
		return ErrBadCredentials
	}
	return &Error{Kind: KindGateway, Op: "login", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
}

// Logout ends the session on the backend.
func (c *HTTPClient) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/logout", nil)
	if err != nil {
		return failure("logout", err)
	}
	resp, err := c.send("logout", req)
	if err != nil {
		return err
	}
	drain(resp.Body)
	return nil
}

func (c *HTTPClient) apiPath(p string, q url.Values) string {
	path := c.prefix + p
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return path
}

func (c *HTTPClient) getJSON(ctx context.Context, op, path string, out interface{}) error {
	resp, err := c.do(ctx, op, http.MethodGet, path, nil, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure(op, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

// do sends a request and maps any non-2xx status to KindUnauthenticated. The
// body of such a response is discarded unread.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body io.Reader, accept string) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, failure(op, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := c.send(op, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		return nil, unauthenticated(op, resp.StatusCode)
	}
	return resp, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*retryablehttp.Request, error) {
	var raw interface{}
	if body != nil {
		raw = body
	}
	return retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, raw)
}

func (c *HTTPClient) send(op string, req *retryablehttp.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.client.Do(req)
	entry := c.log.WithFields(logrus.Fields{
		"op":      op,
		"method":  req.Method,
		"path":    req.URL.RequestURI(),
		"latency": time.Since(start).Round(time.Millisecond),
	})
	if err != nil {
		entry.WithError(err).Debug("gateway request failed")
		return nil, failure(op, err)
	}
	entry.WithField("status", resp.StatusCode).Debug("gateway request")
	return resp, nil
}

func drain(rc io.ReadCloser) {
	io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	rc.Close()
}

// attachmentName returns the filename parameter of a Content-Disposition
// header, or fallback when it is missing or malformed.
func attachmentName(header, fallback string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return filepath.Base(params["filename"])
}
