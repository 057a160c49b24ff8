package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy. Nil means a single attempt.
	Backoff *BackoffConfig
	// Logger receives request/response events. Nil disables them.
	Logger HTTPLogger
	// Transport replaces the pooled transport, mostly for tests.
	Transport http.RoundTripper
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// call carries everything a single exchange needs.
type call struct {
	ctx         context.Context
	method      string
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
}

// outcome is the result of one attempt.
type outcome struct {
	successResp  any
	errorResp    any
	status       int
	responseBody string
	err          error
}

// doRequestWithBackoff runs the call, retrying on transport errors, 429 and 5xx according to backoff.
// A nil backoff falls back to the client's default; no policy at all means one attempt.
func (hc *Client) doRequestWithBackoff(c call, backoff *BackoffConfig) (any, any, int, error) {
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if backoff == nil {
		backoff = hc.backoff
	}

	maxRetries := 0
	if backoff != nil {
		maxRetries = backoff.MaxRetries
	}

	var out outcome
	for attempt := 0; ; attempt++ {
		start := time.Now()
		out = hc.doRequest(c)
		latency := time.Since(start).Milliseconds()

		if out.err == nil || attempt >= maxRetries || !backoff.shouldRetry(out.status, out.err) {
			hc.logOutcome(c, out, latency)
			break
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(c.method, hc.buildURL(c.path), c.headers, describeBody(c.body),
				out.status, out.responseBody, latency, out.err, attempt+1, maxRetries)
		}

		timer := time.NewTimer(backoff.delay(attempt))
		select {
		case <-c.ctx.Done():
			timer.Stop()
			return nil, nil, out.status, c.ctx.Err()
		case <-timer.C:
		}
	}

	return out.successResp, out.errorResp, out.status, out.err
}

func (hc *Client) logOutcome(c call, out outcome, latency int64) {
	if hc.logger == nil {
		return
	}
	target := hc.buildURL(c.path)
	if out.err == nil {
		hc.logger.LogResponseSuccess(c.method, target, c.headers, describeBody(c.body), out.status, out.responseBody, latency)
		return
	}
	hc.logger.LogResponseError(c.method, target, c.headers, describeBody(c.body), out.status, out.responseBody, latency, out.err)
}

// doRequest sends one HTTP request: it builds the URL, encodes the body by content type,
// applies headers, executes and decodes either the success or the error response.
func (hc *Client) doRequest(c call) outcome {
	target := hc.buildURL(c.path)
	if len(c.queryParams) > 0 {
		target += "?" + buildQueryString(c.queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(c.body)
	if err != nil {
		return outcome{err: err}
	}

	req, err := http.NewRequestWithContext(c.ctx, c.method, target, bodyReader)
	if err != nil {
		return outcome{err: err}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(c.method, target, c.headers, describeBody(c.body))
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return outcome{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcome{status: resp.StatusCode, err: err}
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	out := outcome{status: resp.StatusCode, responseBody: string(bodyBytes)}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if c.successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, c.successResp); err != nil {
				out.err = fmt.Errorf("failed to decode response: %w", err)
				return out
			}
		}
		out.successResp = c.successResp
		return out
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return out
	}

	if c.errorResp != nil && len(bodyBytes) > 0 {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, c.errorResp); err == nil {
			out.errorResp = c.errorResp
		}
	}

	out.err = &StatusError{StatusCode: resp.StatusCode}
	return out
}

// encodeBody prepares the request body according to its Go type and the default content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return bytes.NewBufferString(body), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(body), "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", nil
	case "text/plain":
		return bytes.NewBufferString(fmt.Sprintf("%v", body)), "text/plain", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins baseURL and path with exactly one slash between them.
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string with keys in stable order.
func buildQueryString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		values.Set(key, params[key])
	}
	return values.Encode()
}

func describeBody(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		return b
	case []byte:
		return string(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Sprintf("%v", b)
		}
		return string(encoded)
	}
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}
