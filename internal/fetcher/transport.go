package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rohmanhakim/recipebox/pkg/limiter"
	"github.com/rohmanhakim/recipebox/pkg/timeutil"
)

// Response is what a Transport hands back for one GET.
// StatusCode 0 means the response carried no status metadata.
type Response struct {
	StatusCode int
	Header     map[string]string
	Body       []byte
}

// Transport performs a single GET. Implementations must honour ctx and
// return a non-nil error only when no response was obtained.
type Transport interface {
	Do(ctx context.Context, target *url.URL) (Response, error)
}

/*
HTTPTransport is the net/http adapter.

- Applies timeout, User-Agent and Accept headers
- Caps the body at maxBodyBytes (0 is unlimited)
- Waits out the per-host politeness delay before sending
- Feeds throttling and server errors back into the limiter

It never interprets the status code; classification belongs to the services.
*/
type HTTPTransport struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	rateLimiter  limiter.RateLimiter
}

// NewHTTPTransport builds the adapter. rateLimiter may be nil.
func NewHTTPTransport(
	timeout time.Duration,
	userAgent string,
	maxBodyBytes int64,
	rateLimiter limiter.RateLimiter,
) *HTTPTransport {
	return &HTTPTransport{
		httpClient:   &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
		rateLimiter:  rateLimiter,
	}
}

func (h *HTTPTransport) Do(ctx context.Context, target *url.URL) (Response, error) {
	host := target.Host

	if h.rateLimiter != nil {
		if err := timeutil.Sleep(ctx, h.rateLimiter.ResolveDelay(host)); err != nil {
			return Response{}, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return Response{}, err
	}
	for key, value := range requestHeaders(h.userAgent) {
		req.Header.Set(key, value)
	}

	resp, err := h.httpClient.Do(req)
	if h.rateLimiter != nil {
		h.rateLimiter.MarkLastFetchAsNow(host)
	}
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	h.updatePoliteness(host, resp)

	body, err := h.readBody(resp.Body)
	if err != nil {
		return Response{}, err
	}

	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	return Response{
		StatusCode: resp.StatusCode,
		Header:     headers,
		Body:       body,
	}, nil
}

func (h *HTTPTransport) readBody(body io.Reader) ([]byte, error) {
	if h.maxBodyBytes <= 0 {
		return io.ReadAll(body)
	}
	data, err := io.ReadAll(io.LimitReader(body, h.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", h.maxBodyBytes)
	}
	return data, nil
}

func (h *HTTPTransport) updatePoliteness(host string, resp *http.Response) {
	if h.rateLimiter == nil {
		return
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if delay, ok := parseRetryAfter(resp.Header.Get("Retry-After")); ok {
			h.rateLimiter.SetHostDelay(host, delay)
		}
		h.rateLimiter.Backoff(host)
	case resp.StatusCode >= 500:
		h.rateLimiter.Backoff(host)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		h.rateLimiter.ResetBackoff(host)
	}
}

// parseRetryAfter understands the delay-seconds form only.
func parseRetryAfter(value string) (time.Duration, bool) {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

func requestHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}
}
