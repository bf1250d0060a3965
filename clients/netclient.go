// Package clients provides transport adapters over net/http that satisfy
// the reqwire HTTPClient and ContextHTTPClient interfaces.
package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetClient adapts an *http.Client to the reqwire transport interfaces.
// The zero value is not usable; construct with New or WithClient.
type NetClient struct {
	client *http.Client
}

// New returns a NetClient backed by a fresh *http.Client.
func New() *NetClient {
	return &NetClient{client: &http.Client{}}
}

// WithClient returns a NetClient backed by a caller-configured *http.Client,
// for custom transports, proxies, or default timeouts.
func WithClient(c *http.Client) *NetClient {
	return &NetClient{client: c}
}

// StatusError reports a non-2xx response. The response body is retained so
// callers can inspect API error payloads.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Send performs a blocking request. A non-zero timeout bounds the whole
// exchange via context.WithTimeout.
func (c *NetClient) Send(method, url string, headers map[string]string, body []byte, timeout time.Duration) ([]byte, error) {
	return c.SendContext(context.Background(), method, url, headers, body, timeout)
}

// SendContext performs a request bounded by ctx and, when non-zero, timeout.
func (c *NetClient) SendContext(ctx context.Context, method, url string, headers map[string]string, body []byte, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{StatusCode: res.StatusCode, Body: data}
	}
	return data, nil
}
