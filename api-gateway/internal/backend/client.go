package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// AccessTokenHeader is the header the backend reads the admin token from.
const AccessTokenHeader = "access_token"

const maxErrorBody = 4 << 10

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer is notified once per backend call.
type Observer interface {
	ObserveBackendCall(endpoint string, err error, elapsed time.Duration)
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// StatusCode returns the backend status carried by err, or 0 when err did not
// come from a backend response.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

type Client struct {
	baseURL  string
	client   HTTPClient
	observer Observer
	log      *zap.Logger
}

func NewClient(baseURL string, client HTTPClient, observer Observer, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:  baseURL,
		client:   client,
		observer: observer,
		log:      log.Named("backend"),
	}
}

type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	header   http.Header
	body     any
}

func withToken(token string) http.Header {
	header := http.Header{}
	if token != "" {
		header.Set(AccessTokenHeader, token)
	}
	return header
}

func (c *Client) do(ctx context.Context, in call, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveBackendCall(in.endpoint, err, time.Since(start))
		}
	}()

	target := c.baseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s body: %w", in.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", in.endpoint, err)
	}
	for k, v := range in.header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("backend call", zap.String("method", in.method), zap.String("url", target))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", in.method, in.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     in.method,
			Path:       in.path,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", in.endpoint, err)
	}
	return nil
}
