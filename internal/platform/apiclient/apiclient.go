package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody limits response body kept in StatusError.
const maxErrorBody = 1024

// Client sends JSON requests to marketplace seller API.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	headers   http.Header
}

// NewClient returns new Client sending requests relative to baseURL with provided headers.
func NewClient(client *http.Client, baseURL, userAgent string, headers http.Header) *Client {
	return &Client{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		headers:   headers.Clone(),
	}
}

// Do sends request with JSON encoded body (if not nil) and decodes JSON response into out (if not nil).
// Response status 400 or higher is returned as *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("can't encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	for header, values := range c.headers {
		for _, value := range values {
			req.Header.Add(header, value)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        c.baseURL + path,
			StatusCode: resp.StatusCode,
			Body:       string(errBody),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("can't decode response body: %w", err)
	}

	return nil
}
