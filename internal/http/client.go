package http

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Client wraps net/http with the handful of knobs this tool needs. One
// client is created per invocation and can serve any number of requests
// within it.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options. Without
// options the client has no timeout and uses the transport defaults.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		headers:    make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTimeout sets the timeout for the client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a header sent with every request made by the client
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Do executes a single request and returns the fully read response. Any
// transport failure (DNS, connect, TLS, timeout) is returned as the error;
// there is no retry.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.Build(ctx)
	if err != nil {
		return nil, err
	}

	// Add client headers
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Proto:        httpResp.Proto,
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		Headers:      httpResp.Header,
		Body:         bodyBytes,
		ResponseTime: time.Since(start),
	}, nil
}
