package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Request represents an HTTP request before it is sent
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    interface{}
}

// NewRequest creates a new HTTP request for the given method and URL
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

// WithHeader adds a header to the request
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithBody sets the body of the request. Strings, byte slices and readers
// are sent as-is; anything else is marshaled as JSON, and the Content-Type
// header is set to application/json unless one was set already.
func (r *Request) WithBody(body interface{}) *Request {
	r.Body = body
	return r
}

// Build constructs an http.Request from the Request
func (r *Request) Build(ctx context.Context) (*http.Request, error) {
	// Prepare the body
	var bodyReader io.Reader
	if r.Body != nil {
		switch body := r.Body.(type) {
		case string:
			bodyReader = strings.NewReader(body)
		case []byte:
			bodyReader = bytes.NewReader(body)
		case io.Reader:
			bodyReader = body
		default:
			// Assume JSON for other types
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, err
			}
			bodyReader = bytes.NewReader(jsonBody)
			if _, ok := r.Headers["Content-Type"]; !ok {
				r.Headers["Content-Type"] = "application/json"
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bodyReader)
	if err != nil {
		return nil, err
	}

	// Add headers
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
