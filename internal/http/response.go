package http

import (
	"mime"
	"net/http"
	"sort"
	"time"
)

// Response is the fully received result of one request
type Response struct {
	Proto        string
	StatusCode   int
	Status       string
	Headers      http.Header
	Body         []byte
	ResponseTime time.Duration
}

// BodyString returns the response body as text
func (r *Response) BodyString() string {
	return string(r.Body)
}

// GetHeader returns the value of the specified header
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// HeaderNames returns the response header names in sorted order. net/http
// canonicalizes header names into a map, so the order they arrived in is
// not recoverable; sorting keeps the output deterministic.
func (r *Response) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MediaType returns the structured media type from the Content-Type header
// (e.g. "application/json") along with its parameters. The bool is false
// when the header is absent or does not parse as a media type.
func (r *Response) MediaType() (string, map[string]string, bool) {
	contentType := r.Headers.Get("Content-Type")
	if contentType == "" {
		return "", nil, false
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, false
	}

	return mediaType, params, true
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}
