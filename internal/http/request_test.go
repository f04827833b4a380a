package http

import (
	"context"
	"io"
	"testing"
)

func TestRequest_Build(t *testing.T) {
	req := NewRequest("GET", "http://example.com/users")
	req.WithHeader("Accept", "application/json")

	httpReq, err := req.Build(context.Background())
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if httpReq.Method != "GET" {
		t.Errorf("Expected method GET, got %s", httpReq.Method)
	}
	if httpReq.URL.String() != "http://example.com/users" {
		t.Errorf("Expected URL http://example.com/users, got %s", httpReq.URL.String())
	}
	if httpReq.Header.Get("Accept") != "application/json" {
		t.Errorf("Expected Accept: application/json, got %s", httpReq.Header.Get("Accept"))
	}
	if httpReq.Body != nil {
		t.Error("Expected no body for GET request")
	}
}

func TestRequest_BuildWithJSONBody(t *testing.T) {
	req := NewRequest("POST", "http://example.com/users")
	req.WithBody(map[string]string{"name": "test"})

	httpReq, err := req.Build(context.Background())
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if httpReq.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got %s", httpReq.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(httpReq.Body)
	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}
	expectedBody := `{"name":"test"}`
	if string(body) != expectedBody {
		t.Errorf("Expected body %s, got %s", expectedBody, string(body))
	}
}

func TestRequest_BuildKeepsExplicitContentType(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.WithHeader("Content-Type", "application/vnd.api+json")
	req.WithBody(map[string]string{"a": "1"})

	httpReq, err := req.Build(context.Background())
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	if httpReq.Header.Get("Content-Type") != "application/vnd.api+json" {
		t.Errorf("Expected explicit Content-Type to be preserved, got %s", httpReq.Header.Get("Content-Type"))
	}
}

func TestRequest_BuildWithStringBody(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.WithBody("raw text")

	httpReq, err := req.Build(context.Background())
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}

	body, err := io.ReadAll(httpReq.Body)
	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}
	if string(body) != "raw text" {
		t.Errorf("Expected body 'raw text', got %s", string(body))
	}
	if httpReq.Header.Get("Content-Type") != "" {
		t.Errorf("Expected no Content-Type for string body, got %s", httpReq.Header.Get("Content-Type"))
	}
}
