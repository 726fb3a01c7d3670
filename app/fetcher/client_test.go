package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	data, err := client.Get(context.Background(), server.URL, time.Second, "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if string(data) != "hello" {
		t.Errorf("Expected body 'hello', got '%s'", data)
	}
	if gotAgent != "Pulse Test/1.0" {
		t.Errorf("Expected user agent 'Pulse Test/1.0', got '%s'", gotAgent)
	}
}

func TestGetHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	if _, err := client.Get(context.Background(), server.URL, time.Second, ""); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestGetContentTypeMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	_, err := client.Get(context.Background(), server.URL, time.Second, "text/html")
	if !errors.Is(err, ErrUnexpectedContentType) {
		t.Errorf("Expected ErrUnexpectedContentType, got: %v", err)
	}
}

func TestGetTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	start := time.Now()
	_, err := client.Get(context.Background(), server.URL, 50*time.Millisecond, "")
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Errorf("Expected request to be cut off by the timeout, took %v", time.Since(start))
	}
}

func TestGetAcceptsAny2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte("cached copy"))
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	data, err := client.Get(context.Background(), server.URL, time.Second, "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "cached copy" {
		t.Errorf("Expected body 'cached copy', got '%s'", data)
	}
}

func TestGetMissingContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("<p>untyped</p>"))
	}))
	defer server.Close()

	client := NewClient(nil, "Pulse Test/1.0")
	if _, err := client.Get(context.Background(), server.URL, time.Second, "html"); err != nil {
		t.Errorf("Expected response without Content-Type to be accepted, got: %v", err)
	}
}
