package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestService_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("Expected format=json, got %q", got)
		}
		if got := r.URL.Query().Get("url"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
			t.Errorf("Unexpected lookup url %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Never Gonna Give You Up","author_name":"Rick Astley"}`))
	}))
	defer server.Close()

	svc := NewService(server.URL)
	meta, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}

	if meta.Title != "Never Gonna Give You Up" {
		t.Errorf("Expected title 'Never Gonna Give You Up', got %q", meta.Title)
	}
	if meta.Author != "Rick Astley" {
		t.Errorf("Expected author 'Rick Astley', got %q", meta.Author)
	}
	// Description defaults to title since the source provides none
	if meta.Description != meta.Title {
		t.Errorf("Expected description to default to title, got %q", meta.Description)
	}
	if meta.ThumbnailURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg" {
		t.Errorf("Unexpected thumbnail URL %q", meta.ThumbnailURL)
	}
}

func TestService_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(server.URL)
	if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Error("Expected error for non-2xx response, got nil")
	}
}

func TestService_Fetch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bad Request"))
	}))
	defer server.Close()

	svc := NewService(server.URL)
	if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Error("Expected error for malformed response, got nil")
	}
}

func TestService_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(server.URL)
	if _, err := svc.Fetch(ctx, "dQw4w9WgXcQ"); err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}

func TestNewService_DefaultEndpoint(t *testing.T) {
	svc := NewService("")
	if svc.endpoint != DefaultEndpoint {
		t.Errorf("Expected default endpoint %q, got %q", DefaultEndpoint, svc.endpoint)
	}
}
