package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name     string
		latest   string
		current  string
		expected bool
	}{
		{"same version", "0.1.0", "0.1.0", false},
		{"patch upgrade", "0.1.1", "0.1.0", true},
		{"patch downgrade", "0.0.9", "0.1.0", false},
		{"minor upgrade", "0.2.0", "0.1.9", true},
		{"major upgrade", "1.0.0", "0.9.9", true},
		{"multi-digit", "0.10.0", "0.9.0", true},
		{"shorter latest", "1.0", "0.9.3", true},
		{"shorter current", "0.9.3", "1.0", false},
		{"pre-release same base", "0.2.0-rc1", "0.2.0", false},
		{"build metadata", "0.2.1+abc", "0.2.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewer(tt.latest, tt.current); got != tt.expected {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.expected)
			}
		})
	}
}

func TestCheckForUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "tabpad/"+Version {
			t.Errorf("Expected User-Agent tabpad/%s, got %q", Version, ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v9.0.0","name":"tabpad 9","html_url":"https://example.com/r/9"}`))
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}

	release, newer, err := c.CheckForUpdate(context.Background(), "v0.1.0")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !newer {
		t.Error("Expected 9.0.0 to be newer than 0.1.0")
	}
	if release.Version() != "9.0.0" {
		t.Errorf("Expected version 9.0.0, got %q", release.Version())
	}

	_, newer, err = c.CheckForUpdate(context.Background(), "9.0.0")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if newer {
		t.Error("Expected no update for the same version")
	}
}

func TestCheckForUpdate_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}
	if _, _, err := c.CheckForUpdate(context.Background(), "0.1.0"); err == nil {
		t.Error("Expected error for non-200 response")
	}
}
