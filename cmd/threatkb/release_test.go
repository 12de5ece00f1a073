package main

import (
	"net/http"
	"testing"
)

func TestReleaseEndToEnd(t *testing.T) {
	var path, short string
	startAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		short = r.URL.Query().Get("short")
		_, _ = w.Write([]byte(`{"id":5}`))
	}))

	if err := runCLI("release", "5"); err != nil {
		t.Fatalf("release command failed: %v", err)
	}
	if path != "/ThreatKB/releases/5" {
		t.Errorf("path = %q, want /ThreatKB/releases/5", path)
	}
	if short != "0" {
		t.Errorf("short query = %q, want 0", short)
	}
}

func TestReleaseWithoutID(t *testing.T) {
	var path string
	startAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))

	if err := runCLI("release"); err != nil {
		t.Fatalf("release command failed: %v", err)
	}
	if path != "/ThreatKB/releases" {
		t.Errorf("path = %q, want /ThreatKB/releases", path)
	}
}
