package httpapi

import (
	"net/http"
	"testing"
)

func TestCORSHeadersOnRegularRequest(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeContent{})

	w := doRequest(t, s, http.MethodGet, "/ping", "")

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Fatalf("Access-Control-Allow-Methods = %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeContent{})

	w := doRequest(t, s, http.MethodOptions, "/login", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Fatalf("Access-Control-Allow-Headers = %q", got)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("preflight body must be empty, got %q", w.Body.String())
	}
}
