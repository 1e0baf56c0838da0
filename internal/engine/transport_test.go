package engine

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHostBoundaryTransport(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	tests := []struct {
		name    string
		allowed []string
		url     string
		wantErr bool
	}{
		{name: "matching host allowed", allowed: []string{"example.com"}, url: "http://example.com/sites.json"},
		{name: "subdomain allowed", allowed: []string{"example.com"}, url: "http://data.example.com/a"},
		{name: "other host blocked", allowed: []string{"example.com"}, url: "http://attacker.test/a", wantErr: true},
		{name: "empty list blocks nothing", allowed: nil, url: "http://anywhere.test/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &HostBoundaryTransport{
				// Rewrite every allowed request to the local backend so the
				// test never leaves the machine.
				Base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
					return http.Get(backend.URL)
				}),
				AllowedRootDomains: tt.allowed,
			}

			req, err := http.NewRequest(http.MethodGet, tt.url, nil)
			if err != nil {
				t.Fatal(err)
			}
			resp, err := tr.RoundTrip(req)
			if tt.wantErr {
				if err == nil {
					resp.Body.Close()
					t.Fatalf("expected %s to be blocked", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()
		})
	}
}

func TestRequestBudgetTransport(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	tr := &RequestBudgetTransport{Max: 2}
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, backend.URL, nil)
		resp, err := tr.RoundTrip(req)
		if err != nil {
			t.Fatalf("request %d within budget failed: %v", i+1, err)
		}
		resp.Body.Close()
	}

	req, _ := http.NewRequest(http.MethodGet, backend.URL, nil)
	if _, err := tr.RoundTrip(req); err != ErrRequestBudgetExceeded {
		t.Fatalf("expected budget error, got %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
