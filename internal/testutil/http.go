package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// TicketServer is a stand-in for the ticketing server's chart data endpoints.
// Bodies are served as-is; endpoints listed in Fail answer 500.
type TicketServer struct {
	*httptest.Server

	mu     sync.Mutex
	bodies map[string]string
	fail   map[string]bool
	hits   map[string]int
}

// NewTicketServer starts a server answering each endpoint with its body.
func NewTicketServer(t *testing.T, bodies map[string]string) *TicketServer {
	t.Helper()
	ts := &TicketServer{
		bodies: bodies,
		fail:   map[string]bool{},
		hits:   map[string]int{},
	}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.serve))
	t.Cleanup(ts.Close)
	return ts
}

// Fail makes endpoint answer with a server error.
func (ts *TicketServer) Fail(endpoint string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.fail[endpoint] = true
}

// Hits returns how many requests endpoint has received.
func (ts *TicketServer) Hits(endpoint string) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.hits[endpoint]
}

func (ts *TicketServer) serve(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	ts.hits[r.URL.Path]++
	body, ok := ts.bodies[r.URL.Path]
	failed := ts.fail[r.URL.Path]
	ts.mu.Unlock()

	if failed {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
