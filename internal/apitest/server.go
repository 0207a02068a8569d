// Package apitest provides an in-process stand-in for the OpenAI HTTP API,
// used by tests of the client and the CLI.
package apitest

import (
	"bytes"
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

//go:embed testdata/*.json
var fixtures embed.FS

// Fixture returns the content of testdata/<name>.json
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fixtures.ReadFile("testdata/" + name + ".json")
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return data
}

// Request is a request received by the server
type Request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          []byte
}

// Server serves canned responses registered with Handle
type Server struct {
	*httptest.Server

	t      testing.TB
	router chi.Router

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a server that is closed when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{t: t, router: chi.NewRouter()}
	s.router.Use(s.record)

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)

	return s
}

// Handle responds to method+path with status and a raw body
func (s *Server) Handle(method, path string, status int, body []byte) {
	s.router.MethodFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	})
}

// HandleFixture responds to method+path with status and a testdata fixture
func (s *Server) HandleFixture(t testing.TB, method, path string, status int, fixture string) {
	t.Helper()
	s.Handle(method, path, status, Fixture(t, fixture))
}

// HandleFunc registers a custom handler
func (s *Server) HandleFunc(method, path string, fn http.HandlerFunc) {
	s.router.MethodFunc(method, path, fn)
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, ok is false if there was none
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.t.Errorf("apitest: read %s %s body: %v", r.Method, r.URL.Path, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
