package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
)

// RecordedRequest is one request received by a StubServer.
type RecordedRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte
}

// Reply is a canned response.
type Reply struct {
	Status  int
	Body    string
	Headers map[string]string
}

// StubServer serves canned replies keyed by method and path and records
// every request. Unmatched requests get 404 with body "not found".
type StubServer struct {
	name   string
	engine *gin.Engine

	mu       sync.Mutex
	server   *httptest.Server
	replies  map[string]Reply
	requests []RecordedRequest
}

// NewStubServer creates a stopped stub server.
func NewStubServer(name string) *StubServer {
	gin.SetMode(gin.TestMode)
	s := &StubServer{
		name:    name,
		engine:  gin.New(),
		replies: make(map[string]Reply),
	}
	s.engine.NoRoute(s.serve)
	return s
}

// Name returns the server name.
func (s *StubServer) Name() string {
	return s.name
}

// Start starts listening on a local port.
func (s *StubServer) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server != nil {
		return fmt.Errorf("stub server %s already started", s.name)
	}
	s.server = httptest.NewServer(s.engine)
	return nil
}

// Stop closes the listener.
func (s *StubServer) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	s.server.Close()
	s.server = nil
	return nil
}

// Reset drops every canned reply and recorded request.
func (s *StubServer) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = make(map[string]Reply)
	s.requests = nil
	return nil
}

// URL returns the base URL of a started server, or "".
func (s *StubServer) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return ""
	}
	return s.server.URL
}

// Handle registers a JSON reply for method and path.
func (s *StubServer) Handle(method, path string, status int, body string) {
	s.Reply(method, path, Reply{
		Status:  status,
		Body:    body,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
}

// Reply registers a reply for method and path, replacing any previous one.
func (s *StubServer) Reply(method, path string, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[routeKey(method, path)] = r
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *StubServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false if none arrived.
func (s *StubServer) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *StubServer) serve(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Query:   c.Request.URL.Query(),
		Headers: c.Request.Header.Clone(),
		Body:    body,
	})
	reply, ok := s.replies[routeKey(c.Request.Method, c.Request.URL.Path)]
	s.mu.Unlock()

	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}
	for k, v := range reply.Headers {
		c.Header(k, v)
	}
	c.Status(reply.Status)
	if reply.Body != "" {
		_, _ = c.Writer.WriteString(reply.Body)
	}
}

func routeKey(method, path string) string {
	return method + " " + path
}

var _ TestComponent = (*StubServer)(nil)
