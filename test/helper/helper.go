package helper

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CapturedRequest is what a StubEndpoint saw on the wire.
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// StubEndpoint is a bare /send_message endpoint that answers every request
// with a fixed status and records what it received.
type StubEndpoint struct {
	server   *httptest.Server
	mu       sync.Mutex
	status   int
	body     string
	requests []CapturedRequest
}

func NewStubEndpoint(status int, body string) *StubEndpoint {
	se := &StubEndpoint{status: status, body: body}
	r := chi.NewRouter()
	r.Post("/send_message", func(w http.ResponseWriter, r *http.Request) {
		bs, _ := io.ReadAll(r.Body)
		se.mu.Lock()
		se.requests = append(se.requests, CapturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   bs,
		})
		status, body := se.status, se.body
		se.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
	se.server = httptest.NewServer(r)
	return se
}

func (se *StubEndpoint) SendURL() string {
	return se.server.URL + "/send_message"
}

func (se *StubEndpoint) Requests() []CapturedRequest {
	se.mu.Lock()
	defer se.mu.Unlock()
	return append([]CapturedRequest(nil), se.requests...)
}

func (se *StubEndpoint) Close() {
	se.server.Close()
}

// RefusedAddress returns a loopback host:port nothing is listening on.
func RefusedAddress(t testing.TB) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve a local port: %v", err)
	}
	addr := lis.Addr().String()
	if err = lis.Close(); err != nil {
		t.Fatalf("failed to release local port: %v", err)
	}
	return addr
}

type TestLogger struct {
	buf *bytes.Buffer
}

func NewTestLogger() *TestLogger {
	return &TestLogger{
		buf: new(bytes.Buffer),
	}
}

func (tl *TestLogger) ZeroLogger() *zerolog.Logger {
	lg := log.Logger.Output(tl.buf)
	return &lg
}

func (tl *TestLogger) GetLogLines() (lines []string) {
	scanner := bufio.NewScanner(tl.buf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return
}

func (tl *TestLogger) Flush() {
	_, _ = io.ReadAll(tl.buf)
}

type Helper struct {
	t *testing.T
}

func NewHelper(t *testing.T) *Helper {
	return &Helper{t: t}
}

func (h *Helper) MustDecodeJSON(bs []byte, v any) {
	if v == nil {
		h.t.Fatalf("value is nil")
	}
	if err := json.Unmarshal(bs, v); err != nil {
		h.t.Fatalf("failed to decode json: %v", err)
	}
}

func (h *Helper) MustEncodeJSON(v any) []byte {
	bs, err := json.Marshal(v)
	if err != nil {
		h.t.Fatalf("failed to encode json: %v", err)
	}
	return bs
}
