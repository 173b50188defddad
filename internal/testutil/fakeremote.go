// Package testutil provides testing utilities.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Call is one request received by FakeRemote.
type Call struct {
	Method string
	// RawQuery is the query string exactly as sent.
	RawQuery string
	Params   map[string]any
	Header   http.Header
	Body     []byte
	// ContentLength is the length the client declared.
	ContentLength int64
}

// ResponderFunc picks the status and body FakeRemote replies with.
type ResponderFunc func(call Call) (status int, body string)

// FakeRemote is an httptest server standing in for the remote RPC endpoint.
// It records every call and replies {"ok":true,"data":{}} unless told otherwise.
type FakeRemote struct {
	server *httptest.Server

	mu      sync.Mutex
	calls   []Call
	respond ResponderFunc
}

func NewFakeRemote(t *testing.T) *FakeRemote {
	t.Helper()
	f := &FakeRemote{
		respond: func(Call) (int, string) {
			return http.StatusOK, `{"ok":true,"data":{}}`
		},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(f.server.Close)
	return f
}

// URL is the base URL to hand to remote.New.
func (f *FakeRemote) URL() string {
	return f.server.URL
}

// Reply makes every subsequent call answer with status and body.
func (f *FakeRemote) Reply(status int, body string) {
	f.ReplyFunc(func(Call) (int, string) { return status, body })
}

func (f *FakeRemote) ReplyFunc(fn ResponderFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.respond = fn
}

func (f *FakeRemote) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]Call, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// LastCall returns the most recent call, failing the test if there is none.
func (f *FakeRemote) LastCall(t *testing.T) Call {
	t.Helper()
	calls := f.Calls()
	if len(calls) == 0 {
		t.Fatal("fake remote received no calls")
	}
	return calls[len(calls)-1]
}

func (f *FakeRemote) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var envelope struct {
		Method string         `json:"method"`
		Params map[string]any `json:"params"`
	}
	_ = json.Unmarshal(body, &envelope)

	call := Call{
		Method:   envelope.Method,
		RawQuery: r.URL.RawQuery,
		Params:   envelope.Params,
		Header:   r.Header.Clone(),
		Body:     body,

		ContentLength: r.ContentLength,
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	respond := f.respond
	f.mu.Unlock()

	status, reply := respond(call)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}
