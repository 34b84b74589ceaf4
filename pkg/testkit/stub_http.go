// Package testkit provides test doubles for the outgoing HTTP layer.
//
// StubTransport implements http.RoundTripper: it matches outgoing requests
// against registered stubs and returns synthetic responses instead of making
// network calls. Install it on the shared client before the test:
//
//	st := testkit.NewStubTransport()
//	st.Stub("GET", "/api/menu-items/", 200, menu)
//	httpx.DefaultClient.Transport = st
//	defer httpx.ResetTransport()
//	// ... run test ...
//	st.AssertAllCalled(t)
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Call records one intercepted request.
type Call struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type stub struct {
	method string
	path   string
	status int
	body   []byte
	hits   int
}

// StubTransport is a stubbing http.RoundTripper that records every call.
type StubTransport struct {
	mu    sync.Mutex
	stubs []*stub
	calls []Call
}

// NewStubTransport returns an empty transport. Unmatched requests get a 404.
func NewStubTransport() *StubTransport {
	return &StubTransport{}
}

// Stub registers a synthetic response for method + path (path is matched
// without the query string). body is marshalled to JSON; pass nil for an
// empty body. Later stubs win over earlier ones for the same route.
func (t *StubTransport) Stub(method, path string, status int, body any) *StubTransport {
	raw := []byte("{}")
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			panic(fmt.Sprintf("testkit: marshal stub body for %s %s: %v", method, path, err))
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.stubs = append(t.stubs, &stub{
		method: strings.ToUpper(method),
		path:   path,
		status: status,
		body:   raw,
	})
	return t
}

// RoundTrip intercepts the outgoing request and answers from the stubs.
func (t *StubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, Call{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Header: req.Header.Clone(),
		Body:   body,
	})

	for i := len(t.stubs) - 1; i >= 0; i-- {
		s := t.stubs[i]
		if s.method == req.Method && s.path == req.URL.Path {
			s.hits++
			return &http.Response{
				StatusCode: s.status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(bytes.NewReader(s.body)),
				Request:    req,
			}, nil
		}
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"detail":"no stub configured"}`)),
		Request:    req,
	}, nil
}

// Calls returns every intercepted request in order.
func (t *StubTransport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// CallCount returns how many requests hit method + path.
func (t *StubTransport) CallCount(method, path string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, c := range t.calls {
		if c.Method == strings.ToUpper(method) && c.Path == path {
			n++
		}
	}
	return n
}
