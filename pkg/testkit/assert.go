package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertAllCalled fails the test if any registered stub was never hit.
func (t *StubTransport) AssertAllCalled(tb testing.TB) {
	tb.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.stubs {
		assert.Greater(tb, s.hits, 0, "stub %s %s was never called", s.method, s.path)
	}
}

// AssertNoCalls fails the test if any request went out at all.
func (t *StubTransport) AssertNoCalls(tb testing.TB) {
	tb.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()
	assert.Empty(tb, t.calls, "expected no outgoing HTTP calls")
}

// DecodeBody unmarshals a recorded call body into dest.
func DecodeBody(tb testing.TB, call Call, dest any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal(call.Body, dest),
		"call body is not valid JSON: %s", string(call.Body))
}
