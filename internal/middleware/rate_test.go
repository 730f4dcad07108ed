package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientKeyPrefersAuthenticatedUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cases", nil)
	r.RemoteAddr = "10.0.0.7:52000"
	r = r.WithContext(context.WithValue(r.Context(), ContextUserID, "u1"))

	assert.Equal(t, "uid:u1", clientKey(r))
}

func TestClientKeyFallsBackToIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cases", nil)
	r.RemoteAddr = "10.0.0.7:52000"
	assert.Equal(t, "ip:10.0.0.7:52000", clientKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "ip:203.0.113.9", clientKey(r))
}

// Identity populates the context the limiter keys on; a request that
// passed Identity must resolve to a per-user key, not a per-IP one.
func TestClientKeyAfterIdentity(t *testing.T) {
	var key string
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key = clientKey(req)
	}))

	r := httptest.NewRequest("GET", "/api/cases", nil)
	r.RemoteAddr = "10.0.0.7:52000"
	r.Header.Set("X-User-Id", "u42")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "uid:u42", key)
}
