package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	handler := CORSMiddleware("https://osul.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight answered with 204", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/oauth/osu/callback", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, called, "preflight must not reach the handler")
		assert.Equal(t, "https://osul.example", rec.Header().Get(HeaderAllowOrigin))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get(HeaderAllowMethods))
		assert.Equal(t, "Content-Type, Authorization", rec.Header().Get(HeaderAllowHeaders))
	})

	t.Run("simple request passes through", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/oauth/osu/callback", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, "https://osul.example", rec.Header().Get(HeaderAllowOrigin))
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		if errors.Is(err, io.EOF) {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{name: "direct connection", remoteAddr: "203.0.113.5:4000", expected: "203.0.113.5"},
		{name: "forwarded header ignored from untrusted peer", remoteAddr: "203.0.113.5:4000", forwarded: "1.2.3.4", expected: "203.0.113.5"},
		{name: "trusted proxy uses rightmost hop", remoteAddr: "10.0.0.1:80", forwarded: "1.2.3.4, 198.51.100.7", trusted: []string{"10.0.0.1"}, expected: "198.51.100.7"},
		{name: "trusted proxy without header", remoteAddr: "10.0.0.1:80", trusted: []string{"10.0.0.1"}, expected: "10.0.0.1"},
		{name: "unparseable remote addr", remoteAddr: "pipe", expected: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}

			require.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}
