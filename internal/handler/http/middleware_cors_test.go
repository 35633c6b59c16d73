package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/service"
)

func newCORSHandler(origins ...string) http.Handler {
	h := NewHandler(&service.Services{}, config.Server{
		HTTPAddress: "localhost:8080",
		CORSOrigins: origins,
	}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return h.withCORS(next)
}

func execCORS(handler http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/posts", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCORS_SameOriginPassesThrough(t *testing.T) {
	handler := newCORSHandler("http://localhost:3000")

	rr := execCORS(handler, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOriginGetsHeaders(t *testing.T) {
	handler := newCORSHandler("http://localhost", "http://localhost:3000")

	rr := execCORS(handler, http.MethodGet, "http://localhost:3000")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	handler := newCORSHandler("http://localhost:3000")

	rr := execCORS(handler, http.MethodOptions, "http://localhost:3000")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, corsAllowedMethods, rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, corsAllowedHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, corsMaxAge, rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightDisallowedOrigin(t *testing.T) {
	handler := newCORSHandler("http://localhost:3000")

	rr := execCORS(handler, http.MethodOptions, "http://evil.example.com")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginNoHeaders(t *testing.T) {
	handler := newCORSHandler("http://localhost:3000")

	rr := execCORS(handler, http.MethodGet, "http://evil.example.com")

	// request proceeds, but without CORS headers the browser blocks it
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_OriginMatchIsCaseInsensitive(t *testing.T) {
	handler := newCORSHandler("http://Localhost:3000")

	rr := execCORS(handler, http.MethodGet, "http://localhost:3000")

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoConfiguredOriginsDeniesAll(t *testing.T) {
	handler := newCORSHandler()

	rr := execCORS(handler, http.MethodOptions, "http://localhost:3000")

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
