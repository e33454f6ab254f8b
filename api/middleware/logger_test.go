package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := Output
	Output = log.New(&buf, "", 0)
	defer func() { Output = orig }()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(Logger)
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	t.Run("implicit 200", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		line := buf.String()
		assert.Contains(t, line, "GET /ok 200 5B")
		assert.NotContains(t, line, "[-]")
	})

	t.Run("explicit status", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), "GET /missing 404")
	})
}

func TestLoggerWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	orig := Output
	Output = log.New(&buf, "", 0)
	defer func() { Output = orig }()

	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Contains(t, buf.String(), "[-]")
	assert.Contains(t, buf.String(), "POST /x 418 0B")
}
