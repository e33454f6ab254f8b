package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/nwaffine/api/middleware"
)

func TestRouter(t *testing.T) {
	orig := middleware.Output
	middleware.Output = log.New(io.Discard, "", 0)
	defer func() { middleware.Output = orig }()

	srv := httptest.NewServer(newRouter())
	defer srv.Close()

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", string(body))
	})

	t.Run("home", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "/api/alignment/global")
	})

	t.Run("alignment", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/alignment/global", "application/json",
			strings.NewReader(`{"sequence1":"ACGT","sequence2":"ACGT"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `"score":28`)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/alignment/global")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
