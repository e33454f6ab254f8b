// Package middleware provides HTTP middleware for the nwaffine API.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Output is where Logger writes. It defaults to the standard logger.
var Output = log.Default()

// Logger logs one line per request with its request ID, status, size and
// duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqID := chimiddleware.GetReqID(r.Context())
			if reqID == "" {
				reqID = "-"
			}
			Output.Printf("[%s] %s %s %s %d %dB %s",
				reqID, r.RemoteAddr, r.Method, r.URL.Path,
				status, ww.BytesWritten(), time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}
