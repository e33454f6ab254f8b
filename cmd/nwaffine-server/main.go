// Command nwaffine-server provides a REST API for affine-gap global alignment.
//
// Usage:
//
//	nwaffine-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/nwaffine/api/handlers"
	"github.com/aria-lang/nwaffine/api/middleware"
	"github.com/aria-lang/nwaffine/pkg/nwaffine"
)

func newRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", handlers.Register)

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, homePage, nwaffine.Version())
	})

	return r
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>nwaffine API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>nwaffine API v%s</h1>
    <p>Global pairwise alignment with affine gap costs.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/global</code>
        <p>Align two sequences end to end. Optional: scoring, preset, traceback (affine or s-only), alphabet.</p>
        <pre>{"sequence1": "AAAGGGTTT", "sequence2": "AAATTT", "scoring": {"match": 7, "mismatch": -5, "gap_open": -3, "gap_extend": -1}}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/score</code>
        <p>Optimal score only, in linear memory.</p>
        <pre>{"sequence1": "GATTACA", "sequence2": "GCATGCT", "preset": "dna"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/matrices</code>
        <p>The filled S, Ix and Iy matrices for small inputs.</p>
        <pre>{"sequence1": "AC", "sequence2": "AG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/rescore</code>
        <p>Score an existing alignment column by column.</p>
        <pre>{"aligned1": "AAAGGGTTT", "aligned2": "AAA---TTT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/batch</code>
        <p>Align many pairs concurrently.</p>
        <pre>{"pairs": [{"label": "a", "sequence1": "ACGT", "sequence2": "AGT"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/validate</code>
        <p>Detect a sequence type or check it against an alphabet.</p>
        <pre>{"sequence": "ACGU", "alphabet": "rna"}</pre>
    </div>
</body>
</html>`

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("nwaffine API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
