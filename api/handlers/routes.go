package handlers

import "github.com/go-chi/chi/v5"

// Register mounts the API endpoints on r.
func Register(r chi.Router) {
	r.Route("/sequence", func(r chi.Router) {
		r.Post("/validate", ValidateHandler)
	})

	r.Route("/alignment", func(r chi.Router) {
		r.Post("/global", GlobalAlignHandler)
		r.Post("/score", AlignmentScoreHandler)
		r.Post("/matrices", MatricesHandler)
		r.Post("/rescore", RescoreHandler)
		r.Post("/batch", BatchAlignHandler)
	})
}
