// internal/app/features/learners/routes.go
package learners

import (
	"github.com/dalemusser/progresshub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(rr chi.Router) {
		rr.Use(auth.RequireSignedIn)
		// Admin / analyst / coach gating is enforced inside the handlers.
		rr.Get("/learners", h.ServeLearnersReport)
		rr.Get("/learners.csv", h.ServeLearnersCSV)
	})

	return r
}
