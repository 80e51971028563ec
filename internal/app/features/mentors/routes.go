// internal/app/features/mentors/routes.go
package mentors

import "github.com/go-chi/chi/v5"

// Routes returns the mentor directory subrouter; mount under
// /api/mentors behind RequireSignedIn.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	return r
}
