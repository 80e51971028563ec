// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// Routes returns the project API subrouter; mount under /api/projects
// behind RequireSignedIn.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/my", h.HandleVisible)
	r.Get("/requests", h.HandleRequestInbox)

	r.Post("/members", h.HandleAddMembers)
	r.Post("/mentor-request", h.HandleRequestMentor)

	r.Get("/{projectID}", h.HandleGet)
	r.Patch("/{projectID}", h.HandleUpdate)
	r.Delete("/{projectID}", h.HandleDelete)
	r.Post("/{projectID}/mentor-decision", h.HandleDecision)

	return r
}
