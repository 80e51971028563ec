// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/services/projectlifecycle"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// HandleList handles GET /api/projects: the filtered, paginated list
// for mentors and admins.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(query.Get(r, "page"))
	limit, _ := strconv.Atoi(query.Get(r, "limit"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Svc.List(ctx, caller, projectlifecycle.ListInput{
		Page:   page,
		Limit:  limit,
		Status: query.Get(r, "status"),
		Mentor: query.Get(r, "mentor"),
		Search: query.Get(r, "search"),
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "projects", res)
}

// HandleVisible handles GET /api/projects/my: the role-scoped set the
// caller may see (own project, assigned projects, or everything).
func (h *Handler) HandleVisible(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	views, err := h.Svc.Visible(ctx, caller)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "projects", views)
}

// HandleGet handles GET /api/projects/{projectID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r, h.Log)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Svc.Get(ctx, caller, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "project", view)
}
