// internal/app/features/projects/mentor.go
package projects

import (
	"context"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/limits"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
)

type requestMentorRequest struct {
	MentorName  string `json:"mentor_name"`
	MentorEmail string `json:"mentor_email"`
}

// HandleRequestMentor handles POST /api/projects/mentor-request for the
// project the caller leads.
func (h *Handler) HandleRequestMentor(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req requestMentorRequest
	if !httpjson.Decode(w, r, &req, limits.MaxJSONBodySize) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Svc.RequestMentor(ctx, caller, req.MentorName, req.MentorEmail)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "mentor requested", view)
}

type decisionRequest struct {
	Decision string `json:"decision"` // "accept" or "reject"
}

// HandleDecision handles POST /api/projects/{projectID}/mentor-decision.
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r, h.Log)
	if !ok {
		return
	}

	var req decisionRequest
	if !httpjson.Decode(w, r, &req, limits.MaxJSONBodySize) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Svc.DecideMentorRequest(ctx, caller, id, req.Decision)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "decision recorded", view)
}

// HandleRequestInbox handles GET /api/projects/requests: the projects
// with a pending request for the calling mentor.
func (h *Handler) HandleRequestInbox(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	views, err := h.Svc.RequestedProjects(ctx, caller)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "requested projects", views)
}
