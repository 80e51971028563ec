// internal/app/features/projects/members.go
package projects

import (
	"context"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/limits"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
)

type addMembersRequest struct {
	// Each entry is a roll number or an email address.
	Members []string `json:"members"`
}

// HandleAddMembers handles POST /api/projects/members. The target is
// the project the caller leads; a leader has at most one.
func (h *Handler) HandleAddMembers(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req addMembersRequest
	if !httpjson.Decode(w, r, &req, limits.MaxJSONBodySize) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Svc.AddTeamMembers(ctx, caller, req.Members)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "team members added", view)
}
