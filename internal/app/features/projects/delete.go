// internal/app/features/projects/delete.go
package projects

import (
	"context"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /api/projects/{projectID}. Documents are
// removed from storage before the record goes; a storage failure aborts
// the whole delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r, h.Log)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Svc.Delete(ctx, caller, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "project deleted", nil)
}
