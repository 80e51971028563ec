// internal/app/features/projects/create.go
package projects

import (
	"context"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/services/projectlifecycle"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/limits"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
)

type createRequest struct {
	Title       string `json:"title"`
	Description struct {
		Abstract            string   `json:"abstract"`
		ProblemStatement    string   `json:"problem_statement"`
		ProposedMethodology string   `json:"proposed_methodology"`
		TechStack           []string `json:"tech_stack"`
	} `json:"description"`
}

// HandleCreate handles POST /api/projects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req createRequest
	if !httpjson.Decode(w, r, &req, limits.MaxJSONBodySize) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Svc.Create(ctx, caller, projectlifecycle.CreateInput{
		Title: req.Title,
		Description: models.ProjectDescription{
			Abstract:            req.Description.Abstract,
			ProblemStatement:    req.Description.ProblemStatement,
			ProposedMethodology: req.Description.ProposedMethodology,
			TechStack:           req.Description.TechStack,
		},
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusCreated, "project created", view)
}
