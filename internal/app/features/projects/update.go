// internal/app/features/projects/update.go
package projects

import (
	"context"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/services/projectlifecycle"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/limits"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
)

// HandleUpdate handles PATCH /api/projects/{projectID}.
//
// The request is multipart/form-data so a document can ride along with
// the text fields. Text fields: title, abstract, problem_statement,
// proposed_methodology, tech_stack (repeatable). Sending any of the
// three description fields replaces the whole description block. The
// optional file field is "document".
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r, h.Log)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(limits.MaxDocumentUploadSize); err != nil {
		httpjson.Error(w, h.Log, apperror.Validation("invalid multipart form"))
		return
	}

	in := projectlifecycle.UpdateInput{}

	if v, found := formValue(r, "title"); found {
		in.Title = &v
	}

	abstract, hasAbstract := formValue(r, "abstract")
	problem, hasProblem := formValue(r, "problem_statement")
	method, hasMethod := formValue(r, "proposed_methodology")
	techStack, hasTech := r.MultipartForm.Value["tech_stack"]
	if hasAbstract || hasProblem || hasMethod || hasTech {
		in.Description = &models.ProjectDescription{
			Abstract:            abstract,
			ProblemStatement:    problem,
			ProposedMethodology: method,
			TechStack:           techStack,
		}
	}

	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		in.Document = &projectlifecycle.DocumentUpload{
			Filename: header.Filename,
			Content:  file,
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	view, err := h.Svc.Update(ctx, caller, id, in)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, http.StatusOK, "project updated", view)
}

// formValue reports whether the field was present at all, so absent and
// empty-but-present are distinguishable.
func formValue(r *http.Request, key string) (string, bool) {
	vals, found := r.MultipartForm.Value[key]
	if !found || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
