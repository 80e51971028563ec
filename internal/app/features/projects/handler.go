// internal/app/features/projects/handler.go
package projects

import (
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/services/projectlifecycle"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/authz"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler exposes the project lifecycle over JSON. All routes sit
// behind RequireSignedIn; the handler's only jobs are decoding, caller
// extraction, and envelope writing — the rules live in the service.
type Handler struct {
	Svc *projectlifecycle.Service
	Log *zap.Logger
}

func NewHandler(svc *projectlifecycle.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// caller pulls the authenticated user out of the request context. The
// false return only happens if a route was mounted without
// RequireSignedIn, which is a wiring bug, so the 401 here is a backstop.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (projectlifecycle.Caller, bool) {
	role, name, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, h.Log, apperror.New(apperror.ErrForbidden, "authentication required"))
		return projectlifecycle.Caller{}, false
	}
	return projectlifecycle.Caller{ID: userID, Role: role, Name: name}, true
}

// projectID parses the {projectID} route parameter.
func projectID(w http.ResponseWriter, r *http.Request, log *zap.Logger) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
	if err != nil {
		httpjson.Error(w, log, apperror.Validation("invalid project id"))
		return primitive.NilObjectID, false
	}
	return id, true
}
