// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"net/http"

	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/authz"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// HandleGet handles GET /api/profile: the signed-in user's own record.
// The user model's json tags already hide password_hash.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, h.Log, apperror.Forbidden("authentication required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		httpjson.Error(w, h.Log, apperror.NotFound("user not found"))
		return
	}
	httpjson.OK(w, http.StatusOK, "profile", u)
}
