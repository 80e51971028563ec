// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/auth"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// HandleLogout handles POST /auth/logout. Signing out an
// unauthenticated session is fine; the result is the same.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("sign out failed", zap.Error(err))
	}
	httpjson.OK(w, http.StatusOK, "signed out", nil)
}
