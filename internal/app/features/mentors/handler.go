// internal/app/features/mentors/handler.go
package mentors

import (
	"context"
	"net/http"

	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// mentorEntry is the directory row: enough for a team to pick a mentor
// and file a request, nothing more.
type mentorEntry struct {
	ID        primitive.ObjectID `json:"id"`
	FullName  string             `json:"full_name"`
	Email     string             `json:"email"`
	Expertise []string           `json:"expertise,omitempty"`
}

// HandleList handles GET /api/mentors: the active-mentor directory,
// name-sorted.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.ListMentors(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	out := make([]mentorEntry, 0, len(users))
	for _, u := range users {
		out = append(out, mentorEntry{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Expertise: u.Expertise,
		})
	}
	httpjson.OK(w, http.StatusOK, "mentors", out)
}
