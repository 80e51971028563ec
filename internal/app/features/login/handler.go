// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/auth"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/limits"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/ratelimit"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/status"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Users  *userstore.Store
	Limits *ratelimit.LoginLimiter
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Limits: limiter, Log: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HandleLogin handles POST /auth/login. Every failure reads the same to
// the caller so login cannot be used to probe which emails exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !httpjson.Decode(w, r, &req, limits.MaxJSONBodySize) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Error(w, h.Log, apperror.Validation("email and password are required"))
		return
	}
	if h.Limits != nil {
		if ok, reason := h.Limits.Check(r, req.Email); !ok {
			h.Log.Warn("login rate limited", zap.String("ip", ratelimit.ClientIP(r)))
			httpjson.Deny(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		h.rejectCredentials(w, "user not found", req.Email)
		return
	}
	if u.Status == status.Disabled {
		httpjson.Error(w, h.Log, apperror.Forbidden("account is disabled"))
		return
	}
	if u.PasswordHash == "" {
		// Google-auth accounts have no password to check.
		h.rejectCredentials(w, "no password set", req.Email)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			h.Log.Error("bcrypt compare failed", zap.Error(err))
		}
		h.rejectCredentials(w, "wrong password", req.Email)
		return
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.Log.Error("sign in failed", zap.Error(err), zap.String("email", u.Email))
		httpjson.Error(w, h.Log, apperror.Collaborator(err, "failed to create session"))
		return
	}

	if h.Limits != nil {
		h.Limits.ResetEmail(req.Email)
	}

	h.Log.Info("user signed in", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	httpjson.OK(w, http.StatusOK, "signed in", loginResponse{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	})
}

func (h *Handler) rejectCredentials(w http.ResponseWriter, reason, email string) {
	h.Log.Debug("login rejected", zap.String("reason", reason), zap.String("email", email))
	httpjson.Error(w, nil, apperror.Validation("invalid email or password"))
}
