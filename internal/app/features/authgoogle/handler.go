// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/auth"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/httpjson"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/status"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/timeouts"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const stateCookie = "mentormatrix-oauth-state"

// Handler implements Google sign-in for existing accounts. Sign-in only:
// an account with auth_method "google" must already exist for the email
// Google reports.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string

	state *securecookie.SecureCookie
}

// NewHandler builds the Google OAuth handler. sessionKey signs the
// short-lived state cookie that ties the callback to the browser that
// started the flow.
func NewHandler(users *userstore.Store, clientID, clientSecret, baseURL, sessionKey string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		state:        securecookie.New([]byte(sessionKey), nil),
	}
}

// IsConfigured reports whether Google credentials were provided.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// ServeLogin handles GET /auth/google: issues the signed state cookie
// and redirects to Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		httpjson.Error(w, h.Log, apperror.NotFound("google sign-in is not configured"))
		return
	}

	state, err := generateState()
	if err != nil {
		httpjson.Error(w, h.Log, apperror.Collaborator(err, "failed to start sign-in"))
		return
	}
	encoded, err := h.state.Encode(stateCookie, state)
	if err != nil {
		httpjson.Error(w, h.Log, apperror.Collaborator(err, "failed to start sign-in"))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google oauth denied", zap.String("error", errParam))
		httpjson.Error(w, nil, apperror.Forbidden("google sign-in was denied"))
		return
	}

	if !h.validState(r) {
		httpjson.Error(w, h.Log, apperror.Validation("invalid or expired sign-in state"))
		return
	}
	// One-shot: the state cookie dies with this callback.
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/auth/google", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		httpjson.Error(w, h.Log, apperror.Validation("missing authorization code"))
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), code)
	if err != nil {
		h.Log.Error("oauth code exchange failed", zap.Error(err))
		httpjson.Error(w, nil, apperror.Collaborator(err, "google sign-in failed"))
		return
	}

	info, err := fetchUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("google userinfo fetch failed", zap.Error(err))
		httpjson.Error(w, nil, apperror.Collaborator(err, "google sign-in failed"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, info.Email)
	if err != nil || u.AuthMethod != "google" {
		h.Log.Info("google sign-in for unknown account", zap.String("email", info.Email))
		httpjson.Error(w, nil, apperror.NotFound("no account for this google identity"))
		return
	}
	if u.Status == status.Disabled {
		httpjson.Error(w, h.Log, apperror.Forbidden("account is disabled"))
		return
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		httpjson.Error(w, h.Log, apperror.Collaborator(err, "failed to create session"))
		return
	}

	h.Log.Info("user signed in via google", zap.String("user_id", u.ID.Hex()))
	httpjson.OK(w, http.StatusOK, "signed in", map[string]string{
		"id":        u.ID.Hex(),
		"full_name": u.FullName,
		"email":     u.Email,
		"role":      u.Role,
	})
}

// validState checks the state query parameter against the signed cookie.
func (h *Handler) validState(r *http.Request) bool {
	param := r.URL.Query().Get("state")
	if param == "" {
		return false
	}
	c, err := r.Cookie(stateCookie)
	if err != nil {
		return false
	}
	var want string
	if err := h.state.Decode(stateCookie, c.Value, &want); err != nil {
		return false
	}
	return param == want
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchUserInfo(ctx context.Context, token *oauth2.Token) (*userInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}
	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &info, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
