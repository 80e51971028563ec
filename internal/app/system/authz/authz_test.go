package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requestWithUser(u *auth.SessionUser) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if u == nil {
		return r
	}
	return auth.WithUser(r, u)
}

func TestUserCtx(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("valid user", func(t *testing.T) {
		r := requestWithUser(&auth.SessionUser{ID: id.Hex(), Name: "Priya", Role: "Student"})
		role, name, userID, ok := UserCtx(r)
		if !ok {
			t.Fatal("expected ok")
		}
		if role != "student" {
			t.Errorf("role = %q, want lowercased", role)
		}
		if name != "Priya" || userID != id {
			t.Errorf("got %q %v", name, userID)
		}
	})

	t.Run("no user", func(t *testing.T) {
		role, _, userID, ok := UserCtx(requestWithUser(nil))
		if ok || role != "visitor" || userID != primitive.NilObjectID {
			t.Errorf("got %q %v ok=%v", role, userID, ok)
		}
	})

	t.Run("malformed id fails closed", func(t *testing.T) {
		r := requestWithUser(&auth.SessionUser{ID: "not-hex", Role: "admin"})
		_, _, _, ok := UserCtx(r)
		if ok {
			t.Error("expected ok=false for malformed id")
		}
	})
}

func TestRoleHelpers(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	admin := requestWithUser(&auth.SessionUser{ID: id, Role: "admin"})
	mentor := requestWithUser(&auth.SessionUser{ID: id, Role: "mentor"})
	student := requestWithUser(&auth.SessionUser{ID: id, Role: "student"})

	if !IsAdmin(admin) || IsAdmin(mentor) || IsAdmin(student) {
		t.Error("IsAdmin misclassified")
	}
	if !IsMentor(mentor) || IsMentor(admin) {
		t.Error("IsMentor misclassified")
	}
	if !IsStudent(student) || IsStudent(mentor) {
		t.Error("IsStudent misclassified")
	}
	if !HasAnyRole(mentor, "admin", "mentor") {
		t.Error("HasAnyRole should match mentor")
	}
	if HasAnyRole(requestWithUser(nil), "admin") {
		t.Error("HasAnyRole should be false with no user")
	}
}
