package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"go.uber.org/zap"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, http.StatusCreated, "project created", map[string]string{"id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "project created" || env.Data == nil {
		t.Errorf("envelope = %+v", env)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperror.Validation("title required"), http.StatusBadRequest},
		{"conflict", apperror.Conflict("already in a project"), http.StatusBadRequest},
		{"forbidden", apperror.Forbidden("not the leader"), http.StatusForbidden},
		{"not found", apperror.NotFound("no such project"), http.StatusNotFound},
		{"collaborator", apperror.Collaborator(errors.New("boom"), "upload failed"), http.StatusInternalServerError},
		{"unknown", errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, zap.NewNop(), tt.err)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			env := decodeEnvelope(t, rec)
			if env.Success {
				t.Error("success should be false")
			}
			if env.Data != nil {
				t.Errorf("data = %v, want null", env.Data)
			}
		})
	}
}

func TestErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, zap.NewNop(), errors.New("dial tcp 10.0.0.3: connection refused"))
	env := decodeEnvelope(t, rec)
	if strings.Contains(env.Message, "10.0.0.3") {
		t.Errorf("internal detail leaked: %q", env.Message)
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("valid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Mesh"}`))
		var p payload
		if !Decode(rec, req, &p, 1<<20) {
			t.Fatal("Decode returned false for valid body")
		}
		if p.Title != "Mesh" {
			t.Errorf("title = %q", p.Title)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nope":1}`))
		var p payload
		if Decode(rec, req, &p, 1<<20) {
			t.Fatal("Decode accepted unknown field")
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		big := `{"title":"` + strings.Repeat("x", 100) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		var p payload
		if Decode(rec, req, &p, 16) {
			t.Fatal("Decode accepted oversized body")
		}
	})
}
