// internal/app/system/httpjson/httpjson.go
//
// Package httpjson owns the response envelope and the error-to-status
// mapping for the JSON API. Every response body has the same shape:
//
//	{"success": bool, "message": string, "data": <payload or null>}
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"go.uber.org/zap"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OK writes a success envelope with the given status (200/201).
func OK(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error writes a failure envelope, choosing the status from the error's
// kind. Unknown errors become 500 and are logged; taxonomy errors are
// the caller's fault and logged at debug only.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusFor(err)
	if log != nil {
		if status >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(err))
		} else {
			log.Debug("request rejected", zap.Error(err))
		}
	}
	write(w, status, Envelope{Success: false, Message: apperror.MessageFor(err), Data: nil})
}

// StatusFor maps an error kind onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Deny writes a failure envelope with an explicit status, for denials
// outside the error taxonomy (rate limiting, upstream auth failures).
func Deny(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// Decode reads a JSON request body into dst, enforcing maxBytes and
// rejecting unknown fields. On failure it writes the 400 envelope and
// returns false; callers just return.
func Decode(w http.ResponseWriter, r *http.Request, dst any, maxBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		write(w, http.StatusBadRequest, Envelope{Success: false, Message: "invalid request body"})
		return false
	}
	return true
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding a fully-owned struct; the only realistic failure is a
	// closed connection, which there is nothing left to do about.
	_ = json.NewEncoder(w).Encode(env)
}
