package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/heritagexp/heritage-explorer/pkg/forms"
	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/users"
)

// result is the auth response envelope: a success flag plus either a
// sanitized user profile or a user-facing message.
type result struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	User    *users.Profile `json:"user,omitempty"`
	Errors  forms.Errors   `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.App.Error("Failed to encode response", "error", err)
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, result{Success: false, Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
