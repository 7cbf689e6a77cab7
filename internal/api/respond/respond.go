// Package respond writes the API's JSON bodies and logs failures through
// the request-scoped logger.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Message writes the CRUD error shape: {"message": ...}.
func Message(w http.ResponseWriter, r *http.Request, status int, message string) {
	logStatus(r, status, message, nil)
	JSON(w, status, map[string]any{"message": message})
}

// Auth writes the auth endpoints' shape: {"message": ..., "success": ...}.
func Auth(w http.ResponseWriter, r *http.Request, status int, message string, success bool) {
	logStatus(r, status, message, nil)
	JSON(w, status, map[string]any{"message": message, "success": success})
}

// AuthInternal writes the auth endpoints' 500 shape. The underlying error
// text is echoed in the body, matching the historical contract.
func AuthInternal(w http.ResponseWriter, r *http.Request, err error) {
	logStatus(r, http.StatusInternalServerError, "internal server error", err)
	JSON(w, http.StatusInternalServerError, map[string]any{
		"message": "Internal server error",
		"success": false,
		"error":   err.Error(),
	})
}

func logStatus(r *http.Request, status int, message string, err error) {
	if r == nil || status < 400 {
		return
	}
	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= 500 {
		event = logger.Error()
	}
	event.
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg(message)
}
