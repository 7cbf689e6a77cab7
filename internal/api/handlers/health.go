package handlers

import (
	"net/http"

	"github.com/Beingstupid4me/tmto-backend/internal/api/respond"
)

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
