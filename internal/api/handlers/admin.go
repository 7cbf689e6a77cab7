package handlers

import (
	"net/http"

	"github.com/Beingstupid4me/tmto-backend/internal/api/respond"
)

// Dashboard is the token-guarded probe endpoint. Reaching it at all means
// the auth middleware accepted the token.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Access granted to technologies route.",
	})
}
