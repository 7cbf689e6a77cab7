package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Beingstupid4me/tmto-backend/internal/api/respond"
	"github.com/Beingstupid4me/tmto-backend/internal/domain/users"
)

// AuthHandler exposes the signup and login endpoints.
type AuthHandler struct {
	Users *users.Service
}

func NewAuthHandler(service *users.Service) *AuthHandler {
	return &AuthHandler{Users: service}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Auth(w, r, http.StatusBadRequest, "Invalid JSON body", false)
		return
	}

	err := h.Users.Register(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respond.Auth(w, r, http.StatusCreated, "Sign up successful", true)
	case errors.Is(err, users.ErrEmailTaken):
		respond.Auth(w, r, http.StatusBadRequest, "User already exists", false)
	case errors.Is(err, users.ErrInvalidInput):
		respond.Auth(w, r, http.StatusBadRequest, "Email and password of at least 4 characters are required", false)
	default:
		respond.AuthInternal(w, r, err)
	}
}

// Login handles POST /auth/login. On success the response carries the
// session token and the email it was issued for.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Auth(w, r, http.StatusBadRequest, "Invalid JSON body", false)
		return
	}

	session, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, map[string]any{
			"message":  "Login successful",
			"success":  true,
			"jwtToken": session.Token,
			"email":    session.Email,
		})
	case errors.Is(err, users.ErrInvalidCredentials):
		respond.Auth(w, r, http.StatusForbidden, "Auth Failed: Email or password is wrong", false)
	default:
		respond.AuthInternal(w, r, err)
	}
}
