package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusTeapot, map[string]string{"k": "v"})

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestMessageShape(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/technologies/9", nil)
	Message(rec, r, http.StatusNotFound, "Technology not found")

	body := decode(t, rec)
	if body["message"] != "Technology not found" {
		t.Errorf("unexpected body: %v", body)
	}
	if len(body) != 1 {
		t.Errorf("expected only a message field, got %v", body)
	}
}

func TestAuthShape(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", nil)
	Auth(rec, r, http.StatusCreated, "Sign up successful", true)

	body := decode(t, rec)
	if body["message"] != "Sign up successful" || body["success"] != true {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAuthInternalEchoesError(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	AuthInternal(rec, r, errors.New("db down"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Internal server error" || body["success"] != false || body["error"] != "db down" {
		t.Errorf("unexpected body: %v", body)
	}
}
