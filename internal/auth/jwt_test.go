package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTGenerateValidate(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	jwtToken, err := manager.Generate("alice@example.com", "user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := manager.Validate(jwtToken)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.UserID != "user-1" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestJWTGenerateInvalid(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	if _, err := manager.Generate("", "user-1"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateMissing(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	if _, err := manager.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestJWTValidateWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := manager.Generate("alice@example.com", "user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateExpired(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute)
	token, err := manager.Generate("alice@example.com", "user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestTokenFromHeader(t *testing.T) {
	if _, err := TokenFromHeader(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	if token, err := TokenFromHeader("Bearer token"); err != nil || token != "token" {
		t.Fatalf("expected token, got %s err %v", token, err)
	}
	if token, err := TokenFromHeader("token"); err != nil || token != "token" {
		t.Fatalf("expected bare token, got %s err %v", token, err)
	}
	if _, err := TokenFromHeader("Basic a b"); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}
