package users

import "context"

// User is one credential record. Users are created on signup and never
// mutated or deleted afterwards.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}

// Repository abstracts the credential store. FindByEmail returns
// ErrUserNotFound when no user has the given email.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user User) error
}
