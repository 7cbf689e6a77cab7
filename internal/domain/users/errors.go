package users

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("email or password is wrong")
	ErrInvalidInput       = errors.New("invalid credentials")
)
