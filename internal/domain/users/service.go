package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beingstupid4me/tmto-backend/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor for password hashing.
const BcryptCost = 10

// Service handles signup and login.
type Service struct {
	repo      Repository
	tokens    *auth.JWTManager
	validator *validator.Validate
	logger    zerolog.Logger
}

func NewService(repo Repository, tokens *auth.JWTManager, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		validator: validator.New(),
		logger:    logger.With().Str("component", "users").Logger(),
	}
}

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
}

// Session is the result of a successful login.
type Session struct {
	Token string
	Email string
}

// Register creates a new user. A second registration for the same email
// fails with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password string) error {
	if err := s.validator.Struct(credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("userId", user.ID).Msg("user registered")
	return nil
}

// Authenticate verifies the credentials and issues a session token. Unknown
// email and wrong password both fail with ErrInvalidCredentials so callers
// cannot probe for registered addresses.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Email, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{Token: token, Email: user.Email}, nil
}
