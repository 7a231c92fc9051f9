package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/repo"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserService owns user identity: registration, credential checks, lookups.
// Passwords exist here only long enough to hash or compare.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register validates and normalizes the credentials, then creates the user
// with a bcrypt hash. Password rules are checked in order (length, letter,
// digit) and the first violation wins.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return dom.User{}, ErrMissingCredentials
	}
	if err := validateEmail(email); err != nil {
		return dom.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return dom.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Authenticate checks email and password; returns the user if valid. An
// unknown email and a wrong password produce the same error, so the response
// never reveals whether the account exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (dom.User, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return dom.User{}, ErrMissingCredentials
	}
	if err := validateEmail(email); err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID resolves a user id to a live record.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
