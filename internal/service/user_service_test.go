package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/repo"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/service"

	"github.com/stretchr/testify/require"
)

func newUserService() *service.UserService {
	return service.NewUserService(repo.NewMemoryUserRepo())
}

func TestRegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Register(ctx, "a@b.com", "abc12345")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", created.Email)
	require.NotEmpty(t, created.PasswordHash)
	require.NotEqual(t, "abc12345", created.PasswordHash)

	got, err := svc.Authenticate(ctx, "a@b.com", "abc12345")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Register(ctx, "  A@B.com ", "abc12345")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", created.Email)

	// Uniqueness is on the normalized form, whatever the casing or whitespace.
	_, err = svc.Register(ctx, " a@b.COM", "abc12345")
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	for _, tt := range []struct{ email, password string }{
		{"", ""},
		{"a@b.com", ""},
		{"", "abc12345"},
		{"   ", "   "},
	} {
		_, err := svc.Register(ctx, tt.email, tt.password)
		require.ErrorIs(t, err, service.ErrMissingCredentials, "email=%q password=%q", tt.email, tt.password)
	}
}

func TestRegisterEmailFormat(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	for _, email := range []string{"bad", "a@b", "a@b.c", "@b.com", "a b@c.com", "a@b.1x"} {
		_, err := svc.Register(ctx, email, "abc12345")
		require.ErrorIs(t, err, service.ErrInvalidEmail, "email=%q", email)
	}

	for _, email := range []string{"a@b.com", "first.last+tag@sub.domain.org", "x_%9@a-b.io"} {
		_, err := svc.Register(ctx, email, "abc12345")
		require.NoError(t, err, "email=%q", email)
	}
}

func TestRegisterPasswordRuleOrder(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"short and letter-only reports length first", "abc", service.ErrPasswordTooShort},
		{"short digits-only reports length first", "1234567", service.ErrPasswordTooShort},
		{"seven multibyte characters report length", "ñ1abcdé", service.ErrPasswordTooShort},
		{"long digits-only reports missing letter", "12345678", service.ErrPasswordNoLetter},
		{"long letters-only reports missing digit", "abcdefgh", service.ErrPasswordNoDigit},
		{"over 72 bytes reports max length", "a1" + strings.Repeat("x", 78), service.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, "a@b.com", tt.password)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterPasswordLengthBoundaries(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	t.Run("72 bytes registers and authenticates", func(t *testing.T) {
		password := "a1" + strings.Repeat("x", 70)
		created, err := svc.Register(ctx, "long@b.com", password)
		require.NoError(t, err)

		got, err := svc.Authenticate(ctx, "long@b.com", password)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
	})

	t.Run("eight multibyte characters accepted", func(t *testing.T) {
		_, err := svc.Register(ctx, "multi@b.com", "ñ1abcdéé")
		require.NoError(t, err)
	})
}

func TestAuthenticateDoesNotRevealAccountExistence(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Register(ctx, "x@y.com", "abc12345")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "x@y.com", "wrongpass1")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@y.com", "abc12345")

	require.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Register(ctx, "a@b.com", "abc12345")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)

	_, err = svc.GetByID(ctx, 999999)
	require.ErrorIs(t, err, service.ErrNotFound)
}
