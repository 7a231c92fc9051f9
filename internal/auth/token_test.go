package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	iss := NewIssuer("test-secret", 4*time.Hour)

	token, err := iss.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := iss.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer("test-secret", 4*time.Hour)

	issued := time.Now()
	iss.now = func() time.Time { return issued }
	token, err := iss.Issue(7)
	require.NoError(t, err)

	iss.now = func() time.Time { return issued.Add(4*time.Hour + time.Minute) }
	_, err = iss.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := NewIssuer("secret-a", time.Hour).Issue(7)
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := iss.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		require.Equal(t, tt.ok, ok, "header %q", tt.header)
		require.Equal(t, tt.want, got, "header %q", tt.header)
	}
}
