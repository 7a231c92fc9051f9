package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsPGUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	require.True(t, IsPGUniqueViolation(unique))
	require.True(t, IsPGUniqueViolation(fmt.Errorf("insert: %w", unique)))

	require.False(t, IsPGUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsPGUniqueViolation(errors.New("plain")))
	require.False(t, IsPGUniqueViolation(nil))
}
