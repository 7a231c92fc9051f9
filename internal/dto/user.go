package dto

import (
	"time"

	dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"
)

// CredentialsRequest is the JSON body for POST /auth/register and /auth/login.
// Fields are not tagged as required: presence checks live in the service so
// the API returns its own message instead of a binding error.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public user serialization. Password material never
// appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login: the user plus a fresh
// bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MeResponse is returned by GET /me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// UserToResponse maps the domain entity to its public serialization.
func UserToResponse(u dom.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
