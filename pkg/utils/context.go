package utils

import (
	"context"
)

type contextKey string

const (
	SessionUserKey contextKey = "session_user"
	TokenKey       contextKey = "token"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// SessionUser is the identity attached to an authenticated request.
// It never carries the password hash.
type SessionUser struct {
	Phone       string `json:"phone"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	Gender      string `json:"gender,omitempty"`
	Role        string `json:"role"`
}

func (u SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func SetSessionUser(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserKey, user)
}

func GetSessionUser(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(SessionUserKey).(SessionUser)
	return user, ok
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
