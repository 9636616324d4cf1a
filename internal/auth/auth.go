// Package auth provides the session lifecycle as an explicit,
// injectable collaborator: no ambient globals, sign-in/sign-up/sign-out
// return either a session or a typed failure reason.
package auth

import (
	"context"
	"time"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the explicit session-context object handed to whichever
// component needs identity.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthError string

func (e AuthError) Error() string {
	return string(e)
}

const (
	ErrInvalidCredentials AuthError = "invalid email or password"
	ErrEmailTaken         AuthError = "email is already registered"
	ErrWeakPassword       AuthError = "password must be at least 8 characters"
	ErrSessionExpired     AuthError = "session has expired"
	ErrInvalidSession     AuthError = "session token is invalid"
)

type IdentityProvider interface {
	SignIn(ctx context.Context, creds Credentials) (*Session, error)
	SignUp(ctx context.Context, creds Credentials) (*Session, error)
	SignOut(ctx context.Context, token string) error
}
