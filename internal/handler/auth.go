package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"skysearch/internal/auth"
	"skysearch/internal/models"
)

// SessionContextKey is where SessionMiddleware stores the verified
// session claims on the echo context.
const SessionContextKey = "session"

type AuthHandler struct {
	identity auth.IdentityProvider
}

func NewAuthHandler(identity auth.IdentityProvider) *AuthHandler {
	return &AuthHandler{identity: identity}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	return h.handleCredentials(c, h.identity.SignUp)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	return h.handleCredentials(c, h.identity.SignIn)
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Authorization header with bearer token is required",
			Code:    http.StatusUnauthorized,
		})
	}

	if err := h.identity.SignOut(c.Request().Context(), token); err != nil {
		return authErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) handleCredentials(c echo.Context, op func(ctx context.Context, creds auth.Credentials) (*auth.Session, error)) error {
	var creds auth.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	session, err := op(c.Request().Context(), creds)
	if err != nil {
		return authErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

func authErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	label := "auth_error"

	var authErr auth.AuthError
	if errors.As(err, &authErr) {
		switch authErr {
		case auth.ErrInvalidCredentials:
			code = http.StatusUnauthorized
			label = "invalid_credentials"
		case auth.ErrEmailTaken:
			code = http.StatusConflict
			label = "email_taken"
		case auth.ErrWeakPassword:
			code = http.StatusBadRequest
			label = "weak_password"
		case auth.ErrSessionExpired, auth.ErrInvalidSession:
			code = http.StatusUnauthorized
			label = "invalid_session"
		}
	}

	return c.JSON(code, models.ErrorResponse{
		Error:   label,
		Message: err.Error(),
		Code:    code,
	})
}

// SessionMiddleware rejects requests without a valid bearer session
// token and exposes the verified claims to downstream handlers.
func SessionMiddleware(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header with bearer token is required",
					Code:    http.StatusUnauthorized,
				})
			}

			claims, err := codec.Parse(token)
			if err != nil {
				return authErrorResponse(c, err)
			}

			c.Set(SessionContextKey, claims)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
