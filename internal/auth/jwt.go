package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "skysearch"

type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"eml"`
}

// TokenCodec signs and verifies session tokens. HS256 with a shared
// env-provided secret; the token is only ever read back by this service.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: secret,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithIssuer(issuer),
			jwt.WithLeeway(5*time.Second),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		),
	}
}

func (c *TokenCodec) Issue(userID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := tk.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (c *TokenCodec) Parse(token string) (SessionClaims, error) {
	tk, err := c.parser.ParseWithClaims(token, &SessionClaims{}, func(tk *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrSessionExpired
		}
		return SessionClaims{}, ErrInvalidSession
	}

	return *(tk.Claims.(*SessionClaims)), nil
}
