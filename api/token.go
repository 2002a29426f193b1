package api

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pranishr/portfolio-api/errs"
)

// tokenAuthority issues and verifies the admin bearer tokens. Tokens
// are HS256-signed against a single process-wide secret; there is no
// revocation, a leaked token stays valid until it expires.
type tokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

func newTokenAuthority(secret []byte, ttl time.Duration) tokenAuthority {
	return tokenAuthority{secret: secret, ttl: ttl}
}

// Issue signs a token for the admin principal
func (a tokenAuthority) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify checks signature and expiry and returns the token subject
func (a tokenAuthority) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError()
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.NewInvalidTokenError()
	}
	return claims.Subject, nil
}

// adminCredentials is the single fixed admin principal. The password is
// checked against a bcrypt hash when one is configured, otherwise
// byte-equal against the configured plaintext.
type adminCredentials struct {
	username     string
	passwordHash string
	password     string
}

// Check reports whether the supplied login matches the admin principal
func (c adminCredentials) Check(username, password string) bool {
	if c.username == "" || username != c.username {
		return false
	}

	if c.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	}

	if c.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) == 1
}
