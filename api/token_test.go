package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pranishr/portfolio-api/errs"
)

func TestTokenIssueAndVerify(t *testing.T) {
	authority := newTokenAuthority([]byte(testSecret), time.Hour)

	token, err := authority.Issue("admin")
	require.NoError(t, err)

	subject, err := authority.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	authority := newTokenAuthority([]byte(testSecret), -time.Minute)

	token, err := authority.Issue("admin")
	require.NoError(t, err)

	_, err = authority.Verify(token)
	require.Error(t, err)
	assert.True(t, errs.IsExpiredTokenError(err))
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	authority := newTokenAuthority([]byte(testSecret), time.Hour)
	other := newTokenAuthority([]byte("other-secret"), time.Hour)

	token, err := other.Issue("admin")
	require.NoError(t, err)

	_, err = authority.Verify(token)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestAdminCredentialsWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := adminCredentials{username: "admin", passwordHash: string(hash)}
	assert.True(t, creds.Check("admin", "s3cret"))
	assert.False(t, creds.Check("admin", "wrong"))
	assert.False(t, creds.Check("other", "s3cret"))
}

func TestAdminCredentialsPlaintextFallback(t *testing.T) {
	creds := adminCredentials{username: "admin", password: "s3cret"}
	assert.True(t, creds.Check("admin", "s3cret"))
	assert.False(t, creds.Check("admin", "wrong"))

	// no configured secret at all never matches
	empty := adminCredentials{username: "admin"}
	assert.False(t, empty.Check("admin", ""))
}

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"` + testUsername + `","password":"` + testPassword + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"` + testUsername + `","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	env := newTestEnv(t)

	for _, header := range []string{"", "Bearer ", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := env.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
