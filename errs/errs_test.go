package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestApiErrUnwrapsSentinel(t *testing.T) {
	err := NewNotFound("project")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "project not found", err.Error())
}

func TestApiErrDetailsInMessage(t *testing.T) {
	err := NewMissingRequiredFieldError("title")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "title", err.Field)
	assert.Contains(t, err.Error(), "title")
	assert.True(t, IsMissingRequiredFieldError(err))
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := errors.New("socket closed")
	err := NewDatabaseError("find", "projects", inner)

	assert.Contains(t, err.GetFullError(), "socket closed")
}

func TestNewDatabaseErrorClassification(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	err := NewDatabaseError("create", "skill", dup)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	err = NewDatabaseError("find", "project", mongo.ErrNoDocuments)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = NewDatabaseError("find", "project", errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.True(t, errors.Is(err, ErrDatabaseQuery))
}

func TestIsDuplicateKeyAcceptsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("skill %w", ErrAlreadyExists)
	assert.True(t, IsDuplicateKey(wrapped))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
}

func TestAuthErrorCheckers(t *testing.T) {
	require.True(t, IsExpiredTokenError(NewExpiredTokenError()))
	require.True(t, IsInvalidTokenError(NewInvalidTokenError()))
	require.True(t, IsMissingTokenError(NewMissingTokenError()))
	require.True(t, IsInvalidCredentialsError(NewInvalidCredentialsError()))

	assert.Equal(t, http.StatusUnauthorized, NewInvalidCredentialsError().StatusCode)
}
