package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("Email (required)")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Email (required)", err.Details())

	// The sentinel itself is untouched.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_IsDistinguishesCodes(t *testing.T) {
	assert.False(t, stderrors.Is(ErrUserNotFound, ErrOrderNotFound))
	assert.False(t, stderrors.Is(ErrValidationFailed, ErrEmailAlreadyExists))
}

func TestBaseError_WrapMessageStaysMatchable(t *testing.T) {
	err := ErrEmailAlreadyExists.WrapMessage("email already exists")

	assert.True(t, stderrors.Is(err, ErrEmailAlreadyExists))

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create user")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create user", err.Details())
}
