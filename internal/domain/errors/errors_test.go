package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCodeAfterWithDetails(t *testing.T) {
	err := ErrInvalidOTP.WithDetails("code expired")

	assert.True(t, errors.Is(err, ErrInvalidOTP))
	assert.False(t, errors.Is(err, ErrUnauthenticated))
	assert.Equal(t, "Invalid OTP: code expired", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: ErrMissingRequiredFields, want: KindValidation},
		{name: "wrapped upload", err: errors.Wrap(ErrUploadFailed.WithDetails("logo"), "onboarding"), want: KindUpload},
		{name: "conflict is persistence", err: ErrBusinessAlreadyExists, want: KindPersistence},
		{name: "database error", err: NewDatabaseExecuteError(errors.New("boom"), "insert"), want: KindPersistence},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDatabaseExecuteError_MatchesPersistenceSentinel(t *testing.T) {
	err := errors.Wrap(NewDatabaseExecuteError(errors.New("connection reset"), "insert business"), "create")

	assert.True(t, errors.Is(err, ErrPersistenceFailed))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}
