package errors

import (
	"net/http"
	"testing"

	"library/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "predefined", err: ErrBookNotFound, want: KindNotFound},
		{name: "wrapped", err: errors.Wrap(ErrBookUnavailable, "grant loan"), want: KindUnavailable},
		{name: "double wrapped", err: errors.Wrap(ErrAlreadyHoldsBook.WrapMessage("check holder"), "grant loan"), want: KindConflict},
		{name: "with details", err: ErrValidationFailed.WithDetails("title is required"), want: KindValidation},
		{name: "database", err: NewDatabaseExecuteError(errors.New("boom"), "insert"), want: KindInternal},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrInvalidLoanDays.WithDetails("must be between 1 and 30"), "grant loan")

	assert.True(t, errors.Is(err, ErrInvalidLoanDays))
	assert.False(t, errors.Is(err, ErrValidationFailed))
	assert.Contains(t, err.Error(), "must be between 1 and 30")
}

func TestBaseError_DistinctCodes(t *testing.T) {
	all := []*BaseError{
		ErrBookNotFound, ErrLoanNotFound, ErrUserNotFound, ErrBookUnavailable, ErrActiveLoanExists,
		ErrAlreadyHoldsBook, ErrBookHasActiveLoans, ErrLoanAlreadyReturned, ErrUsernameTaken,
		ErrNationalIDTaken, ErrValidationFailed, ErrInvalidLoanDays, ErrInvalidQRCode,
		ErrPermissionDenied, ErrTransactionFailed, ErrInternalError,
	}

	seen := map[string]bool{}
	for _, e := range all {
		assert.False(t, seen[e.ErrorCode()], e.ErrorCode())
		seen[e.ErrorCode()] = true
	}
}

func TestBaseError_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrBookNotFound.HTTPCode())
	assert.Equal(t, http.StatusConflict, ErrBookUnavailable.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrPermissionDenied.HTTPCode())
	assert.Equal(t, http.StatusBadRequest, ErrValidationFailed.HTTPCode())
}
