package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day0() time.Time {
	return time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
}

func TestNewLoan(t *testing.T) {
	userID, bookID := uuid.New(), uuid.New()

	loan, err := NewLoan(userID, bookID, day0().Add(15*time.Hour), 7)

	require.NoError(t, err)
	assert.Equal(t, userID, loan.UserID)
	assert.Equal(t, bookID, loan.BookID)
	assert.Equal(t, day0(), loan.LoanDate)
	assert.Equal(t, day0().AddDate(0, 0, 7), loan.DueDate)
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, "0.00", loan.Fine.StringFixed(FineScale))
	assert.Equal(t, LoanStatusOpen, loan.Status())
}

func TestNewLoan_RejectsNonPositiveDays(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := NewLoan(uuid.New(), uuid.New(), day0(), days)
		assert.ErrorIs(t, err, ErrInvalidLoanDays)
	}
}

func TestCalculateFine(t *testing.T) {
	due := day0().AddDate(0, 0, 7)

	tests := []struct {
		name     string
		returned time.Time
		want     string
	}{
		{name: "three days late", returned: day0().AddDate(0, 0, 10), want: "3000.00"},
		{name: "on the due date", returned: due, want: "0.00"},
		{name: "early", returned: day0().AddDate(0, 0, 2), want: "0.00"},
		{name: "one day late", returned: due.AddDate(0, 0, 1), want: "1000.00"},
		{name: "late the same evening counts by date", returned: due.AddDate(0, 0, 1).Add(23 * time.Hour), want: "1000.00"},
		{name: "a month late", returned: due.AddDate(0, 0, 31), want: "31000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fine := CalculateFine(due, tt.returned)
			assert.Equal(t, tt.want, fine.StringFixed(FineScale))
			assert.False(t, fine.IsNegative())
		})
	}
}

func TestLoan_Close(t *testing.T) {
	loan, err := NewLoan(uuid.New(), uuid.New(), day0(), 7)
	require.NoError(t, err)

	require.NoError(t, loan.Close(day0().AddDate(0, 0, 10)))

	assert.False(t, loan.IsOpen())
	assert.Equal(t, LoanStatusReturned, loan.Status())
	require.NotNil(t, loan.ReturnDate)
	assert.Equal(t, day0().AddDate(0, 0, 10), *loan.ReturnDate)
	assert.Equal(t, "3000.00", loan.Fine.StringFixed(FineScale))
}

func TestLoan_Close_Twice_KeepsFirstFine(t *testing.T) {
	loan, err := NewLoan(uuid.New(), uuid.New(), day0(), 7)
	require.NoError(t, err)
	require.NoError(t, loan.Close(day0().AddDate(0, 0, 8)))

	err = loan.Close(day0().AddDate(0, 0, 20))

	assert.ErrorIs(t, err, ErrLoanAlreadyClosed)
	assert.Equal(t, "1000.00", loan.Fine.StringFixed(FineScale))
	assert.Equal(t, day0().AddDate(0, 0, 8), *loan.ReturnDate)
}

func TestLoan_DaysRemainingAndOverdue(t *testing.T) {
	loan, err := NewLoan(uuid.New(), uuid.New(), day0(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, loan.DaysRemaining(day0()))
	assert.False(t, loan.IsOverdue(day0().AddDate(0, 0, 7)))
	assert.Equal(t, -2, loan.DaysRemaining(day0().AddDate(0, 0, 9)))
	assert.True(t, loan.IsOverdue(day0().AddDate(0, 0, 9)))
}

func TestDateOf_UsesLocalCalendarDate(t *testing.T) {
	santiago := time.FixedZone("CLT", -3*60*60)
	// 01:00 UTC on the 4th is still the evening of the 3rd in UTC-3.
	instant := time.Date(2025, time.March, 4, 1, 0, 0, 0, time.UTC).In(santiago)

	assert.Equal(t, day0(), DateOf(instant))
}
