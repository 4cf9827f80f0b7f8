package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanStatusOpen     LoanStatus = "OPEN"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// FineScale is the number of fractional digits kept on a fine.
const FineScale = 2

// DailyFineRate is charged per calendar day a book is returned late.
var DailyFineRate = decimal.RequireFromString("1000.00")

// Loan records a book lent to a user. Dates are calendar dates (midnight UTC).
type Loan struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	LoanDate   time.Time
	DueDate    time.Time
	ReturnDate *time.Time // Nil while the loan is open.
	Fine       decimal.Decimal
	Book       *Book // Optional, filled by listings.
}

// NewLoan opens a loan starting today and due after the given number of days.
func NewLoan(userID, bookID uuid.UUID, today time.Time, days int) (*Loan, error) {
	if days <= 0 {
		return nil, ErrInvalidLoanDays
	}
	loanDate := DateOf(today)

	return &Loan{
		UserID:   userID,
		BookID:   bookID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDate(0, 0, days),
		Fine:     decimal.Zero,
	}, nil
}

// IsOpen reports whether the book has not been returned yet.
func (l *Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

// Status derives the lifecycle state from the return date.
func (l *Loan) Status() LoanStatus {
	if l.IsOpen() {
		return LoanStatusOpen
	}

	return LoanStatusReturned
}

// Close marks the loan returned on the given date and settles the fine.
// It fires only once; a closed loan keeps its original fine.
func (l *Loan) Close(returned time.Time) error {
	if !l.IsOpen() {
		return ErrLoanAlreadyClosed
	}
	returnDate := DateOf(returned)
	l.ReturnDate = &returnDate
	l.Fine = CalculateFine(l.DueDate, returnDate)

	return nil
}

// DaysRemaining counts calendar days until the due date; negative when overdue.
func (l *Loan) DaysRemaining(today time.Time) int {
	return DaysBetween(DateOf(today), l.DueDate)
}

// IsOverdue reports whether an open loan is past its due date.
func (l *Loan) IsOverdue(today time.Time) bool {
	return l.IsOpen() && DateOf(today).After(l.DueDate)
}

// CalculateFine charges DailyFineRate for every whole day returned is after due.
func CalculateFine(due, returned time.Time) decimal.Decimal {
	daysLate := DaysBetween(DateOf(due), DateOf(returned))
	if daysLate <= 0 {
		return decimal.Zero.Round(FineScale)
	}

	return DailyFineRate.Mul(decimal.NewFromInt(int64(daysLate))).Round(FineScale)
}

// DateOf truncates t to its calendar date in t's own location, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
