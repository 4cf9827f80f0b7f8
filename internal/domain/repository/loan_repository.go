package repository

import (
	"context"
	"errors"
	"time"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrOpenLoanExists is returned when storage refuses a second open loan for a book.
	ErrOpenLoanExists = errors.New("open loan already exists for book")

	// ErrLoanClosed is returned when closing a loan that is no longer open.
	ErrLoanClosed = errors.New("loan already closed")
)

// LoanRepository defines the persistence operations on loans.
type LoanRepository interface {
	// FindByIDForUpdate retrieves a loan and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByID retrieves a loan.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// HasOpenLoanForBook reports whether any open loan references the book.
	HasOpenLoanForBook(ctx context.Context, bookID uuid.UUID) (bool, error)

	// HasOpenLoanForUserAndBook reports whether the user holds the book on an open loan.
	HasOpenLoanForUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error)

	// Create persists a new open loan. It returns ErrOpenLoanExists when the
	// book already has an open loan at the storage level.
	Create(ctx context.Context, loan *entity.Loan) error

	// Close stores the return date and fine of a loan that is still open.
	// It returns ErrLoanClosed if the loan was closed concurrently.
	Close(ctx context.Context, loan *entity.Loan) error

	// ListOpenByUser returns a user's open loans with their books, earliest due first.
	ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// CountOpen returns the number of open loans.
	CountOpen(ctx context.Context) (int64, error)

	// CountOverdue returns the number of open loans due before the given date.
	CountOverdue(ctx context.Context, today time.Time) (int64, error)
}
