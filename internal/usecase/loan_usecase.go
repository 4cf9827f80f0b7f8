// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// LoanUsecase is the loan rule engine: granting, returning and listing loans.
type LoanUsecase interface {
	// CanGrantLoan reports whether the book is flagged available and no open loan references it.
	CanGrantLoan(ctx context.Context, book *entity.Book) (bool, error)

	// GrantLoan lends a book to the actor.
	GrantLoan(ctx context.Context, actorID uuid.UUID, input *GrantLoanInput) (*entity.Loan, error)

	// ReturnLoan closes one of the actor's open loans and settles its fine.
	ReturnLoan(ctx context.Context, actorID, loanID uuid.UUID) (*entity.Loan, error)

	// ReturnLoanByQR decodes a loan receipt QR payload and returns that loan.
	ReturnLoanByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*entity.Loan, error)

	// ListMyOpenLoans returns the actor's open loans, earliest due first.
	ListMyOpenLoans(ctx context.Context, actorID uuid.UUID) ([]*LoanView, error)

	// ListLoanableBooks returns the books that can be lent right now.
	ListLoanableBooks(ctx context.Context, query string) ([]*entity.Book, error)

	// LoanReceiptQR renders the PNG receipt of a loan for its owner or staff.
	LoanReceiptQR(ctx context.Context, actorID, loanID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// GrantLoanInput defines the data required to borrow a book.
type GrantLoanInput struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
	// Days is the requested loan length. Zero means the configured default.
	Days int `json:"days" validate:"gte=0"`
}

// ReturnLoanByQRInput carries the text scanned from a loan receipt.
type ReturnLoanByQRInput struct {
	QRData string `json:"qr_data" validate:"required"`
}

// --- Output DTOs ---

// LoanView is an open loan as shown to its holder.
type LoanView struct {
	Loan          *entity.Loan
	DaysRemaining int
	Overdue       bool
}

// NewLoanView derives the countdown fields of a loan for the given day.
func NewLoanView(loan *entity.Loan, today time.Time) *LoanView {
	return &LoanView{
		Loan:          loan,
		DaysRemaining: loan.DaysRemaining(today),
		Overdue:       loan.IsOverdue(today),
	}
}
