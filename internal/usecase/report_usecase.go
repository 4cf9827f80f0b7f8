package usecase

import (
	"context"

	"library/internal/domain/repository"

	"github.com/google/uuid"
)

// ReportUsecase aggregates catalog and loan statistics.
type ReportUsecase interface {
	Dashboard(ctx context.Context, actorID uuid.UUID) (*Dashboard, error)
	LibrarianPanel(ctx context.Context, actorID uuid.UUID) (*LibrarianPanel, error)
}

// Dashboard is the landing summary for any member.
type Dashboard struct {
	TotalBooks     int64
	AvailableBooks int64
	OpenLoans      int64
	MyLoans        []*LoanView
}

// LibrarianPanel is the staff summary.
type LibrarianPanel struct {
	TotalBooks   int64
	BooksByGenre []repository.GenreCount
	OpenLoans    int64
	OverdueLoans int64
}
