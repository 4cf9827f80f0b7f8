package repository

import (
	"context"
	"errors"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookFilter narrows book listings.
type BookFilter struct {
	// Query matches title, author or genre case-insensitively. Empty matches all.
	Query string

	// LoanableOnly keeps books flagged available that also have no open loan.
	LoanableOnly bool
}

// GenreCount is the number of books in one genre.
type GenreCount struct {
	Genre entity.Genre
	Total int64
}

// BookRepository defines the persistence operations on the catalog.
type BookRepository interface {
	// FindByID retrieves a single book.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIDForUpdate retrieves a book and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// List returns the books matching the filter ordered by title.
	List(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// Update replaces the mutable fields of a book.
	Update(ctx context.Context, book *entity.Book) error

	// SetAvailable updates only the availability flag.
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error

	// Delete removes a book from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of books, optionally only those flagged available.
	Count(ctx context.Context, availableOnly bool) (int64, error)

	// CountByGenre returns the number of books per genre, largest first.
	CountByGenre(ctx context.Context) ([]GenreCount, error)
}
