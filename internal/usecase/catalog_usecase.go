package usecase

import (
	"context"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase manages books. Writes are restricted to staff.
type CatalogUsecase interface {
	AddBook(ctx context.Context, actorID uuid.UUID, input *BookInput) (*entity.Book, error)
	EditBook(ctx context.Context, actorID, bookID uuid.UUID, input *BookInput) (*entity.Book, error)
	DeleteBook(ctx context.Context, actorID, bookID uuid.UUID) error
	GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)
	ListBooks(ctx context.Context, query string) ([]*entity.Book, error)
}

// BookInput carries every mutable field of a book.
type BookInput struct {
	Title     string `json:"title" validate:"required,max=200"`
	Author    string `json:"author" validate:"required,max=100"`
	Genre     string `json:"genre" validate:"omitempty,genre"`
	Available bool   `json:"available"`
}

// Fields converts the input to entity fields.
func (in *BookInput) Fields() entity.BookFields {
	return entity.BookFields{
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		Available: in.Available,
	}
}
