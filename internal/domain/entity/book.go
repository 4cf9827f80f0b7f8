package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry. Available is a cached hint that no open loan references the book;
// it is recomputed on every state change and never trusted alone when granting a loan.
type Book struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Genre     Genre
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookFields are the mutable attributes of a book.
type BookFields struct {
	Title     string
	Author    string
	Genre     string
	Available bool
}

// NewBook builds a book from raw input after normalizing and validating it.
func NewBook(fields BookFields) (*Book, error) {
	book := &Book{}
	if err := book.Apply(fields); err != nil {
		return nil, err
	}

	return book, nil
}

// Apply replaces all mutable fields. The book is left untouched on error.
func (b *Book) Apply(fields BookFields) error {
	title := strings.TrimSpace(fields.Title)
	author := strings.TrimSpace(fields.Author)

	if title == "" {
		return ErrTitleRequired
	}
	if author == "" {
		return ErrAuthorRequired
	}

	genre, ok := ParseGenre(fields.Genre)
	if !ok {
		return ErrUnknownGenre
	}

	b.Title = title
	b.Author = author
	b.Genre = genre
	b.Available = fields.Available

	return nil
}
