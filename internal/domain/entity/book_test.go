package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	tests := []struct {
		name      string
		fields    BookFields
		wantErr   error
		wantGenre Genre
	}{
		{
			name:      "valid",
			fields:    BookFields{Title: " Dune ", Author: "Frank Herbert", Genre: "Fantasy", Available: true},
			wantGenre: GenreFantasy,
		},
		{
			name:      "empty genre defaults to other",
			fields:    BookFields{Title: "Notes", Author: "Anon"},
			wantGenre: GenreOther,
		},
		{name: "missing title", fields: BookFields{Title: "  ", Author: "Anon"}, wantErr: ErrTitleRequired},
		{name: "missing author", fields: BookFields{Title: "Notes"}, wantErr: ErrAuthorRequired},
		{name: "unknown genre", fields: BookFields{Title: "Notes", Author: "Anon", Genre: "cooking"}, wantErr: ErrUnknownGenre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := NewBook(tt.fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, book)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantGenre, book.Genre)
			assert.Equal(t, strings.TrimSpace(tt.fields.Title), book.Title)
			assert.Equal(t, tt.fields.Available, book.Available)
		})
	}
}

func TestBook_Apply_LeavesBookUntouchedOnError(t *testing.T) {
	book, err := NewBook(BookFields{Title: "Dune", Author: "Frank Herbert", Genre: "fantasy", Available: true})
	require.NoError(t, err)

	err = book.Apply(BookFields{Title: "Dune Messiah", Author: ""})

	assert.ErrorIs(t, err, ErrAuthorRequired)
	assert.Equal(t, "Dune", book.Title)
	assert.True(t, book.Available)
}

func TestGenres_HasTenValues(t *testing.T) {
	assert.Len(t, Genres, 10)
	for _, g := range Genres {
		assert.True(t, g.IsValid(), g)
	}
}
