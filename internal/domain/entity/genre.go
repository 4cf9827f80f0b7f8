package entity

import "strings"

// Genre classifies a book. The set is closed.
type Genre string

const (
	GenreFiction    Genre = "fiction"
	GenreNonFiction Genre = "non_fiction"
	GenreScience    Genre = "science"
	GenreHistory    Genre = "history"
	GenreBiography  Genre = "biography"
	GenreFantasy    Genre = "fantasy"
	GenreRomance    Genre = "romance"
	GenreHorror     Genre = "horror"
	GenrePoetry     Genre = "poetry"
	GenreOther      Genre = "other"
)

// DefaultGenre is assigned when a book is created without a genre.
const DefaultGenre = GenreOther

// Genres lists every accepted genre in display order.
var Genres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreScience,
	GenreHistory,
	GenreBiography,
	GenreFantasy,
	GenreRomance,
	GenreHorror,
	GenrePoetry,
	GenreOther,
}

// String returns the string representation of the Genre.
func (g Genre) String() string {
	return string(g)
}

// IsValid checks if the Genre is one of the fixed values.
func (g Genre) IsValid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}

	return false
}

// ParseGenre normalizes input and applies the default for an empty value.
func ParseGenre(s string) (Genre, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultGenre, true
	}
	g := Genre(s)

	return g, g.IsValid()
}
