package postgres

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"
	"library/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookRepository implements repository.BookRepository using the generated query builder.
type bookRepository struct {
	q *query.Query
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single book. Soft-deleted books are not found.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	b := repo.q.BookModel
	bookM, err := b.WithContext(ctx).Where(b.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(bookM), nil
}

// FindByIDForUpdate retrieves a book with SELECT ... FOR UPDATE.
func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	b := repo.q.BookModel
	bookM, err := b.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where(b.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to lock book")
	}

	return toBookDomain(bookM), nil
}

// List returns the books matching the filter ordered by title.
func (repo *bookRepository) List(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	b := repo.q.BookModel
	do := b.WithContext(ctx)

	if term := strings.ToLower(strings.TrimSpace(filter.Query)); term != "" {
		pattern := "%" + term + "%"
		do = do.Where(field.Or(
			b.Title.Lower().Like(pattern),
			b.Author.Lower().Like(pattern),
			b.Genre.Lower().Like(pattern),
		))
	}

	if filter.LoanableOnly {
		l := repo.q.LoanModel
		openLoans := l.WithContext(ctx).Select(l.BookID).Where(l.ReturnDate.IsNull())
		do = do.Where(b.Available.Is(true), b.Columns(b.ID).NotIn(openLoans))
	}

	bookModels, err := do.Order(b.Title, b.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// Create persists a new book and copies the generated values back.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.q.BookModel.WithContext(ctx).Create(bookM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update replaces title, author, genre and availability.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	b := repo.q.BookModel
	now := time.Now()

	info, err := b.WithContext(ctx).
		Where(b.ID.Eq(book.ID)).
		UpdateSimple(
			b.Title.Value(book.Title),
			b.Author.Value(book.Author),
			b.Genre.Value(string(book.Genre)),
			b.Available.Value(book.Available),
			b.UpdatedAt.Value(now),
		)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update book")
	}
	if info.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}
	book.UpdatedAt = now

	return nil
}

// SetAvailable updates only the availability flag.
func (repo *bookRepository) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	b := repo.q.BookModel

	info, err := b.WithContext(ctx).
		Where(b.ID.Eq(id)).
		UpdateSimple(b.Available.Value(available), b.UpdatedAt.Value(time.Now()))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update book availability")
	}
	if info.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete soft-deletes a book so that closed loans keep their reference.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	b := repo.q.BookModel

	info, err := b.WithContext(ctx).Where(b.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete book")
	}
	if info.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Count returns the number of books, optionally only those flagged available.
func (repo *bookRepository) Count(ctx context.Context, availableOnly bool) (int64, error) {
	b := repo.q.BookModel
	do := b.WithContext(ctx)
	if availableOnly {
		do = do.Where(b.Available.Is(true))
	}

	total, err := do.Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count books")
	}

	return total, nil
}

type genreCountRow struct {
	Genre string
	Total int64
}

// CountByGenre returns the number of books per genre, largest first and then by genre name.
func (repo *bookRepository) CountByGenre(ctx context.Context) ([]repository.GenreCount, error) {
	b := repo.q.BookModel

	var rows []genreCountRow
	if err := b.WithContext(ctx).
		Select(b.Genre, b.ID.Count().As("total")).
		Group(b.Genre).
		Scan(&rows); err != nil {
		return nil, errors.Wrap(err, "failed to count books by genre")
	}

	counts := make([]repository.GenreCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.GenreCount{
			Genre: entity.Genre(row.Genre),
			Total: row.Total,
		})
	}
	slices.SortFunc(counts, func(x, y repository.GenreCount) int {
		if c := cmp.Compare(y.Total, x.Total); c != 0 {
			return c
		}

		return cmp.Compare(x.Genre, y.Genre)
	})

	return counts, nil
}

func toBookDomain(bookM *model.BookModel) *entity.Book {
	if bookM == nil {
		return nil
	}

	return &entity.Book{
		ID:        bookM.ID,
		Title:     bookM.Title,
		Author:    bookM.Author,
		Genre:     entity.Genre(bookM.Genre),
		Available: bookM.Available,
		CreatedAt: bookM.CreatedAt,
		UpdatedAt: bookM.UpdatedAt,
	}
}

func fromBookDomain(book *entity.Book) *model.BookModel {
	if book == nil {
		return nil
	}

	return &model.BookModel{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Genre:     string(book.Genre),
		Available: book.Available,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}
