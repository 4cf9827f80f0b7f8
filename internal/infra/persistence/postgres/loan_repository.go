package postgres

import (
	"context"
	"database/sql/driver"
	"time"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"
	"library/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loanRepository implements repository.LoanRepository.
type loanRepository struct {
	q *query.Query
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{
		q: query.Use(db),
	}
}

// FindByIDForUpdate retrieves a loan with SELECT ... FOR UPDATE.
func (repo *loanRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	l := repo.q.LoanModel
	loanM, err := l.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where(l.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to lock loan")
	}

	return toLoanDomain(loanM), nil
}

// FindByID retrieves a loan.
func (repo *loanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	l := repo.q.LoanModel
	loanM, err := l.WithContext(ctx).Where(l.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return toLoanDomain(loanM), nil
}

// HasOpenLoanForBook reports whether any open loan references the book.
func (repo *loanRepository) HasOpenLoanForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	l := repo.q.LoanModel
	total, err := l.WithContext(ctx).
		Where(l.BookID.Eq(bookID), l.ReturnDate.IsNull()).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check open loans for book")
	}

	return total > 0, nil
}

// HasOpenLoanForUserAndBook reports whether the user holds the book on an open loan.
func (repo *loanRepository) HasOpenLoanForUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	l := repo.q.LoanModel
	total, err := l.WithContext(ctx).
		Where(l.UserID.Eq(userID), l.BookID.Eq(bookID), l.ReturnDate.IsNull()).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check open loans for user")
	}

	return total > 0, nil
}

// Create persists a new open loan. The partial unique index on book_id rejects
// a second open loan for the same book.
func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.q.LoanModel.WithContext(ctx).Create(loanM); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "" || constraint == constraintOpenLoanPerBook {
				return repository.ErrOpenLoanExists
			}
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("fine must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loan")
	}

	loan.ID = loanM.ID

	return nil
}

// Close stores the return date and fine, guarded on the loan still being open.
func (repo *loanRepository) Close(ctx context.Context, loan *entity.Loan) error {
	if loan.ReturnDate == nil {
		return errors.New("loan has no return date")
	}
	l := repo.q.LoanModel

	info, err := l.WithContext(ctx).
		Where(l.ID.Eq(loan.ID), l.ReturnDate.IsNull()).
		UpdateSimple(
			l.ReturnDate.Value(*loan.ReturnDate),
			l.Fine.Value(loan.Fine),
			l.UpdatedAt.Value(time.Now()),
		)
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("fine must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to close loan")
	}
	if info.RowsAffected == 0 {
		return repository.ErrLoanClosed
	}

	return nil
}

// ListOpenByUser returns a user's open loans with their books, earliest due first.
func (repo *loanRepository) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	l := repo.q.LoanModel
	loanModels, err := l.WithContext(ctx).
		Where(l.UserID.Eq(userID), l.ReturnDate.IsNull()).
		Order(l.DueDate, l.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open loans")
	}

	bookIDs := make([]uuid.UUID, 0, len(loanModels))
	for _, loanM := range loanModels {
		bookIDs = append(bookIDs, loanM.BookID)
	}
	books, err := repo.booksByID(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	loans := make([]*entity.Loan, 0, len(loanModels))
	for _, loanM := range loanModels {
		loan := toLoanDomain(loanM)
		loan.Book = books[loanM.BookID]
		loans = append(loans, loan)
	}

	return loans, nil
}

// booksByID loads books, soft-deleted ones included, keyed by id.
func (repo *loanRepository) booksByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Book, error) {
	books := make(map[uuid.UUID]*entity.Book, len(ids))
	if len(ids) == 0 {
		return books, nil
	}

	b := repo.q.BookModel
	bookModels, err := b.WithContext(ctx).Unscoped().Where(b.ID.In(uuidValuers(ids)...)).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load books for loans")
	}
	for _, bookM := range bookModels {
		books[bookM.ID] = toBookDomain(bookM)
	}

	return books, nil
}

// CountOpen returns the number of open loans.
func (repo *loanRepository) CountOpen(ctx context.Context) (int64, error) {
	l := repo.q.LoanModel
	total, err := l.WithContext(ctx).Where(l.ReturnDate.IsNull()).Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count open loans")
	}

	return total, nil
}

// CountOverdue returns the number of open loans due before today.
func (repo *loanRepository) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	l := repo.q.LoanModel
	total, err := l.WithContext(ctx).
		Where(l.ReturnDate.IsNull(), l.DueDate.Lt(entity.DateOf(today))).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count overdue loans")
	}

	return total, nil
}

func toLoanDomain(loanM *model.LoanModel) *entity.Loan {
	if loanM == nil {
		return nil
	}

	loan := &entity.Loan{
		ID:       loanM.ID,
		UserID:   loanM.UserID,
		BookID:   loanM.BookID,
		LoanDate: entity.DateOf(loanM.LoanDate),
		DueDate:  entity.DateOf(loanM.DueDate),
		Fine:     loanM.Fine.Round(entity.FineScale),
	}
	if loanM.ReturnDate != nil {
		returnDate := entity.DateOf(*loanM.ReturnDate)
		loan.ReturnDate = &returnDate
	}

	return loan
}

func fromLoanDomain(loan *entity.Loan) *model.LoanModel {
	if loan == nil {
		return nil
	}

	return &model.LoanModel{
		ID:         loan.ID,
		UserID:     loan.UserID,
		BookID:     loan.BookID,
		LoanDate:   loan.LoanDate,
		DueDate:    loan.DueDate,
		ReturnDate: loan.ReturnDate,
		Fine:       loan.Fine,
	}
}

func uuidValuers(ids []uuid.UUID) []driver.Valuer {
	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return values
}
