package impl

import (
	"context"
	"log/slog"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *catalogService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook creates a book. Staff only.
func (srv *catalogService) AddBook(ctx context.Context, actorID uuid.UUID, input *usecase.BookInput) (*entity.Book, error) {
	logger := srv.loggerFromContext(ctx)
	logger.Debug("Adding book", "userID", actorID)

	var created *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireRole(ctx, repoFactory.UserRepo(), actorID, entity.StaffRoles); err != nil {
			return err
		}
		if input == nil {
			return domainerrors.ErrValidationFailed.WithDetails("book data is required")
		}

		book, err := entity.NewBook(input.Fields())
		if err != nil {
			return validationError(err)
		}

		if err := repoFactory.BookRepo().Create(ctx, book); err != nil {
			return errors.Wrap(err, "failed to create book")
		}
		created = book

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add book")
	}

	logger.Info("Book added", "bookID", created.ID, "userID", actorID)

	return created, nil
}

// EditBook replaces every mutable field of a book under its row lock.
// The availability flag stays false while an open loan references the book.
func (srv *catalogService) EditBook(ctx context.Context, actorID, bookID uuid.UUID, input *usecase.BookInput) (*entity.Book, error) {
	logger := srv.loggerFromContext(ctx)
	logger.Debug("Editing book", "userID", actorID, "bookID", bookID)

	var edited *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		if _, err := requireRole(ctx, repoFactory.UserRepo(), actorID, entity.StaffRoles); err != nil {
			return err
		}
		if input == nil {
			return domainerrors.ErrValidationFailed.WithDetails("book data is required")
		}

		book, err := bookRepo.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to lock book")
		}

		if err := book.Apply(input.Fields()); err != nil {
			return validationError(err)
		}

		if book.Available {
			open, err := repoFactory.LoanRepo().HasOpenLoanForBook(ctx, book.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check open loans")
			}
			book.Available = !open
		}

		if err := bookRepo.Update(ctx, book); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to update book")
		}
		edited = book

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to edit book")
	}

	logger.Info("Book edited", "bookID", bookID, "userID", actorID)

	return edited, nil
}

// DeleteBook removes a book that no open loan references.
func (srv *catalogService) DeleteBook(ctx context.Context, actorID, bookID uuid.UUID) error {
	logger := srv.loggerFromContext(ctx)
	logger.Debug("Deleting book", "userID", actorID, "bookID", bookID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		if _, err := requireRole(ctx, repoFactory.UserRepo(), actorID, entity.StaffRoles); err != nil {
			return err
		}

		if _, err := bookRepo.FindByIDForUpdate(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to lock book")
		}

		open, err := repoFactory.LoanRepo().HasOpenLoanForBook(ctx, bookID)
		if err != nil {
			return errors.Wrap(err, "failed to check open loans")
		}
		if open {
			return errors.WithStack(domainerrors.ErrBookHasActiveLoans)
		}

		if err := bookRepo.Delete(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to delete book")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete book")
	}

	logger.Info("Book deleted", "bookID", bookID, "userID", actorID)

	return nil
}

// GetBook retrieves one book.
func (srv *catalogService) GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to find book")
		}
		book = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}

// ListBooks returns every book matching the query with its availability flag.
func (srv *catalogService) ListBooks(ctx context.Context, query string) ([]*entity.Book, error) {
	var books []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().List(ctx, repository.BookFilter{Query: query})
		if err != nil {
			return errors.Wrap(err, "failed to list books")
		}
		books = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}
