// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/constants"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loanService implements the LoanUsecase interface.
type loanService struct {
	txManager     repository.TransactionManager
	clock         service.Clock
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	defaultDays   int
	maxDays       int
	logger        *slog.Logger
}

// LoanServiceParams holds dependencies for LoanService, injected by Fx.
type LoanServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Clock         service.Clock
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLoanService is the constructor for loanService.
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	srv := &loanService{
		txManager:     params.TxManager,
		clock:         params.Clock,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		defaultDays:   7,
		maxDays:       30,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Loan != nil {
		if params.Config.Loan.DefaultDays > 0 {
			srv.defaultDays = params.Config.Loan.DefaultDays
		}
		if params.Config.Loan.MaxDays > 0 {
			srv.maxDays = params.Config.Loan.MaxDays
		}
	}

	return srv
}

func (srv *loanService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CanGrantLoan reports whether the book is flagged available and no open loan references it.
// The open-loan query decides; the flag only short-circuits.
func (srv *loanService) CanGrantLoan(ctx context.Context, book *entity.Book) (bool, error) {
	if book == nil || !book.Available {
		return false, nil
	}

	var open bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.LoanRepo().HasOpenLoanForBook(ctx, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check open loans")
		}
		open = found

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate book availability")
	}

	return !open, nil
}

// loanDays resolves the requested loan length. Zero means the default; values
// outside 1..maxDays are rejected, never clamped.
func (srv *loanService) loanDays(requested int) (int, error) {
	if requested == 0 {
		return srv.defaultDays, nil
	}
	if requested < 0 || requested > srv.maxDays {
		return 0, domainerrors.ErrInvalidLoanDays.WithDetails(
			"days must be between 1 and " + strconv.Itoa(srv.maxDays),
		)
	}

	return requested, nil
}

// GrantLoan lends a book to the actor under a row lock on the book.
// A reader who already holds the book gets a conflict before the availability flag is consulted.
func (srv *loanService) GrantLoan(ctx context.Context, actorID uuid.UUID, input *usecase.GrantLoanInput) (*entity.Loan, error) {
	logger := srv.loggerFromContext(ctx)

	if input == nil || input.BookID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("book_id is required")
	}

	days, err := srv.loanDays(input.Days)
	if err != nil {
		return nil, err
	}

	today := srv.clock.Today()
	logger.Debug("Granting loan", "userID", actorID, "bookID", input.BookID, "days", days)

	var granted *entity.Loan

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		loanRepo := repoFactory.LoanRepo()

		// 1. Lock the book so concurrent grants for it run one at a time
		book, err := bookRepo.FindByIDForUpdate(ctx, input.BookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to lock book")
		}

		// 2. A re-borrow is a conflict whatever the flag says
		holds, err := loanRepo.HasOpenLoanForUserAndBook(ctx, actorID, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check user loans")
		}
		if holds {
			return errors.WithStack(domainerrors.ErrAlreadyHoldsBook)
		}

		// 3. Availability flag
		if !book.Available {
			return errors.WithStack(domainerrors.ErrBookUnavailable)
		}

		// 4. Source of truth
		open, err := loanRepo.HasOpenLoanForBook(ctx, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check book loans")
		}
		if open {
			return errors.WithStack(domainerrors.ErrActiveLoanExists)
		}

		loan, err := entity.NewLoan(actorID, book.ID, today, days)
		if err != nil {
			return domainerrors.ErrInvalidLoanDays.WithDetails(err.Error())
		}

		if err := loanRepo.Create(ctx, loan); err != nil {
			if errors.Is(err, repository.ErrOpenLoanExists) {
				return errors.WithStack(domainerrors.ErrActiveLoanExists)
			}

			return errors.Wrap(err, "failed to create loan")
		}

		if err := bookRepo.SetAvailable(ctx, book.ID, false); err != nil {
			return errors.Wrap(err, "failed to mark book unavailable")
		}

		loan.Book = book
		loan.Book.Available = false
		granted = loan

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to grant loan")
	}

	logger.Info("Loan granted", "loanID", granted.ID, "userID", actorID, "bookID", granted.BookID, "dueDate", granted.DueDate)
	srv.publishLoanEvent(ctx, constants.EventLoanGranted, granted)

	return granted, nil
}

// ReturnLoan closes one of the actor's open loans and settles its fine.
func (srv *loanService) ReturnLoan(ctx context.Context, actorID, loanID uuid.UUID) (*entity.Loan, error) {
	logger := srv.loggerFromContext(ctx)
	today := srv.clock.Today()
	logger.Debug("Returning loan", "userID", actorID, "loanID", loanID)

	var returned *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.LoanRepo()

		loan, err := loanRepo.FindByIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return errors.Wrap(domainerrors.ErrLoanNotFound, "loan not found")
			}

			return errors.Wrap(err, "failed to lock loan")
		}

		// Someone else's loan is reported as missing
		if loan.UserID != actorID {
			return errors.Wrap(domainerrors.ErrLoanNotFound, "loan not owned by user")
		}

		if err := loan.Close(today); err != nil {
			return errors.WithStack(domainerrors.ErrLoanAlreadyReturned)
		}

		if err := loanRepo.Close(ctx, loan); err != nil {
			if errors.Is(err, repository.ErrLoanClosed) {
				return errors.WithStack(domainerrors.ErrLoanAlreadyReturned)
			}

			return errors.Wrap(err, "failed to close loan")
		}

		if err := repoFactory.BookRepo().SetAvailable(ctx, loan.BookID, true); err != nil {
			if !errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(err, "failed to mark book available")
			}
			logger.Warn("Returned loan references a removed book", "loanID", loan.ID, "bookID", loan.BookID)
		}

		returned = loan

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to return loan")
	}

	logger.Info("Loan returned", "loanID", returned.ID, "userID", actorID, "fine", returned.Fine.StringFixed(entity.FineScale))
	srv.publishLoanEvent(ctx, constants.EventLoanReturned, returned)

	return returned, nil
}

// ReturnLoanByQR decodes a loan receipt QR payload and returns that loan.
func (srv *loanService) ReturnLoanByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*entity.Loan, error) {
	loanID, err := srv.qrCodeService.ParseLoanQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.ReturnLoan(ctx, actorID, loanID)
}

// ListMyOpenLoans returns the actor's open loans, earliest due first.
func (srv *loanService) ListMyOpenLoans(ctx context.Context, actorID uuid.UUID) ([]*usecase.LoanView, error) {
	today := srv.clock.Today()

	var views []*usecase.LoanView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loans, err := repoFactory.LoanRepo().ListOpenByUser(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to list open loans")
		}

		views = make([]*usecase.LoanView, 0, len(loans))
		for _, loan := range loans {
			views = append(views, usecase.NewLoanView(loan, today))
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}

	return views, nil
}

// ListLoanableBooks returns books flagged available that no open loan references.
func (srv *loanService) ListLoanableBooks(ctx context.Context, query string) ([]*entity.Book, error) {
	var books []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().List(ctx, repository.BookFilter{
			Query:        query,
			LoanableOnly: true,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list loanable books")
		}
		books = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// LoanReceiptQR renders the receipt QR of a loan. Only the borrower and staff may see it.
func (srv *loanService) LoanReceiptQR(ctx context.Context, actorID, loanID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loan, err := repoFactory.LoanRepo().FindByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return errors.Wrap(domainerrors.ErrLoanNotFound, "loan not found")
			}

			return errors.Wrap(err, "failed to find loan")
		}
		if loan.UserID == actorID {
			return nil
		}

		role, err := resolveRole(ctx, repoFactory.UserRepo(), actorID)
		if err != nil {
			if domainerrors.KindOf(err) == domainerrors.KindPermission {
				return errors.Wrap(domainerrors.ErrLoanNotFound, "loan not owned by user")
			}

			return err
		}
		if !role.IsStaff() {
			return errors.Wrap(domainerrors.ErrLoanNotFound, "loan not owned by user")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to load loan receipt")
	}

	png, err := srv.qrCodeService.GenerateLoanQR(loanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate loan receipt")
	}

	return png, nil
}

// publishLoanEvent sends a loan event after commit. Failures are logged and dropped.
func (srv *loanService) publishLoanEvent(ctx context.Context, eventType string, loan *entity.Loan) {
	event := &service.LoanEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		LoanID:     loan.ID.String(),
		UserID:     loan.UserID.String(),
		BookID:     loan.BookID.String(),
		LoanDate:   loan.LoanDate,
		DueDate:    loan.DueDate,
		ReturnDate: loan.ReturnDate,
		Fine:       loan.Fine.StringFixed(entity.FineScale),
		OccurredAt: srv.clock.Now().UTC().Truncate(time.Millisecond),
	}

	if err := srv.publisher.PublishLoanEvent(ctx, event); err != nil {
		srv.loggerFromContext(ctx).Warn("Failed to publish loan event",
			"eventType", eventType,
			"loanID", loan.ID,
			"error", err,
		)
	}
}
