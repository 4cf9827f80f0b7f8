package impl

import (
	"context"
	"log/slog"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager: params.TxManager,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *reportService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard summarizes the catalog and the actor's open loans.
func (srv *reportService) Dashboard(ctx context.Context, actorID uuid.UUID) (*usecase.Dashboard, error) {
	today := srv.clock.Today()
	dashboard := &usecase.Dashboard{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		loanRepo := repoFactory.LoanRepo()

		var err error
		if dashboard.TotalBooks, err = bookRepo.Count(ctx, false); err != nil {
			return errors.Wrap(err, "failed to count books")
		}
		if dashboard.AvailableBooks, err = bookRepo.Count(ctx, true); err != nil {
			return errors.Wrap(err, "failed to count available books")
		}
		if dashboard.OpenLoans, err = loanRepo.CountOpen(ctx); err != nil {
			return errors.Wrap(err, "failed to count open loans")
		}

		loans, err := loanRepo.ListOpenByUser(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to list open loans")
		}
		dashboard.MyLoans = make([]*usecase.LoanView, 0, len(loans))
		for _, loan := range loans {
			dashboard.MyLoans = append(dashboard.MyLoans, usecase.NewLoanView(loan, today))
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	return dashboard, nil
}

// LibrarianPanel summarizes catalog and loan statistics for staff.
func (srv *reportService) LibrarianPanel(ctx context.Context, actorID uuid.UUID) (*usecase.LibrarianPanel, error) {
	today := srv.clock.Today()
	panel := &usecase.LibrarianPanel{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireRole(ctx, repoFactory.UserRepo(), actorID, entity.StaffRoles); err != nil {
			return err
		}

		bookRepo := repoFactory.BookRepo()
		loanRepo := repoFactory.LoanRepo()

		var err error
		if panel.TotalBooks, err = bookRepo.Count(ctx, false); err != nil {
			return errors.Wrap(err, "failed to count books")
		}
		if panel.BooksByGenre, err = bookRepo.CountByGenre(ctx); err != nil {
			return errors.Wrap(err, "failed to count books by genre")
		}
		if panel.OpenLoans, err = loanRepo.CountOpen(ctx); err != nil {
			return errors.Wrap(err, "failed to count open loans")
		}
		if panel.OverdueLoans, err = loanRepo.CountOverdue(ctx, today); err != nil {
			return errors.Wrap(err, "failed to count overdue loans")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to build librarian panel")
	}

	srv.loggerFromContext(ctx).Debug("Librarian panel built", "userID", actorID, "openLoans", panel.OpenLoans)

	return panel, nil
}
