package impl

import (
	"context"
	"testing"
	"time"

	"library/config"
	"library/internal/domain/constants"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	mockSvc "library/internal/mocks/service"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

// loanServiceFixtures holds all test dependencies for loan service tests.
type loanServiceFixtures struct {
	txFixtures

	service   usecase.LoanUsecase
	clock     *mockSvc.MockClock
	publisher *mockSvc.MockEventPublisher
	qrCode    *mockSvc.MockQRCodeService
}

func createTestLoanService(t *testing.T) loanServiceFixtures {
	fx := loanServiceFixtures{
		txFixtures: newTxFixtures(t),
		clock:      mockSvc.NewMockClock(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		qrCode:     mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{Loan: &config.LoanConfig{DefaultDays: 7, MaxDays: 30}}
	fx.service = NewLoanService(LoanServiceParams{
		TxManager:     fx.txManager,
		Clock:         fx.clock,
		Publisher:     fx.publisher,
		QRCodeService: fx.qrCode,
		Config:        cfg,
		Logger:        discardLogger(),
	})

	return fx
}

func availableBook() *entity.Book {
	return &entity.Book{
		ID:        uuid.New(),
		Title:     "Rayuela",
		Author:    "Julio Cortázar",
		Genre:     entity.GenreFiction,
		Available: true,
	}
}

func TestLoanService_GrantLoan_Success(t *testing.T) {
	tests := []struct {
		name        string
		days        int
		expectedDue time.Time
	}{
		{name: "default length", days: 0, expectedDue: testToday.AddDate(0, 0, 7)},
		{name: "requested length", days: 14, expectedDue: testToday.AddDate(0, 0, 14)},
		{name: "maximum length", days: 30, expectedDue: testToday.AddDate(0, 0, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoanService(t)
			ctx := context.Background()
			userID := uuid.New()
			book := availableBook()
			loanID := uuid.New()

			fx.clock.EXPECT().Today().Return(testToday)
			fx.clock.EXPECT().Now().Return(testToday.Add(10 * time.Hour))
			fx.expectTx()
			fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, book.ID).Return(book, nil)
			fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(ctx, userID, book.ID).Return(false, nil)
			fx.loanRepo.EXPECT().HasOpenLoanForBook(ctx, book.ID).Return(false, nil)
			fx.loanRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Loan")).
				Run(func(_ context.Context, loan *entity.Loan) { loan.ID = loanID }).
				Return(nil)
			fx.bookRepo.EXPECT().SetAvailable(ctx, book.ID, false).Return(nil)
			fx.publisher.EXPECT().
				PublishLoanEvent(ctx, mock.MatchedBy(func(event *service.LoanEvent) bool {
					return event.Type == constants.EventLoanGranted &&
						event.LoanID == loanID.String() &&
						event.Fine == "0.00" &&
						event.ReturnDate == nil
				})).
				Return(nil)

			loan, err := fx.service.GrantLoan(ctx, userID, &usecase.GrantLoanInput{BookID: book.ID, Days: tt.days})

			require.NoError(t, err)
			assert.Equal(t, loanID, loan.ID)
			assert.Equal(t, userID, loan.UserID)
			assert.Equal(t, testToday, loan.LoanDate)
			assert.Equal(t, tt.expectedDue, loan.DueDate)
			assert.Nil(t, loan.ReturnDate)
			assert.True(t, decimal.Zero.Equal(loan.Fine))
			require.NotNil(t, loan.Book)
			assert.False(t, loan.Book.Available)
		})
	}
}

func TestLoanService_GrantLoan_InvalidDays(t *testing.T) {
	for _, days := range []int{-1, 31, 365} {
		fx := createTestLoanService(t)

		_, err := fx.service.GrantLoan(context.Background(), uuid.New(), &usecase.GrantLoanInput{BookID: uuid.New(), Days: days})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidLoanDays)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	}
}

func TestLoanService_GrantLoan_MissingBookID(t *testing.T) {
	fx := createTestLoanService(t)

	_, err := fx.service.GrantLoan(context.Background(), uuid.New(), &usecase.GrantLoanInput{})

	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestLoanService_GrantLoan_Rejected(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(fx loanServiceFixtures, userID uuid.UUID, book *entity.Book)
		expectedErr  error
		expectedKind domainerrors.Kind
	}{
		{
			name: "book not found",
			setup: func(fx loanServiceFixtures, _ uuid.UUID, book *entity.Book) {
				fx.bookRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(nil, repository.ErrBookNotFound)
			},
			expectedErr:  domainerrors.ErrBookNotFound,
			expectedKind: domainerrors.KindNotFound,
		},
		{
			name: "user already holds the book",
			setup: func(fx loanServiceFixtures, userID uuid.UUID, book *entity.Book) {
				book.Available = false
				fx.bookRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(book, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(mock.Anything, userID, book.ID).Return(true, nil)
			},
			expectedErr:  domainerrors.ErrAlreadyHoldsBook,
			expectedKind: domainerrors.KindConflict,
		},
		{
			name: "book flagged unavailable",
			setup: func(fx loanServiceFixtures, userID uuid.UUID, book *entity.Book) {
				book.Available = false
				fx.bookRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(book, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(mock.Anything, userID, book.ID).Return(false, nil)
			},
			expectedErr:  domainerrors.ErrBookUnavailable,
			expectedKind: domainerrors.KindUnavailable,
		},
		{
			name: "stale flag with open loan",
			setup: func(fx loanServiceFixtures, userID uuid.UUID, book *entity.Book) {
				fx.bookRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(book, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(mock.Anything, userID, book.ID).Return(false, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForBook(mock.Anything, book.ID).Return(true, nil)
			},
			expectedErr:  domainerrors.ErrActiveLoanExists,
			expectedKind: domainerrors.KindConflict,
		},
		{
			name: "unique index rejects insert",
			setup: func(fx loanServiceFixtures, userID uuid.UUID, book *entity.Book) {
				fx.bookRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(book, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(mock.Anything, userID, book.ID).Return(false, nil)
				fx.loanRepo.EXPECT().HasOpenLoanForBook(mock.Anything, book.ID).Return(false, nil)
				fx.loanRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Loan")).Return(repository.ErrOpenLoanExists)
			},
			expectedErr:  domainerrors.ErrActiveLoanExists,
			expectedKind: domainerrors.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoanService(t)
			userID := uuid.New()
			book := availableBook()

			fx.clock.EXPECT().Today().Return(testToday)
			fx.expectTx()
			tt.setup(fx, userID, book)

			loan, err := fx.service.GrantLoan(context.Background(), userID, &usecase.GrantLoanInput{BookID: book.ID})

			require.Error(t, err)
			assert.Nil(t, loan)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedKind, domainerrors.KindOf(err))
		})
	}
}

func TestLoanService_GrantLoan_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestLoanService(t)
	ctx := context.Background()
	userID := uuid.New()
	book := availableBook()

	fx.clock.EXPECT().Today().Return(testToday)
	fx.clock.EXPECT().Now().Return(testToday)
	fx.expectTx()
	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, book.ID).Return(book, nil)
	fx.loanRepo.EXPECT().HasOpenLoanForUserAndBook(ctx, userID, book.ID).Return(false, nil)
	fx.loanRepo.EXPECT().HasOpenLoanForBook(ctx, book.ID).Return(false, nil)
	fx.loanRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
	fx.bookRepo.EXPECT().SetAvailable(ctx, book.ID, false).Return(nil)
	fx.publisher.EXPECT().PublishLoanEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	loan, err := fx.service.GrantLoan(ctx, userID, &usecase.GrantLoanInput{BookID: book.ID})

	require.NoError(t, err)
	assert.NotNil(t, loan)
}

func openLoan(userID, bookID uuid.UUID, loanDate time.Time, days int) *entity.Loan {
	return &entity.Loan{
		ID:       uuid.New(),
		UserID:   userID,
		BookID:   bookID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDate(0, 0, days),
		Fine:     decimal.Zero,
	}
}

func TestLoanService_ReturnLoan_Success(t *testing.T) {
	tests := []struct {
		name         string
		loanDate     time.Time
		expectedFine string
	}{
		{name: "on time", loanDate: testToday.AddDate(0, 0, -5), expectedFine: "0.00"},
		{name: "on the due date", loanDate: testToday.AddDate(0, 0, -7), expectedFine: "0.00"},
		{name: "three days late", loanDate: testToday.AddDate(0, 0, -10), expectedFine: "3000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoanService(t)
			ctx := context.Background()
			userID := uuid.New()
			loan := openLoan(userID, uuid.New(), tt.loanDate, 7)

			fx.clock.EXPECT().Today().Return(testToday)
			fx.clock.EXPECT().Now().Return(testToday)
			fx.expectTx()
			fx.loanRepo.EXPECT().FindByIDForUpdate(ctx, loan.ID).Return(loan, nil)
			fx.loanRepo.EXPECT().Close(ctx, loan).Return(nil)
			fx.bookRepo.EXPECT().SetAvailable(ctx, loan.BookID, true).Return(nil)
			fx.publisher.EXPECT().
				PublishLoanEvent(ctx, mock.MatchedBy(func(event *service.LoanEvent) bool {
					return event.Type == constants.EventLoanReturned && event.Fine == tt.expectedFine
				})).
				Return(nil)

			returned, err := fx.service.ReturnLoan(ctx, userID, loan.ID)

			require.NoError(t, err)
			require.NotNil(t, returned.ReturnDate)
			assert.Equal(t, testToday, *returned.ReturnDate)
			assert.Equal(t, tt.expectedFine, returned.Fine.StringFixed(2))
			assert.Equal(t, entity.LoanStatusReturned, returned.Status())
		})
	}
}

func TestLoanService_ReturnLoan_Rejected(t *testing.T) {
	userID := uuid.New()
	returnedOn := testToday.AddDate(0, 0, -1)

	tests := []struct {
		name         string
		setup        func(fx loanServiceFixtures, loan *entity.Loan)
		expectedErr  error
		expectedKind domainerrors.Kind
	}{
		{
			name: "loan not found",
			setup: func(fx loanServiceFixtures, loan *entity.Loan) {
				fx.loanRepo.EXPECT().FindByIDForUpdate(mock.Anything, loan.ID).Return(nil, repository.ErrLoanNotFound)
			},
			expectedErr:  domainerrors.ErrLoanNotFound,
			expectedKind: domainerrors.KindNotFound,
		},
		{
			name: "loan of another user",
			setup: func(fx loanServiceFixtures, loan *entity.Loan) {
				other := *loan
				other.UserID = uuid.New()
				fx.loanRepo.EXPECT().FindByIDForUpdate(mock.Anything, loan.ID).Return(&other, nil)
			},
			expectedErr:  domainerrors.ErrLoanNotFound,
			expectedKind: domainerrors.KindNotFound,
		},
		{
			name: "already returned",
			setup: func(fx loanServiceFixtures, loan *entity.Loan) {
				closed := *loan
				closed.ReturnDate = &returnedOn
				closed.Fine = decimal.RequireFromString("2000.00")
				fx.loanRepo.EXPECT().FindByIDForUpdate(mock.Anything, loan.ID).Return(&closed, nil)
			},
			expectedErr:  domainerrors.ErrLoanAlreadyReturned,
			expectedKind: domainerrors.KindInvalidState,
		},
		{
			name: "closed concurrently",
			setup: func(fx loanServiceFixtures, loan *entity.Loan) {
				fx.loanRepo.EXPECT().FindByIDForUpdate(mock.Anything, loan.ID).Return(loan, nil)
				fx.loanRepo.EXPECT().Close(mock.Anything, loan).Return(repository.ErrLoanClosed)
			},
			expectedErr:  domainerrors.ErrLoanAlreadyReturned,
			expectedKind: domainerrors.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoanService(t)
			loan := openLoan(userID, uuid.New(), testToday.AddDate(0, 0, -3), 7)

			fx.clock.EXPECT().Today().Return(testToday)
			fx.expectTx()
			tt.setup(fx, loan)

			returned, err := fx.service.ReturnLoan(context.Background(), userID, loan.ID)

			require.Error(t, err)
			assert.Nil(t, returned)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedKind, domainerrors.KindOf(err))
		})
	}
}

func TestLoanService_ReturnLoan_RemovedBookIsTolerated(t *testing.T) {
	fx := createTestLoanService(t)
	ctx := context.Background()
	userID := uuid.New()
	loan := openLoan(userID, uuid.New(), testToday, 7)

	fx.clock.EXPECT().Today().Return(testToday)
	fx.clock.EXPECT().Now().Return(testToday)
	fx.expectTx()
	fx.loanRepo.EXPECT().FindByIDForUpdate(ctx, loan.ID).Return(loan, nil)
	fx.loanRepo.EXPECT().Close(ctx, loan).Return(nil)
	fx.bookRepo.EXPECT().SetAvailable(ctx, loan.BookID, true).Return(repository.ErrBookNotFound)
	fx.publisher.EXPECT().PublishLoanEvent(ctx, mock.Anything).Return(nil)

	returned, err := fx.service.ReturnLoan(ctx, userID, loan.ID)

	require.NoError(t, err)
	assert.False(t, returned.IsOpen())
}

func TestLoanService_ReturnLoanByQR(t *testing.T) {
	t.Run("unreadable payload", func(t *testing.T) {
		fx := createTestLoanService(t)
		fx.qrCode.EXPECT().ParseLoanQR("garbage").Return(uuid.Nil, errors.New("invalid loan QR payload"))

		_, err := fx.service.ReturnLoanByQR(context.Background(), uuid.New(), "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	})

	t.Run("returns the encoded loan", func(t *testing.T) {
		fx := createTestLoanService(t)
		ctx := context.Background()
		userID := uuid.New()
		loan := openLoan(userID, uuid.New(), testToday, 7)

		fx.qrCode.EXPECT().ParseLoanQR("payload").Return(loan.ID, nil)
		fx.clock.EXPECT().Today().Return(testToday)
		fx.clock.EXPECT().Now().Return(testToday)
		fx.expectTx()
		fx.loanRepo.EXPECT().FindByIDForUpdate(ctx, loan.ID).Return(loan, nil)
		fx.loanRepo.EXPECT().Close(ctx, loan).Return(nil)
		fx.bookRepo.EXPECT().SetAvailable(ctx, loan.BookID, true).Return(nil)
		fx.publisher.EXPECT().PublishLoanEvent(ctx, mock.Anything).Return(nil)

		returned, err := fx.service.ReturnLoanByQR(ctx, userID, "payload")

		require.NoError(t, err)
		assert.Equal(t, loan.ID, returned.ID)
	})
}

func TestLoanService_CanGrantLoan(t *testing.T) {
	t.Run("flag off skips the query", func(t *testing.T) {
		fx := createTestLoanService(t)
		book := availableBook()
		book.Available = false

		ok, err := fx.service.CanGrantLoan(context.Background(), book)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	for _, open := range []bool{true, false} {
		fx := createTestLoanService(t)
		book := availableBook()
		fx.expectTx()
		fx.loanRepo.EXPECT().HasOpenLoanForBook(mock.Anything, book.ID).Return(open, nil)

		ok, err := fx.service.CanGrantLoan(context.Background(), book)

		require.NoError(t, err)
		assert.Equal(t, !open, ok)
	}
}

func TestLoanService_ListMyOpenLoans(t *testing.T) {
	fx := createTestLoanService(t)
	ctx := context.Background()
	userID := uuid.New()
	overdue := openLoan(userID, uuid.New(), testToday.AddDate(0, 0, -9), 7)
	current := openLoan(userID, uuid.New(), testToday.AddDate(0, 0, -2), 7)

	fx.clock.EXPECT().Today().Return(testToday)
	fx.expectTx()
	fx.loanRepo.EXPECT().ListOpenByUser(ctx, userID).Return([]*entity.Loan{overdue, current}, nil)

	views, err := fx.service.ListMyOpenLoans(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, -2, views[0].DaysRemaining)
	assert.True(t, views[0].Overdue)
	assert.Equal(t, 5, views[1].DaysRemaining)
	assert.False(t, views[1].Overdue)
}

func TestLoanService_ListLoanableBooks(t *testing.T) {
	fx := createTestLoanService(t)
	ctx := context.Background()
	books := []*entity.Book{availableBook()}

	fx.expectTx()
	fx.bookRepo.EXPECT().List(ctx, repository.BookFilter{Query: "cortázar", LoanableOnly: true}).Return(books, nil)

	found, err := fx.service.ListLoanableBooks(ctx, "cortázar")

	require.NoError(t, err)
	assert.Equal(t, books, found)
}

func TestLoanService_LoanReceiptQR(t *testing.T) {
	ownerID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name         string
		actorID      uuid.UUID
		role         entity.Role
		roleErr      error
		expectedKind domainerrors.Kind
	}{
		{name: "owner", actorID: ownerID},
		{name: "librarian", actorID: uuid.New(), role: entity.RoleLibrarian},
		{name: "administrator", actorID: uuid.New(), role: entity.RoleAdministrator},
		{name: "another reader", actorID: uuid.New(), role: entity.RoleReader, expectedKind: domainerrors.KindNotFound},
		{name: "user without profile", actorID: uuid.New(), roleErr: repository.ErrProfileNotFound, expectedKind: domainerrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoanService(t)
			ctx := context.Background()
			loan := openLoan(ownerID, uuid.New(), testToday, 7)

			fx.expectTx()
			fx.loanRepo.EXPECT().FindByID(ctx, loan.ID).Return(loan, nil)
			if tt.actorID != ownerID {
				fx.userRepo.EXPECT().FindRole(ctx, tt.actorID).Return(tt.role, tt.roleErr)
			}
			if tt.expectedKind == "" {
				fx.qrCode.EXPECT().GenerateLoanQR(loan.ID).Return(png, nil)
			}

			got, err := fx.service.LoanReceiptQR(ctx, tt.actorID, loan.ID)

			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, domainerrors.KindOf(err))
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, png, got)
		})
	}
}
