package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	txFixtures

	service usecase.CatalogUsecase
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{txFixtures: newTxFixtures(t)}
	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager: fx.txManager,
		Logger:    discardLogger(),
	})

	return fx
}

func TestCatalogService_AddBook_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	actorID := uuid.New()
	bookID := uuid.New()

	fx.expectTx()
	fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleLibrarian, nil)
	fx.bookRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(_ context.Context, book *entity.Book) { book.ID = bookID }).
		Return(nil)

	book, err := fx.service.AddBook(ctx, actorID, &usecase.BookInput{
		Title:     "  Ficciones ",
		Author:    "Jorge Luis Borges",
		Available: true,
	})

	require.NoError(t, err)
	assert.Equal(t, bookID, book.ID)
	assert.Equal(t, "Ficciones", book.Title)
	assert.Equal(t, entity.GenreOther, book.Genre)
	assert.True(t, book.Available)
}

func TestCatalogService_AddBook_LogsWithRequestLogger(t *testing.T) {
	fx := createTestCatalogService(t)
	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("request_id", "req-42")
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)
	actorID := uuid.New()

	fx.expectTx()
	fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleAdministrator, nil)
	fx.bookRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(_ context.Context, book *entity.Book) { book.ID = uuid.New() }).
		Return(nil)

	_, err := fx.service.AddBook(ctx, actorID, &usecase.BookInput{Title: "Aura", Author: "Carlos Fuentes"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Adding book")
	assert.Contains(t, buf.String(), "Book added")
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestCatalogService_AddBook_Rejected(t *testing.T) {
	tests := []struct {
		name         string
		role         entity.Role
		roleErr      error
		input        *usecase.BookInput
		expectedKind domainerrors.Kind
	}{
		{
			name:         "reader",
			role:         entity.RoleReader,
			input:        &usecase.BookInput{Title: "Ficciones", Author: "Borges"},
			expectedKind: domainerrors.KindPermission,
		},
		{
			name:         "user without profile",
			roleErr:      repository.ErrProfileNotFound,
			input:        &usecase.BookInput{Title: "Ficciones", Author: "Borges"},
			expectedKind: domainerrors.KindPermission,
		},
		{
			name:         "blank title",
			role:         entity.RoleAdministrator,
			input:        &usecase.BookInput{Title: "   ", Author: "Borges"},
			expectedKind: domainerrors.KindValidation,
		},
		{
			name:         "blank author",
			role:         entity.RoleLibrarian,
			input:        &usecase.BookInput{Title: "Ficciones", Author: ""},
			expectedKind: domainerrors.KindValidation,
		},
		{
			name:         "unknown genre",
			role:         entity.RoleLibrarian,
			input:        &usecase.BookInput{Title: "Ficciones", Author: "Borges", Genre: "cookbook"},
			expectedKind: domainerrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			actorID := uuid.New()

			fx.expectTx()
			fx.userRepo.EXPECT().FindRole(mock.Anything, actorID).Return(tt.role, tt.roleErr)

			book, err := fx.service.AddBook(context.Background(), actorID, tt.input)

			require.Error(t, err)
			assert.Nil(t, book)
			assert.Equal(t, tt.expectedKind, domainerrors.KindOf(err))
		})
	}
}

func TestCatalogService_EditBook(t *testing.T) {
	tests := []struct {
		name              string
		requested         bool
		openLoan          bool
		expectedAvailable bool
	}{
		{name: "available without loans", requested: true, expectedAvailable: true},
		{name: "forced unavailable while on loan", requested: true, openLoan: true, expectedAvailable: false},
		{name: "explicitly unavailable", requested: false, expectedAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			actorID := uuid.New()
			stored := &entity.Book{ID: uuid.New(), Title: "Old", Author: "Someone", Genre: entity.GenreOther}

			fx.expectTx()
			fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleLibrarian, nil)
			fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, stored.ID).Return(stored, nil)
			if tt.requested {
				fx.loanRepo.EXPECT().HasOpenLoanForBook(ctx, stored.ID).Return(tt.openLoan, nil)
			}
			fx.bookRepo.EXPECT().Update(ctx, stored).Return(nil)

			book, err := fx.service.EditBook(ctx, actorID, stored.ID, &usecase.BookInput{
				Title:     "El Aleph",
				Author:    "Jorge Luis Borges",
				Genre:     "FICTION",
				Available: tt.requested,
			})

			require.NoError(t, err)
			assert.Equal(t, "El Aleph", book.Title)
			assert.Equal(t, entity.GenreFiction, book.Genre)
			assert.Equal(t, tt.expectedAvailable, book.Available)
		})
	}
}

func TestCatalogService_EditBook_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	actorID := uuid.New()
	bookID := uuid.New()

	fx.expectTx()
	fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleAdministrator, nil)
	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	_, err := fx.service.EditBook(ctx, actorID, bookID, &usecase.BookInput{Title: "X", Author: "Y"})

	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestCatalogService_DeleteBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		actorID := uuid.New()
		book := availableBook()

		fx.expectTx()
		fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleLibrarian, nil)
		fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, book.ID).Return(book, nil)
		fx.loanRepo.EXPECT().HasOpenLoanForBook(ctx, book.ID).Return(false, nil)
		fx.bookRepo.EXPECT().Delete(ctx, book.ID).Return(nil)

		require.NoError(t, fx.service.DeleteBook(ctx, actorID, book.ID))
	})

	t.Run("book with open loan", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		actorID := uuid.New()
		book := availableBook()

		fx.expectTx()
		fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleLibrarian, nil)
		fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, book.ID).Return(book, nil)
		fx.loanRepo.EXPECT().HasOpenLoanForBook(ctx, book.ID).Return(true, nil)

		err := fx.service.DeleteBook(ctx, actorID, book.ID)

		assert.ErrorIs(t, err, domainerrors.ErrBookHasActiveLoans)
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})

	t.Run("missing book", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		actorID := uuid.New()
		bookID := uuid.New()

		fx.expectTx()
		fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleLibrarian, nil)
		fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(nil, repository.ErrBookNotFound)

		err := fx.service.DeleteBook(ctx, actorID, bookID)

		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})

	t.Run("reader", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		actorID := uuid.New()

		fx.expectTx()
		fx.userRepo.EXPECT().FindRole(ctx, actorID).Return(entity.RoleReader, nil)

		err := fx.service.DeleteBook(ctx, actorID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}

func TestCatalogService_Reads(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	book := availableBook()

	fx.expectTx()
	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	fx.bookRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrBookNotFound)
	fx.bookRepo.EXPECT().List(ctx, repository.BookFilter{Query: "rayuela"}).Return([]*entity.Book{book}, nil)

	found, err := fx.service.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, found)

	_, err = fx.service.GetBook(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)

	books, err := fx.service.ListBooks(ctx, "rayuela")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
