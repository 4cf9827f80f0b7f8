package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"library/config"
	apimiddleware "library/internal/delivery/api/middleware"
	"library/internal/delivery/api/router"
	"library/internal/delivery/api/router/handler"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	mockService "library/internal/mocks/service"
	mockUsecase "library/internal/mocks/usecase"
	"library/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

type apiFixture struct {
	echo      *echo.Echo
	tokens    *mockService.MockTokenService
	userUC    *mockUsecase.MockUserUsecase
	catalogUC *mockUsecase.MockCatalogUsecase
	loanUC    *mockUsecase.MockLoanUsecase
	reportUC  *mockUsecase.MockReportUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		tokens:    mockService.NewMockTokenService(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		catalogUC: mockUsecase.NewMockCatalogUsecase(t),
		loanUC:    mockUsecase.NewMockLoanUsecase(t),
		reportUC:  mockUsecase.NewMockReportUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				UserUC:   f.userUC,
				ReportUC: f.reportUC,
				Logger:   logger,
			}),
			BookHandler: handler.NewBookHandler(handler.BookHandlerParams{
				CatalogUC: f.catalogUC,
				LoanUC:    f.loanUC,
				Logger:    logger,
			}),
			LoanHandler: handler.NewLoanHandler(handler.LoanHandlerParams{
				LoanUC: f.loanUC,
				Logger: logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
				TokenService: f.tokens,
			}),
		},
	})

	return f
}

// login makes token validate as the given user and role and returns the bearer token.
func (f *apiFixture) login(userID uuid.UUID, role entity.Role) string {
	token := "token-" + userID.String()
	f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{
		Role:             role.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil).Maybe()

	return token
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var env struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env.Data
}

func openLoan(t *testing.T, userID uuid.UUID, book *entity.Book) *entity.Loan {
	t.Helper()

	loan, err := entity.NewLoan(userID, book.ID, testToday, 7)
	require.NoError(t, err)
	loan.ID = uuid.New()
	loan.Book = book

	return loan
}

func sampleBook() *entity.Book {
	return &entity.Book{
		ID:        uuid.New(),
		Title:     "Rayuela",
		Author:    "Julio Cortázar",
		Genre:     entity.GenreFiction,
		Available: true,
	}
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "ok", env.Data["status"])
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDIsPropagated(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec).Meta.RequestID)
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(f *apiFixture)
		wantCode string
	}{
		{
			name:     "missing header",
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "not a bearer token",
			header:   "Token abc",
			wantCode: "INVALID_TOKEN_FORMAT",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "subject is not a user id",
			header: "Bearer odd",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("odd").Return(&service.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
				}, nil)
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/loans", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			f.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestRegister(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	input := &usecase.RegisterInput{Username: "ana", NationalID: "11111111-1", FirstName: "Ana"}
	f.userUC.EXPECT().Register(mock.Anything, input).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:        userID,
			Username:  "ana",
			FirstName: "Ana",
			Profile:   &entity.UserProfile{UserID: userID, NationalID: "11111111-1", Role: entity.RoleReader},
		},
		AccessToken: "signed",
	}, nil)

	rec := f.do(http.MethodPost, "/auth/register", `{"username":"ana","national_id":"11111111-1","first_name":"Ana"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, "signed", env.Data["access_token"])
	assert.Equal(t, "Bearer", env.Data["token_type"])
	user := env.Data["user"].(map[string]any)
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "reader", user["role"])
	assert.Equal(t, "11111111-1", user["national_id"])
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/auth/register", `{"username":"ana"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = f.do(http.MethodPost, "/auth/register", `{"username":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))

	f.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)
	rec = f.do(http.MethodPost, "/auth/register", `{"username":"ana","national_id":"1"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", errorCode(t, rec))
}

func TestGrantLoan(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	token := f.login(userID, entity.RoleReader)
	book := sampleBook()
	book.Available = false
	loan := openLoan(t, userID, book)

	f.loanUC.EXPECT().
		GrantLoan(mock.Anything, userID, &usecase.GrantLoanInput{BookID: book.ID, Days: 7}).
		Return(loan, nil)

	rec := f.do(http.MethodPost, "/api/v1/loans", `{"book_id":"`+book.ID.String()+`","days":7}`, token)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, loan.ID.String(), env.Data["id"])
	assert.Equal(t, "2026-03-10", env.Data["loan_date"])
	assert.Equal(t, "2026-03-17", env.Data["due_date"])
	assert.Nil(t, env.Data["return_date"])
	assert.Equal(t, "0.00", env.Data["fine"])
	assert.Equal(t, "OPEN", env.Data["status"])
	assert.Equal(t, false, env.Data["book"].(map[string]any)["available"])
}

func TestGrantLoan_Errors(t *testing.T) {
	bookID := uuid.New()

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing book id",
			body:       `{"days":3}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "negative days",
			body:       `{"book_id":"` + bookID.String() + `","days":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "book unavailable",
			body:       `{"book_id":"` + bookID.String() + `"}`,
			err:        domainerrors.ErrBookUnavailable,
			wantStatus: http.StatusConflict,
			wantCode:   "BOOK_UNAVAILABLE",
		},
		{
			name:       "already holds book",
			body:       `{"book_id":"` + bookID.String() + `"}`,
			err:        errors.Wrap(domainerrors.ErrAlreadyHoldsBook, "failed to grant loan"),
			wantStatus: http.StatusConflict,
			wantCode:   "ALREADY_HOLDS_BOOK",
		},
		{
			name:       "days out of range",
			body:       `{"book_id":"` + bookID.String() + `","days":90}`,
			err:        domainerrors.ErrInvalidLoanDays.WithDetails("days must be between 1 and 30"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_LOAN_DAYS",
		},
		{
			name:       "book not found",
			body:       `{"book_id":"` + bookID.String() + `"}`,
			err:        domainerrors.ErrBookNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOK_NOT_FOUND",
		},
		{
			name:       "unexpected failure",
			body:       `{"book_id":"` + bookID.String() + `"}`,
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			userID := uuid.New()
			token := f.login(userID, entity.RoleReader)
			if tt.err != nil {
				f.loanUC.EXPECT().GrantLoan(mock.Anything, userID, mock.Anything).Return(nil, tt.err)
			}

			rec := f.do(http.MethodPost, "/api/v1/loans", tt.body, token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestReturnLoan(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	token := f.login(userID, entity.RoleReader)
	loan := openLoan(t, userID, sampleBook())
	require.NoError(t, loan.Close(testToday.AddDate(0, 0, 10)))

	f.loanUC.EXPECT().ReturnLoan(mock.Anything, userID, loan.ID).Return(loan, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/loans/"+loan.ID.String()+"/return", "", token)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, "2026-03-20", env.Data["return_date"])
	assert.Equal(t, "3000.00", env.Data["fine"])
	assert.Equal(t, "RETURNED", env.Data["status"])

	f.loanUC.EXPECT().ReturnLoan(mock.Anything, userID, loan.ID).Return(nil, domainerrors.ErrLoanAlreadyReturned).Once()
	rec = f.do(http.MethodPost, "/api/v1/loans/"+loan.ID.String()+"/return", "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LOAN_ALREADY_RETURNED", errorCode(t, rec))

	rec = f.do(http.MethodPost, "/api/v1/loans/42/return", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestReturnLoanByQR(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	token := f.login(userID, entity.RoleReader)
	loan := openLoan(t, userID, sampleBook())
	require.NoError(t, loan.Close(testToday.AddDate(0, 0, 2)))

	f.loanUC.EXPECT().ReturnLoanByQR(mock.Anything, userID, "scanned").Return(loan, nil)

	rec := f.do(http.MethodPost, "/api/v1/loans/return/qr", `{"qr_data":"scanned"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "0.00", decode(t, rec).Data["fine"])

	rec = f.do(http.MethodPost, "/api/v1/loans/return/qr", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestLoanReceiptQR(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	loanID := uuid.New()
	token := f.login(userID, entity.RoleReader)
	png := []byte{0x89, 'P', 'N', 'G'}

	f.loanUC.EXPECT().LoanReceiptQR(mock.Anything, userID, loanID).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/v1/loans/"+loanID.String()+"/qr", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestListMyOpenLoans(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	token := f.login(userID, entity.RoleReader)
	loan := openLoan(t, userID, sampleBook())

	f.loanUC.EXPECT().ListMyOpenLoans(mock.Anything, userID).Return([]*usecase.LoanView{
		usecase.NewLoanView(loan, testToday.AddDate(0, 0, 9)),
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/loans", "", token)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loans := decodeList(t, rec)
	require.Len(t, loans, 1)
	assert.Equal(t, float64(-2), loans[0]["days_remaining"])
	assert.Equal(t, true, loans[0]["overdue"])
	assert.Equal(t, "Rayuela", loans[0]["book"].(map[string]any)["title"])
}

func TestBooks_ReadRoutes(t *testing.T) {
	f := newAPIFixture(t)
	token := f.login(uuid.New(), entity.RoleReader)
	book := sampleBook()

	f.catalogUC.EXPECT().ListBooks(mock.Anything, "cortázar").Return([]*entity.Book{book}, nil)
	rec := f.do(http.MethodGet, "/api/v1/books?q=cort%C3%A1zar", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	books := decodeList(t, rec)
	require.Len(t, books, 1)
	assert.Equal(t, "fiction", books[0]["genre"])

	f.loanUC.EXPECT().ListLoanableBooks(mock.Anything, "").Return([]*entity.Book{}, nil)
	rec = f.do(http.MethodGet, "/api/v1/books/loanable", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decodeList(t, rec))

	f.catalogUC.EXPECT().GetBook(mock.Anything, book.ID).Return(book, nil)
	rec = f.do(http.MethodGet, "/api/v1/books/"+book.ID.String(), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rayuela", decode(t, rec).Data["title"])

	missing := uuid.New()
	f.catalogUC.EXPECT().GetBook(mock.Anything, missing).Return(nil, domainerrors.ErrBookNotFound)
	rec = f.do(http.MethodGet, "/api/v1/books/"+missing.String(), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", errorCode(t, rec))
}

func TestBooks_ManagementRequiresStaff(t *testing.T) {
	f := newAPIFixture(t)
	readerToken := f.login(uuid.New(), entity.RoleReader)
	bookID := uuid.New()

	for _, req := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/v1/books", `{"title":"Aura","author":"Carlos Fuentes"}`},
		{http.MethodPut, "/api/v1/books/" + bookID.String(), `{"title":"Aura","author":"Carlos Fuentes"}`},
		{http.MethodDelete, "/api/v1/books/" + bookID.String(), ""},
		{http.MethodGet, "/api/v1/panel", ""},
	} {
		rec := f.do(req.method, req.path, req.body, readerToken)
		assert.Equal(t, http.StatusForbidden, rec.Code, req.path)
		assert.Equal(t, "PERMISSION_DENIED", errorCode(t, rec))
	}
}

func TestBooks_Management(t *testing.T) {
	f := newAPIFixture(t)
	librarianID := uuid.New()
	token := f.login(librarianID, entity.RoleLibrarian)
	book := sampleBook()

	input := &usecase.BookInput{Title: "Rayuela", Author: "Julio Cortázar", Genre: "Fiction", Available: true}
	f.catalogUC.EXPECT().AddBook(mock.Anything, librarianID, input).Return(book, nil)
	rec := f.do(http.MethodPost, "/api/v1/books", `{"title":"Rayuela","author":"Julio Cortázar","genre":"Fiction","available":true}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, book.ID.String(), decode(t, rec).Data["id"])

	rec = f.do(http.MethodPost, "/api/v1/books", `{"title":"Rayuela","author":"Julio Cortázar","genre":"cookbook"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	f.catalogUC.EXPECT().
		EditBook(mock.Anything, librarianID, book.ID, &usecase.BookInput{Title: "Rayuela", Author: "J. Cortázar"}).
		Return(book, nil)
	rec = f.do(http.MethodPut, "/api/v1/books/"+book.ID.String(), `{"title":"Rayuela","author":"J. Cortázar"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f.catalogUC.EXPECT().DeleteBook(mock.Anything, librarianID, book.ID).Return(domainerrors.ErrBookHasActiveLoans)
	rec = f.do(http.MethodDelete, "/api/v1/books/"+book.ID.String(), "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "BOOK_HAS_ACTIVE_LOANS", errorCode(t, rec))
}

func TestDashboardAndPanel(t *testing.T) {
	f := newAPIFixture(t)
	librarianID := uuid.New()
	token := f.login(librarianID, entity.RoleLibrarian)
	loan := openLoan(t, librarianID, sampleBook())

	f.reportUC.EXPECT().Dashboard(mock.Anything, librarianID).Return(&usecase.Dashboard{
		TotalBooks:     3,
		AvailableBooks: 2,
		OpenLoans:      1,
		MyLoans:        []*usecase.LoanView{usecase.NewLoanView(loan, testToday)},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/dashboard", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, float64(3), env.Data["total_books"])
	myLoans := env.Data["my_loans"].([]any)
	require.Len(t, myLoans, 1)
	assert.Equal(t, float64(7), myLoans[0].(map[string]any)["days_remaining"])

	f.reportUC.EXPECT().LibrarianPanel(mock.Anything, librarianID).Return(&usecase.LibrarianPanel{
		TotalBooks:   3,
		BooksByGenre: []repository.GenreCount{{Genre: entity.GenreFiction, Total: 3}},
		OpenLoans:    1,
		OverdueLoans: 0,
	}, nil)

	rec = f.do(http.MethodGet, "/api/v1/panel", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env = decode(t, rec)
	byGenre := env.Data["books_by_genre"].([]any)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "fiction", byGenre[0].(map[string]any)["genre"])
}

func TestProfileAndRoles(t *testing.T) {
	f := newAPIFixture(t)
	adminID := uuid.New()
	adminToken := f.login(adminID, entity.RoleAdministrator)
	readerToken := f.login(uuid.New(), entity.RoleReader)
	targetID := uuid.New()

	f.userUC.EXPECT().GetProfile(mock.Anything, adminID).Return(&entity.User{
		ID:       adminID,
		Username: "root",
		Profile:  &entity.UserProfile{UserID: adminID, NationalID: "1", Role: entity.RoleAdministrator},
		Email:    "root@example.com",
	}, nil)
	rec := f.do(http.MethodGet, "/api/v1/me", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "administrator", decode(t, rec).Data["role"])

	f.userUC.EXPECT().SetRole(mock.Anything, adminID, targetID, "librarian").Return(nil)
	rec = f.do(http.MethodPut, "/api/v1/users/"+targetID.String()+"/role", `{"role":"librarian"}`, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f.userUC.EXPECT().SetRole(mock.Anything, adminID, targetID, "janitor").
		Return(domainerrors.ErrValidationFailed.WithDetails("unknown role"))
	rec = f.do(http.MethodPut, "/api/v1/users/"+targetID.String()+"/role", `{"role":"janitor"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "unknown role", env.Error.Details)

	rec = f.do(http.MethodPut, "/api/v1/users/"+targetID.String()+"/role", `{"role":"librarian"}`, readerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFineIsRenderedWithTwoDecimals(t *testing.T) {
	loan := openLoan(t, uuid.New(), sampleBook())
	loan.Fine = decimal.RequireFromString("12000")

	f := newAPIFixture(t)
	token := f.login(loan.UserID, entity.RoleReader)
	f.loanUC.EXPECT().ReturnLoan(mock.Anything, loan.UserID, loan.ID).Return(loan, nil)

	rec := f.do(http.MethodPost, "/api/v1/loans/"+loan.ID.String()+"/return", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12000.00", decode(t, rec).Data["fine"])
}
