package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/api/middleware"
	"library/internal/delivery/api/response"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	LoanUC    usecase.LoanUsecase
	Logger    *slog.Logger
}

// BookHandler holds dependencies for catalog handlers
type BookHandler struct {
	catalogUC usecase.CatalogUsecase
	loanUC    usecase.LoanUsecase
	logger    *slog.Logger
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		catalogUC: params.CatalogUC,
		loanUC:    params.LoanUC,
		logger:    params.Logger,
	}
}

// ListBooks handles the catalog listing, optionally filtered by ?q=
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.catalogUC.ListBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books))
}

// ListLoanableBooks handles the list of books that can be borrowed now
func (h *BookHandler) ListLoanableBooks(c echo.Context) error {
	books, err := h.loanUC.ListLoanableBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books))
}

// GetBook handles retrieving a single book
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid book ID")
	}

	book, err := h.catalogUC.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// AddBook handles adding a book to the catalog
func (h *BookHandler) AddBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.BookInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	book, err := h.catalogUC.AddBook(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book))
}

// EditBook handles replacing the fields of a book
func (h *BookHandler) EditBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid book ID")
	}

	var req usecase.BookInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	book, err := h.catalogUC.EditBook(c.Request().Context(), userID, bookID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// DeleteBook handles removing a book from the catalog
func (h *BookHandler) DeleteBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid book ID")
	}

	if err := h.catalogUC.DeleteBook(c.Request().Context(), userID, bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}
