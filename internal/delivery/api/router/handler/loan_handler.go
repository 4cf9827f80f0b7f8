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

// LoanHandlerParams holds dependencies for LoanHandler, injected by Fx.
type LoanHandlerParams struct {
	fx.In

	LoanUC usecase.LoanUsecase
	Logger *slog.Logger
}

// LoanHandler holds dependencies for loan handlers
type LoanHandler struct {
	loanUC usecase.LoanUsecase
	logger *slog.Logger
}

// NewLoanHandler is the constructor for LoanHandler
func NewLoanHandler(params LoanHandlerParams) *LoanHandler {
	return &LoanHandler{
		loanUC: params.LoanUC,
		logger: params.Logger,
	}
}

// GrantLoan handles borrowing a book
func (h *LoanHandler) GrantLoan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.GrantLoanInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	loan, err := h.loanUC.GrantLoan(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLoanResponse(loan))
}

// ListMyOpenLoans handles listing the caller's open loans
func (h *LoanHandler) ListMyOpenLoans(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.loanUC.ListMyOpenLoans(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOpenLoanResponses(views))
}

// ReturnLoan handles returning a borrowed book
func (h *LoanHandler) ReturnLoan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	loan, err := h.loanUC.ReturnLoan(c.Request().Context(), userID, loanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan))
}

// ReturnLoanByQR handles returning a book from its scanned receipt
func (h *LoanHandler) ReturnLoanByQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ReturnLoanByQRInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	loan, err := h.loanUC.ReturnLoanByQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan))
}

// LoanReceiptQR handles rendering the receipt QR code as a PNG
func (h *LoanHandler) LoanReceiptQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	png, err := h.loanUC.LoanReceiptQR(c.Request().Context(), userID, loanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
