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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// UserHandler holds dependencies for member, role and report handlers
type UserHandler struct {
	userUC   usecase.UserUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:   params.UserUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
}

// Register handles reader registration
func (h *UserHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	out, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &RegisterResponse{
		User:        toUserResponse(out.User),
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
	})
}

// GetProfile handles retrieving the authenticated member
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// SetRole handles role assignment by an administrator
func (h *UserHandler) SetRole(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req usecase.SetRoleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	if err := h.userUC.SetRole(c.Request().Context(), userID, targetID, req.Role); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Role updated successfully"})
}

// Dashboard handles the member landing summary
func (h *UserHandler) Dashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashboard, err := h.reportUC.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DashboardResponse{
		TotalBooks:     dashboard.TotalBooks,
		AvailableBooks: dashboard.AvailableBooks,
		OpenLoans:      dashboard.OpenLoans,
		MyLoans:        toOpenLoanResponses(dashboard.MyLoans),
	})
}

// LibrarianPanel handles the staff statistics page
func (h *UserHandler) LibrarianPanel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	panel, err := h.reportUC.LibrarianPanel(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PanelResponse{
		TotalBooks:   panel.TotalBooks,
		BooksByGenre: toGenreCountResponses(panel.BooksByGenre),
		OpenLoans:    panel.OpenLoans,
		OverdueLoans: panel.OverdueLoans,
	})
}
