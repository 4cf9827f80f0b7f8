// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"library/internal/delivery/api/middleware"
	"library/internal/delivery/api/router/handler"
	"library/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BookHandler    *handler.BookHandler
	LoanHandler    *handler.LoanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	bookHandler    *handler.BookHandler
	loanHandler    *handler.LoanHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		bookHandler:    params.BookHandler,
		loanHandler:    params.LoanHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.userHandler.GetProfile)
	apiV1.GET("/dashboard", r.userHandler.Dashboard)

	staffOnly := r.authMiddleware.RequireRole(entity.StaffRoles...)

	booksGroup := apiV1.Group("/books")
	{
		booksGroup.GET("", r.bookHandler.ListBooks)
		booksGroup.GET("/loanable", r.bookHandler.ListLoanableBooks)
		booksGroup.GET("/:id", r.bookHandler.GetBook)
		booksGroup.POST("", r.bookHandler.AddBook, staffOnly)
		booksGroup.PUT("/:id", r.bookHandler.EditBook, staffOnly)
		booksGroup.DELETE("/:id", r.bookHandler.DeleteBook, staffOnly)
	}

	loansGroup := apiV1.Group("/loans")
	{
		loansGroup.POST("", r.loanHandler.GrantLoan)
		loansGroup.GET("", r.loanHandler.ListMyOpenLoans)
		loansGroup.POST("/return/qr", r.loanHandler.ReturnLoanByQR)
		loansGroup.POST("/:id/return", r.loanHandler.ReturnLoan)
		loansGroup.GET("/:id/qr", r.loanHandler.LoanReceiptQR)
	}

	// Librarian panel (staff only)
	panelGroup := apiV1.Group("/panel")
	panelGroup.Use(staffOnly)
	{
		panelGroup.GET("", r.userHandler.LibrarianPanel)
	}

	// Role management (administrator only)
	usersGroup := apiV1.Group("/users")
	usersGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdministrator))
	{
		usersGroup.PUT("/:id/role", r.userHandler.SetRole)
	}
}
