package handler

import (
	"time"

	"library/internal/domain/entity"
	"library/internal/domain/repository"
	"library/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = time.DateOnly

// BookResponse is the JSON form of a book.
type BookResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoanResponse is the JSON form of a loan. Dates are calendar dates.
type LoanResponse struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	BookID     uuid.UUID     `json:"book_id"`
	Book       *BookResponse `json:"book,omitempty"`
	LoanDate   string        `json:"loan_date"`
	DueDate    string        `json:"due_date"`
	ReturnDate *string       `json:"return_date"`
	Fine       string        `json:"fine"`
	Status     string        `json:"status"`
}

// OpenLoanResponse adds the countdown shown to the borrower.
type OpenLoanResponse struct {
	LoanResponse

	DaysRemaining int  `json:"days_remaining"`
	Overdue       bool `json:"overdue"`
}

// UserResponse is the JSON form of a member and its profile.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
}

// GenreCountResponse is one row of the per-genre breakdown.
type GenreCountResponse struct {
	Genre string `json:"genre"`
	Total int64  `json:"total"`
}

// DashboardResponse is the JSON form of the member dashboard.
type DashboardResponse struct {
	TotalBooks     int64               `json:"total_books"`
	AvailableBooks int64               `json:"available_books"`
	OpenLoans      int64               `json:"open_loans"`
	MyLoans        []*OpenLoanResponse `json:"my_loans"`
}

// PanelResponse is the JSON form of the librarian panel.
type PanelResponse struct {
	TotalBooks   int64                 `json:"total_books"`
	BooksByGenre []*GenreCountResponse `json:"books_by_genre"`
	OpenLoans    int64                 `json:"open_loans"`
	OverdueLoans int64                 `json:"overdue_loans"`
}

func toBookResponse(book *entity.Book) *BookResponse {
	if book == nil {
		return nil
	}

	return &BookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Genre:     book.Genre.String(),
		Available: book.Available,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

func toBookResponses(books []*entity.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, toBookResponse(book))
	}

	return out
}

func toLoanResponse(loan *entity.Loan) *LoanResponse {
	resp := &LoanResponse{
		ID:       loan.ID,
		UserID:   loan.UserID,
		BookID:   loan.BookID,
		Book:     toBookResponse(loan.Book),
		LoanDate: loan.LoanDate.Format(dateLayout),
		DueDate:  loan.DueDate.Format(dateLayout),
		Fine:     loan.Fine.StringFixed(entity.FineScale),
		Status:   string(loan.Status()),
	}
	if loan.ReturnDate != nil {
		returned := loan.ReturnDate.Format(dateLayout)
		resp.ReturnDate = &returned
	}

	return resp
}

func toOpenLoanResponses(views []*usecase.LoanView) []*OpenLoanResponse {
	out := make([]*OpenLoanResponse, 0, len(views))
	for _, view := range views {
		out = append(out, &OpenLoanResponse{
			LoanResponse:  *toLoanResponse(view.Loan),
			DaysRemaining: view.DaysRemaining,
			Overdue:       view.Overdue,
		})
	}

	return out
}

func toUserResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
	}
	if role, ok := user.Role(); ok {
		resp.Role = role.String()
	}
	if user.Profile != nil {
		resp.NationalID = user.Profile.NationalID
		resp.Address = user.Profile.Address
		resp.Phone = user.Profile.Phone
	}

	return resp
}

func toGenreCountResponses(counts []repository.GenreCount) []*GenreCountResponse {
	out := make([]*GenreCountResponse, 0, len(counts))
	for _, count := range counts {
		out = append(out, &GenreCountResponse{Genre: count.Genre.String(), Total: count.Total})
	}

	return out
}
