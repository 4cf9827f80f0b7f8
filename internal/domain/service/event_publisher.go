package service

import (
	"context"
	"time"
)

// LoanEvent is published after a loan changes state
type LoanEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	EventID    string     `json:"event_id"`
	Type       string     `json:"type"`
	LoanID     string     `json:"loan_id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Fine       string     `json:"fine"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoanEvent publishes a loan lifecycle event
	PublishLoanEvent(ctx context.Context, event *LoanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
