package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanModel mirrors the 'loans' table.
// The partial unique index on book_id allows at most one open loan (return_date IS NULL) per book.
type LoanModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BookID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_loans_open_book,where:return_date IS NULL"`
	LoanDate   time.Time       `gorm:"type:date;not null"`
	DueDate    time.Time       `gorm:"type:date;not null;index"`
	ReturnDate *time.Time      `gorm:"type:date"`
	Fine       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_loans_fine_non_negative,fine >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *LoanModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
