package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookModel mirrors the 'books' table. Rows are soft-deleted so loan history keeps its book.
type BookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null;index"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Genre     string    `gorm:"type:varchar(20);not null;index"`
	Available bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *BookModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
