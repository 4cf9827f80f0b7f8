package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConstraint string
		wantOK         bool
	}{
		{
			name:           "postgres unique violation keeps constraint name",
			err:            errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintOpenLoanPerBook}, "insert"),
			wantConstraint: constraintOpenLoanPerBook,
			wantOK:         true,
		},
		{
			name:   "postgres check violation",
			err:    &pgconn.PgError{Code: pgerrcode.CheckViolation},
			wantOK: false,
		},
		{
			name:   "translated duplicate key",
			err:    fmt.Errorf("create: %w", gorm.ErrDuplicatedKey),
			wantOK: true,
		},
		{
			name:   "unrelated error",
			err:    errors.New("connection reset"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint, ok := uniqueViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantConstraint, constraint)
			assert.Equal(t, tt.wantOK, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestConstraintClassifiers(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: books.title")))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}
