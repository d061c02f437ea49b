package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	testCases := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "not_found", input: gorm.ErrRecordNotFound, expected: ErrNotFound},
		{name: "wrapped_not_found", input: fmt.Errorf("query: %w", gorm.ErrRecordNotFound), expected: ErrNotFound},
		{name: "unique_violation", input: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_bills_number"}, expected: ErrDuplicate},
		{name: "other_pg_error", input: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, expected: nil},
		{name: "general_error", input: assert.AnError, expected: assert.AnError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError(tc.input)
			switch {
			case tc.input == nil:
				assert.NoError(t, got)
			case tc.expected == nil:
				assert.Equal(t, tc.input, got)
			default:
				assert.ErrorIs(t, got, tc.expected)
			}
		})
	}
}

func TestTranslateErrorKeepsConstraintName(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_bills_number"})
	assert.EqualError(t, err, "duplicate record: idx_bills_number")
}
