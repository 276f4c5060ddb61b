package postgres

import (
	"strings"

	"servicehub/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation matches the translated GORM error, falling back to the
// driver message when the dialector does not translate (SQLSTATE 23505).
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

// isForeignKeyConstraintViolation matches SQLSTATE 23503 or the sqlite equivalent.
func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503")
}
