package model

import (
	"github.com/google/uuid"
)

// ensureID assigns a time-ordered UUID when the caller left the id empty.
// PostgreSQL also defaults ids to uuid_generate_v7(); generating them here keeps the
// models usable on databases without that function.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
