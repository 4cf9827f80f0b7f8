// Package model holds the GORM persistence structs.
package model

import "github.com/google/uuid"

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserProfileModel{},
		&BookModel{},
		&LoanModel{},
	}
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	newID, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = newID

	return nil
}
