package user

import (
	"errors"
	"fmt"
)

type User struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"João Silva"`
	Email string `json:"email" example:"joao@example.com"`
}

// UserInput is the client-submitted shape of a user, before validation.
// It never carries an ID; the store assigns one on create.
type UserInput struct {
	Name  string `json:"name" example:"João Silva"`
	Email string `json:"email" example:"joao@example.com"`
}

type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with ID %d not found.", e.ID)
}

// ErrConflict is reserved for uniqueness constraints (e.g. unique emails).
// Nothing triggers it yet.
var ErrConflict = errors.New("conflict")
