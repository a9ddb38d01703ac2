package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserView struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type UserReadStore interface {
	// FindByEmail returns the user view together with the stored password
	// hash. The hash never leaves the auth command.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}
