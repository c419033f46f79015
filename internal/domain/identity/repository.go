package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for users
type Repository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByRole returns all users holding the given role
	FindByRole(ctx context.Context, role Role) ([]User, error)
	// Save persists a new user
	Save(ctx context.Context, u *User) error
	// Update persists changes to an existing user
	Update(ctx context.Context, u *User) error
	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
