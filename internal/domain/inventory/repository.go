package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for inventory items
type Repository interface {
	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindAll returns all items ordered by name
	FindAll(ctx context.Context) ([]Item, error)
	// FindByName finds an item by its exact name
	FindByName(ctx context.Context, name string) (*Item, error)
	// Save persists a new item
	Save(ctx context.Context, i *Item) error
	// Update persists changes to an existing item
	Update(ctx context.Context, i *Item) error
	// Delete removes an item
	Delete(ctx context.Context, id uuid.UUID) error
}
