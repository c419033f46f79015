package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for orders
type Repository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindAll returns every order, newest first
	FindAll(ctx context.Context) ([]Order, error)
	// FindByChef returns orders assigned to the given chef
	FindByChef(ctx context.Context, chefID uuid.UUID) ([]Order, error)
	// FindByStaff returns orders created by the given staff member
	FindByStaff(ctx context.Context, staffID uuid.UUID) ([]Order, error)
	// Save persists a new order
	Save(ctx context.Context, o *Order) error
	// Update persists changes to an existing order
	Update(ctx context.Context, o *Order) error
}

// SnapshotSource provides the read-only order snapshots the reporting core
// aggregates over. Each report request issues exactly one fetch; the returned
// slice is never mutated or cached across calls.
type SnapshotSource interface {
	// FetchRange returns all orders created in [start, end], optionally
	// restricted to a single assigned chef.
	FetchRange(ctx context.Context, start, end time.Time, chefID *uuid.UUID) ([]Order, error)
	// FetchAll returns the full order history, for windowless summaries.
	FetchAll(ctx context.Context) ([]Order, error)
}
