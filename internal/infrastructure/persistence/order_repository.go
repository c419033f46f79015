package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormOrderRepository is the GORM implementation of order.Repository and
// order.SnapshotSource.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindAll returns every order, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindByChef returns orders assigned to the given chef
func (r *GormOrderRepository) FindByChef(ctx context.Context, chefID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Where("assigned_to_cook_id = ?", chefID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindByStaff returns orders created by the given staff member
func (r *GormOrderRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Where("assigned_by_id = ?", staffID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Save persists a new order
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// Update persists changes to an existing order
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// FetchRange returns all orders created in [start, end], oldest first,
// optionally restricted to a single assigned chef.
func (r *GormOrderRepository) FetchRange(ctx context.Context, start, end time.Time, chefID *uuid.UUID) ([]order.Order, error) {
	query := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", start, end)
	if chefID != nil {
		query = query.Where("assigned_to_cook_id = ?", *chefID)
	}

	var orders []order.Order
	err := query.Order("created_at ASC").Find(&orders).Error
	return orders, err
}

// FetchAll returns the full order history, oldest first
func (r *GormOrderRepository) FetchAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// Ensure interface compliance
var (
	_ order.Repository     = (*GormOrderRepository)(nil)
	_ order.SnapshotSource = (*GormOrderRepository)(nil)
)
