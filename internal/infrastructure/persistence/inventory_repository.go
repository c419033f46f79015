package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryRepository is the GORM implementation of inventory.Repository
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an item by ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll returns all items ordered by name
func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]inventory.Item, error) {
	var items []inventory.Item
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// FindByName finds an item by its exact name
func (r *GormInventoryRepository) FindByName(ctx context.Context, name string) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save persists a new item
func (r *GormInventoryRepository) Save(ctx context.Context, i *inventory.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

// Update persists changes to an existing item
func (r *GormInventoryRepository) Update(ctx context.Context, i *inventory.Item) error {
	return r.db.WithContext(ctx).Save(i).Error
}

// Delete removes an item
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&inventory.Item{}).Error
}

// Ensure interface compliance
var _ inventory.Repository = (*GormInventoryRepository)(nil)
