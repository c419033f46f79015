package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/shared"
)

// Item is a stocked ingredient tracked by the kitchen.
type Item struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;size:200;not null;uniqueIndex"`
	Quantity    int64     `gorm:"column:quantity;not null;default:0"`
	Unit        string    `gorm:"column:unit;size:50;not null"`
	Description string    `gorm:"column:description;size:500"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// NewItem creates a new inventory item
func NewItem(name string, quantity int64, unit, description string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}

	now := time.Now()
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Quantity:    quantity,
		Unit:        strings.TrimSpace(unit),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AdjustQuantity applies a signed delta to the stock level. The level can
// never go below zero.
func (i *Item) AdjustQuantity(delta int64) error {
	next := i.Quantity + delta
	if next < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Adjustment would drive quantity below zero")
	}
	i.Quantity = next
	i.UpdatedAt = time.Now()
	return nil
}
