package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/inventory"
	"github.com/tastehunt/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemDTO is the transport representation of a stocked item.
type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    int64     `json:"quantity"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toItemDTO(i *inventory.Item) *ItemDTO {
	return &ItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		Description: i.Description,
		UpdatedAt:   i.UpdatedAt,
	}
}

// CreateItemInput contains input for creating an inventory item.
type CreateItemInput struct {
	Name        string `json:"name" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"gte=0"`
	Unit        string `json:"unit" binding:"required"`
	Description string `json:"description"`
}

// Service handles inventory operations.
type Service struct {
	items  inventory.Repository
	logger *zap.Logger
}

// NewService creates a new inventory service
func NewService(items inventory.Repository, logger *zap.Logger) *Service {
	return &Service{items: items, logger: logger}
}

// Create adds a new stocked item.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	existing, err := s.items.FindByName(ctx, input.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	item, err := inventory.NewItem(input.Name, input.Quantity, input.Unit, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)
	return toItemDTO(item), nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemDTO(item), nil
}

// List returns all stocked items.
func (s *Service) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i := range items {
		dtos[i] = *toItemDTO(&items[i])
	}
	return dtos, nil
}

// Adjust applies a signed quantity delta to an item.
func (s *Service) Adjust(ctx context.Context, id uuid.UUID, delta int64) (*ItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.AdjustQuantity(delta); err != nil {
		return nil, err
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory adjusted",
		zap.String("item_id", item.ID.String()),
		zap.Int64("delta", delta),
		zap.Int64("quantity", item.Quantity),
	)
	return toItemDTO(item), nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *Service) find(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if item == nil {
		return nil, shared.ErrNotFound
	}
	return item, nil
}
