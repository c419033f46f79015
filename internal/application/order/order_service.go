package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemInput is one order line in a create request.
type ItemInput struct {
	Name     string          `json:"name" binding:"required"`
	Quantity int64           `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// CreateOrderInput contains input for creating an order.
type CreateOrderInput struct {
	Items        []ItemInput      `json:"items" binding:"required,min=1,dive"`
	TotalPrice   *decimal.Decimal `json:"totalPrice"`
	CustomerName string           `json:"customerName"`
	ChefID       uuid.UUID        `json:"chefId" binding:"required"`
}

// OrderDTO is the transport representation of an order.
type OrderDTO struct {
	ID               uuid.UUID       `json:"id"`
	Items            []order.Item    `json:"items"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	CustomerName     string          `json:"customerName"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	AssignedByID     uuid.UUID       `json:"assignedById"`
	AssignedToCookID uuid.UUID       `json:"assignedToCookId"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func toOrderDTO(o *order.Order) *OrderDTO {
	// Unreadable item payloads degrade to an empty list; the order itself
	// is still returned.
	items, _ := o.ParseItems()
	return &OrderDTO{
		ID:               o.ID,
		Items:            items,
		TotalPrice:       o.TotalPrice,
		CustomerName:     o.CustomerName,
		Status:           o.Status.String(),
		PaymentStatus:    o.PaymentStatus.String(),
		AssignedByID:     o.AssignedByID,
		AssignedToCookID: o.AssignedToCookID,
		CreatedAt:        o.CreatedAt,
	}
}

// Service handles order lifecycle operations.
type Service struct {
	orders order.Repository
	users  identity.Repository
	logger *zap.Logger
}

// NewService creates a new order service
func NewService(orders order.Repository, users identity.Repository, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		users:  users,
		logger: logger,
	}
}

// Create places a new order assigned to a chef.
func (s *Service) Create(ctx context.Context, input CreateOrderInput, staffID uuid.UUID) (*OrderDTO, error) {
	chef, err := s.users.FindByID(ctx, input.ChefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("CHEF_NOT_FOUND", "Assigned chef does not exist")
		}
		return nil, err
	}
	if chef.Role != identity.RoleChef {
		return nil, shared.NewDomainError("NOT_A_CHEF", "Orders can only be assigned to chefs")
	}

	items := make([]order.Item, len(input.Items))
	for i, in := range input.Items {
		items[i] = order.Item{Name: in.Name, Quantity: in.Quantity, Price: in.Price}
	}

	o, err := order.NewOrder(items, input.TotalPrice, input.CustomerName, staffID, chef.ID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", o.ID.String()),
		zap.String("chef_id", chef.ID.String()),
		zap.String("total", o.TotalPrice.String()),
	)

	return toOrderDTO(o), nil
}

// Get returns a single order.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderDTO(o), nil
}

// List returns orders visible to the caller: chefs see their assigned
// orders, everyone else sees all of them.
func (s *Service) List(ctx context.Context, caller identity.Caller) ([]OrderDTO, error) {
	var (
		orders []order.Order
		err    error
	)
	if caller.Role == identity.RoleChef {
		orders, err = s.orders.FindByChef(ctx, caller.ID)
	} else {
		orders, err = s.orders.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = *toOrderDTO(&orders[i])
	}
	return dtos, nil
}

// UpdateStatus transitions the kitchen status of an order. Chefs may only
// touch orders assigned to them.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, caller identity.Caller) (*OrderDTO, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller.Role == identity.RoleChef && o.AssignedToCookID != caller.ID {
		return nil, shared.ErrForbidden
	}

	if err := o.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", o.ID.String()),
		zap.String("status", status.String()),
	)
	return toOrderDTO(o), nil
}

// UpdatePaymentStatus marks an order paid or unpaid.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) (*OrderDTO, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdatePaymentStatus(status); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	return toOrderDTO(o), nil
}

func (s *Service) find(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}
	return o, nil
}
