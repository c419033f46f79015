package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tastehunt/backend/internal/domain/shared"
)

// Status represents the kitchen status of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusPreparing || target == StatusCompleted
	case StatusPreparing:
		return target == StatusCompleted
	case StatusCompleted:
		return false
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// IsValid checks if the payment status is a valid value
func (p PaymentStatus) IsValid() bool {
	return p == PaymentUnpaid || p == PaymentPaid
}

// String returns the string representation of PaymentStatus
func (p PaymentStatus) String() string {
	return string(p)
}

// DefaultCustomerName is the sentinel used when no customer name is supplied.
const DefaultCustomerName = "Guest"

// Item is a single ordered line: dish name, quantity and unit price.
type Item struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal returns quantity x unit price for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is a purchase order. The reporting core only ever reads orders as an
// immutable snapshot; the creation timestamp is set once on insert and never
// mutated afterwards.
type Order struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Items            json.RawMessage `gorm:"column:items;type:jsonb"`
	TotalPrice       decimal.Decimal `gorm:"column:total_price;type:decimal(10,2);not null"`
	CustomerName     string          `gorm:"column:customer_name;size:255;not null"`
	Status           Status          `gorm:"column:status;size:20;not null;default:pending"`
	PaymentStatus    PaymentStatus   `gorm:"column:payment_status;size:20;not null;default:unpaid"`
	AssignedByID     uuid.UUID       `gorm:"column:assigned_by_id;type:uuid;not null"`
	AssignedToCookID uuid.UUID       `gorm:"column:assigned_to_cook_id;type:uuid;not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending, unpaid order. The total price is derived
// from the line items when not supplied. An empty customer name falls back
// to the Guest sentinel.
func NewOrder(items []Item, totalPrice *decimal.Decimal, customerName string, staffID, chefID uuid.UUID) (*Order, error) {
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Assigning staff ID cannot be empty")
	}
	if chefID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CHEF", "Assigned chef ID cannot be empty")
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Name == "" {
			return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ITEM_QUANTITY", "Item quantity must be positive")
		}
		if item.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_ITEM_PRICE", "Item price cannot be negative")
		}
		total = total.Add(item.Subtotal())
	}
	if totalPrice != nil {
		if totalPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_TOTAL", "Total price cannot be negative")
		}
		total = *totalPrice
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, shared.ErrMalformedItems
	}

	if customerName == "" {
		customerName = DefaultCustomerName
	}

	now := time.Now()
	return &Order{
		ID:               uuid.New(),
		Items:            raw,
		TotalPrice:       total,
		CustomerName:     customerName,
		Status:           StatusPending,
		PaymentStatus:    PaymentUnpaid,
		AssignedByID:     staffID,
		AssignedToCookID: chefID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// ParseItems decodes the stored item collection. The column may hold either
// the item array itself or a doubly encoded JSON string wrapping it (legacy
// rows); both forms are accepted. Any other shape yields ErrMalformedItems.
func (o *Order) ParseItems() ([]Item, error) {
	if len(o.Items) == 0 {
		return nil, nil
	}

	var items []Item
	if err := json.Unmarshal(o.Items, &items); err == nil {
		return items, nil
	}

	var wrapped string
	if err := json.Unmarshal(o.Items, &wrapped); err == nil {
		if err := json.Unmarshal([]byte(wrapped), &items); err == nil {
			return items, nil
		}
	}

	return nil, shared.ErrMalformedItems
}

// UpdateStatus transitions the kitchen status.
func (o *Order) UpdateStatus(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// UpdatePaymentStatus transitions the payment state.
func (o *Order) UpdatePaymentStatus(target PaymentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS", "Unknown payment status")
	}
	o.PaymentStatus = target
	o.UpdatedAt = time.Now()
	return nil
}
