package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByChef(ctx context.Context, chefID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, chefID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.Role) ([]identity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func chefUser() *identity.User {
	return &identity.User{ID: uuid.New(), Email: "chef@tastehunt.local", Role: identity.RoleChef}
}

func createInput(chefID uuid.UUID) CreateOrderInput {
	return CreateOrderInput{
		Items: []ItemInput{
			{Name: "Soup", Quantity: 2, Price: decimal.NewFromFloat(5.00)},
		},
		CustomerName: "Alice",
		ChefID:       chefID,
	}
}

func TestCreateOrder(t *testing.T) {
	chef := chefUser()
	orders := new(MockOrderRepository)
	users := new(MockUserRepository)

	users.On("FindByID", mock.Anything, chef.ID).Return(chef, nil).Once()
	orders.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	svc := NewService(orders, users, zap.NewNop())
	dto, err := svc.Create(context.Background(), createInput(chef.ID), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, "unpaid", dto.PaymentStatus)
	assert.Equal(t, chef.ID, dto.AssignedToCookID)
	assert.True(t, dto.TotalPrice.Equal(decimal.NewFromFloat(10.00)))

	orders.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestCreateOrderRejectsNonChefAssignee(t *testing.T) {
	cashier := &identity.User{ID: uuid.New(), Role: identity.RoleCashier}
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, cashier.ID).Return(cashier, nil).Once()

	svc := NewService(new(MockOrderRepository), users, zap.NewNop())
	_, err := svc.Create(context.Background(), createInput(cashier.ID), uuid.New())
	assert.Error(t, err)
}

func TestCreateOrderUnknownChef(t *testing.T) {
	chefID := uuid.New()
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, chefID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewService(new(MockOrderRepository), users, zap.NewNop())
	_, err := svc.Create(context.Background(), createInput(chefID), uuid.New())
	assert.Error(t, err)
}

func TestListFiltersForChef(t *testing.T) {
	chef := identity.Caller{ID: uuid.New(), Role: identity.RoleChef}
	orders := new(MockOrderRepository)
	orders.On("FindByChef", mock.Anything, chef.ID).Return([]order.Order{}, nil).Once()

	svc := NewService(orders, new(MockUserRepository), zap.NewNop())
	_, err := svc.List(context.Background(), chef)
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestListAllForCashier(t *testing.T) {
	cashier := identity.Caller{ID: uuid.New(), Role: identity.RoleCashier}
	orders := new(MockOrderRepository)
	orders.On("FindAll", mock.Anything).Return([]order.Order{}, nil).Once()

	svc := NewService(orders, new(MockUserRepository), zap.NewNop())
	_, err := svc.List(context.Background(), cashier)
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestUpdateStatusChefOwnership(t *testing.T) {
	chef := identity.Caller{ID: uuid.New(), Role: identity.RoleChef}

	o, err := order.NewOrder(
		[]order.Item{{Name: "Soup", Quantity: 1, Price: decimal.NewFromInt(5)}},
		nil, "", uuid.New(), uuid.New(), // assigned to a different chef
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, o.ID).Return(o, nil).Once()

	svc := NewService(orders, new(MockUserRepository), zap.NewNop())
	_, err = svc.UpdateStatus(context.Background(), o.ID, order.StatusPreparing, chef)
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestUpdateStatusPersists(t *testing.T) {
	staff := identity.Caller{ID: uuid.New(), Role: identity.RoleAdmin}

	o, err := order.NewOrder(
		[]order.Item{{Name: "Soup", Quantity: 1, Price: decimal.NewFromInt(5)}},
		nil, "", uuid.New(), uuid.New(),
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, o.ID).Return(o, nil).Once()
	orders.On("Update", mock.Anything, o).Return(nil).Once()

	svc := NewService(orders, new(MockUserRepository), zap.NewNop())
	dto, err := svc.UpdateStatus(context.Background(), o.ID, order.StatusPreparing, staff)
	require.NoError(t, err)
	assert.Equal(t, "preparing", dto.Status)
	orders.AssertExpectations(t)
}
