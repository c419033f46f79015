package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/infrastructure/printing"
)

// MockSnapshotSource is a mock implementation of order.SnapshotSource
type MockSnapshotSource struct {
	mock.Mock
}

func (m *MockSnapshotSource) FetchRange(ctx context.Context, start, end time.Time, chefID *uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, start, end, chefID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockSnapshotSource) FetchAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

// MockOrderRepository is a mock implementation of order.Repository
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

// FakeRenderer returns a canned PDF payload and records the last request.
type FakeRenderer struct {
	LastRequest *printing.RenderRequest
	Err         error
}

func (f *FakeRenderer) Render(_ context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	f.LastRequest = req
	if f.Err != nil {
		return nil, f.Err
	}
	return &printing.RenderResult{PDFData: []byte("%PDF-1.4 fake")}, nil
}

func (f *FakeRenderer) Close() error { return nil }
