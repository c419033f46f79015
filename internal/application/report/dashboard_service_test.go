package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/report"
	"go.uber.org/zap"
)

func newDashboardService(snapshots *MockSnapshotSource, now time.Time) *DashboardService {
	return NewDashboardService(snapshots, report.FixedClock{Instant: now}, zap.NewNop())
}

func TestDashboardStatsSingleFetch(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)
	lower := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	orders := []order.Order{
		orderAt(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), 20, []order.Item{{Name: "Soup", Quantity: 2}}),
		orderAt(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), 30, []order.Item{{Name: "Tea", Quantity: 1}}),
	}

	snapshots := new(MockSnapshotSource)
	snapshots.On("FetchRange", mock.Anything, lower, now, (*uuid.UUID)(nil)).Return(orders, nil).Once()

	svc := newDashboardService(snapshots, now)
	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	// Today: only the same-day order.
	assert.Equal(t, int64(1), stats.Today.Stats.Customers)
	assert.Equal(t, int64(2), stats.Today.Stats.Products)
	assert.True(t, stats.Today.Stats.Revenue.Equal(decimal.NewFromInt(20)))
	require.Len(t, stats.Today.Points, 5)

	// Year: both orders land in the two calendar-year slots.
	assert.Equal(t, int64(2), stats.Year.Stats.Customers)
	require.Len(t, stats.Year.Points, 2)
	assert.Equal(t, int64(1), stats.Year.Points[0].Customers)
	assert.Equal(t, int64(1), stats.Year.Points[1].Customers)

	snapshots.AssertExpectations(t)
}

func TestQuantityByTimeLabels(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)
	snapshots := new(MockSnapshotSource)
	snapshots.On("FetchRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]order.Order{}, nil).Once()

	svc := newDashboardService(snapshots, now)
	result, err := svc.QuantityByTime(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Day, 5)
	assert.Len(t, result.Week, 7)
	assert.Len(t, result.Month, 4)
	assert.Len(t, result.SixMonth, 6)
	assert.Len(t, result.Year, 2)
	assert.Equal(t, "Mon", result.Week[0].Label)

	snapshots.AssertExpectations(t)
}

func TestTopItemsByTimeUsesWindowLowerBounds(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	orders := []order.Order{
		// Inside today's window.
		orderAt(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), 20, []order.Item{{Name: "Soup", Quantity: 2}}),
		// Last month: visible to month/6months/year but not today or this week.
		orderAt(t, time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC), 20, []order.Item{{Name: "Curry", Quantity: 9}}),
	}

	snapshots := new(MockSnapshotSource)
	snapshots.On("FetchRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(orders, nil).Once()

	svc := newDashboardService(snapshots, now)
	result, err := svc.TopItemsByTime(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Today, 1)
	assert.Equal(t, "Soup", result.Today[0].Label)

	require.Len(t, result.SixMonths, 2)
	assert.Equal(t, "Curry", result.SixMonths[0].Label)
	assert.Equal(t, int64(9), result.SixMonths[0].Value)

	snapshots.AssertExpectations(t)
}

func TestSummaryFoldsCustomerNames(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	a := orderAt(t, now.AddDate(0, -1, 0), 10, nil)
	a.CustomerName = " ALICE "
	b := orderAt(t, now.AddDate(0, -2, 0), 15, nil)
	b.CustomerName = "alice"
	c := orderAt(t, now.AddDate(0, -3, 0), 5, nil)
	c.CustomerName = "Bob"
	d := orderAt(t, now.AddDate(0, -4, 0), 2, nil)
	d.CustomerName = ""

	snapshots := new(MockSnapshotSource)
	snapshots.On("FetchAll", mock.Anything).Return([]order.Order{a, b, c, d}, nil).Once()

	svc := newDashboardService(snapshots, now)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalOrders)
	assert.Equal(t, int64(2), summary.TotalCustomers)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(32)))

	snapshots.AssertExpectations(t)
}

func TestDashboardStatsPropagatesFetchError(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)
	snapshots := new(MockSnapshotSource)
	snapshots.On("FetchRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	svc := newDashboardService(snapshots, now)
	_, err := svc.DashboardStats(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
