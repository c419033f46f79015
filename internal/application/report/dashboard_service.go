package report

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/report"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// DashboardService assembles the dashboard analytics payloads. Every call
// fetches one order snapshot covering January 1st of the previous year
// through now and derives all five granularities from it in memory; the
// granularity windows never reach further back than that bound.
type DashboardService struct {
	snapshots order.SnapshotSource
	clock     report.Clock
	logger    *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(snapshots order.SnapshotSource, clock report.Clock, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		snapshots: snapshots,
		clock:     clock,
		logger:    logger,
	}
}

// fetchSnapshot loads the orders backing every granularity view.
func (s *DashboardService) fetchSnapshot(ctx context.Context) ([]order.Order, time.Time, error) {
	now := s.clock.Now()
	lower := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())

	orders, err := s.snapshots.FetchRange(ctx, lower, now, nil)
	if err != nil {
		return nil, now, err
	}

	s.logger.Debug("Dashboard snapshot fetched",
		zap.Time("lower_bound", lower),
		zap.Time("now", now),
		zap.Int("orders", len(orders)),
	)
	return orders, now, nil
}

// DashboardStats computes the full five-granularity dashboard payload.
func (s *DashboardService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	orders, now, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}
	for _, g := range report.AllGranularities() {
		window, err := report.WindowFor(now, g)
		if err != nil {
			return nil, err
		}
		series := buildSeries(AggregateBuckets(orders, window.Slots, now))

		switch g {
		case report.GranularityToday:
			stats.Today = series
		case report.GranularityWeek:
			stats.Week = series
		case report.GranularityMonth:
			stats.Month = series
		case report.GranularitySixMonths:
			stats.SixMonths = series
		case report.GranularityYear:
			stats.Year = series
		}
	}
	return stats, nil
}

// QuantityByTime computes the order-count series for each granularity.
func (s *DashboardService) QuantityByTime(ctx context.Context) (*QuantityByTime, error) {
	orders, now, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := &QuantityByTime{}
	for _, g := range report.AllGranularities() {
		window, err := report.WindowFor(now, g)
		if err != nil {
			return nil, err
		}
		points := countPoints(AggregateBuckets(orders, window.Slots, now))

		switch g {
		case report.GranularityToday:
			result.Day = points
		case report.GranularityWeek:
			result.Week = points
		case report.GranularityMonth:
			result.Month = points
		case report.GranularitySixMonths:
			result.SixMonth = points
		case report.GranularityYear:
			result.Year = points
		}
	}
	return result, nil
}

// TopItemsByTime ranks the ten best selling items within each granularity.
func (s *DashboardService) TopItemsByTime(ctx context.Context) (*TopItemsByTime, error) {
	orders, now, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := &TopItemsByTime{}
	for _, g := range report.AllGranularities() {
		window, err := report.WindowFor(now, g)
		if err != nil {
			return nil, err
		}
		entries := topItemDTOs(TopItems(orders, window.LowerBound, now, DefaultTopItemLimit))

		switch g {
		case report.GranularityToday:
			result.Today = entries
		case report.GranularityWeek:
			result.Week = entries
		case report.GranularityMonth:
			result.Month = entries
		case report.GranularitySixMonths:
			result.SixMonths = entries
		case report.GranularityYear:
			result.Year = entries
		}
	}
	return result, nil
}

// Summary rolls up the entire order history: total order count, distinct
// customers and total revenue. Customer identity folds case and surrounding
// whitespace, so " ALICE " and "alice" are one customer. Orders with an
// empty customer name are skipped in the distinct count but still contribute
// to orders and revenue.
func (s *DashboardService) Summary(ctx context.Context) (*OrderSummary, error) {
	orders, err := s.snapshots.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	customers := make(map[string]struct{})
	revenue := decimal.Zero

	for _, o := range orders {
		revenue = revenue.Add(o.TotalPrice)
		name := strings.TrimSpace(o.CustomerName)
		if name == "" {
			continue
		}
		customers[fold.String(name)] = struct{}{}
	}

	return &OrderSummary{
		TotalOrders:    int64(len(orders)),
		TotalCustomers: int64(len(customers)),
		TotalRevenue:   revenue,
	}, nil
}

func buildSeries(buckets []report.Bucket) GranularitySeries {
	series := GranularitySeries{
		Stats:  SeriesStats{Revenue: decimal.Zero},
		Points: make([]SeriesPoint, len(buckets)),
	}
	for i, b := range buckets {
		series.Points[i] = SeriesPoint{
			Label:     b.Label,
			Customers: b.Count,
			Products:  b.ProductQuantity,
			Revenue:   b.Revenue,
		}
		series.Stats.Customers += b.Count
		series.Stats.Products += b.ProductQuantity
		series.Stats.Revenue = series.Stats.Revenue.Add(b.Revenue)
	}
	return series
}

func countPoints(buckets []report.Bucket) []CountPoint {
	points := make([]CountPoint, len(buckets))
	for i, b := range buckets {
		points[i] = CountPoint{Label: b.Label, Count: b.Count}
	}
	return points
}

func topItemDTOs(entries []report.TopItemEntry) []TopItemEntryDTO {
	dtos := make([]TopItemEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = TopItemEntryDTO{Label: e.Label, Value: e.Value}
	}
	return dtos
}
