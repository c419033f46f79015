package report

import "github.com/shopspring/decimal"

// SeriesPoint is one labeled point in a dashboard series. Customers carries
// the order count for the slot; the field name is part of the payload
// contract consumed by the dashboard charts.
type SeriesPoint struct {
	Label     string          `json:"label"`
	Customers int64           `json:"customers"`
	Products  int64           `json:"products"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SeriesStats holds the totals accumulated across a whole series.
type SeriesStats struct {
	Customers int64           `json:"customers"`
	Products  int64           `json:"products"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// GranularitySeries is the stats plus per-slot breakdown for one granularity.
type GranularitySeries struct {
	Stats  SeriesStats   `json:"stats"`
	Points []SeriesPoint `json:"points"`
}

// DashboardStats is the full five-granularity dashboard payload.
type DashboardStats struct {
	Today     GranularitySeries `json:"today"`
	Week      GranularitySeries `json:"week"`
	Month     GranularitySeries `json:"month"`
	SixMonths GranularitySeries `json:"6months"`
	Year      GranularitySeries `json:"year"`
}

// CountPoint is a labeled order count.
type CountPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// QuantityByTime is the order-count-only view of the five granularities.
// The six-month key is singular here; existing clients depend on it.
type QuantityByTime struct {
	Day      []CountPoint `json:"day"`
	Week     []CountPoint `json:"week"`
	Month    []CountPoint `json:"month"`
	SixMonth []CountPoint `json:"6month"`
	Year     []CountPoint `json:"year"`
}

// TopItemsByTime ranks the best selling items per granularity.
type TopItemsByTime struct {
	Today     []TopItemEntryDTO `json:"today"`
	Week      []TopItemEntryDTO `json:"week"`
	Month     []TopItemEntryDTO `json:"month"`
	SixMonths []TopItemEntryDTO `json:"6months"`
	Year      []TopItemEntryDTO `json:"year"`
}

// TopItemEntryDTO mirrors report.TopItemEntry for the transport payload.
type TopItemEntryDTO struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// OrderSummary is the all-history order roll-up.
type OrderSummary struct {
	TotalOrders    int64           `json:"totalOrders"`
	TotalCustomers int64           `json:"totalCustomers"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}
