package report

import "github.com/shopspring/decimal"

// Bucket holds the aggregates accumulated for a single labeled slot.
// Buckets are ephemeral: they are recomputed from the order snapshot on
// every request and never persisted.
type Bucket struct {
	Label           string
	Count           int64
	ProductQuantity int64
	Revenue         decimal.Decimal
}

// NewBucket returns a zero-filled bucket for the given label.
func NewBucket(label string) Bucket {
	return Bucket{Label: label, Revenue: decimal.Zero}
}

// TopItemEntry is one ranked item in a top-N result.
type TopItemEntry struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}
