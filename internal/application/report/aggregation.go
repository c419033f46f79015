package report

import (
	"time"

	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/report"
)

// AggregateBuckets folds an order snapshot into per-slot buckets. An order
// contributes to at most one slot; creation instants after now are dropped
// even when a slot would otherwise contain them. Orders whose item payload
// fails to parse still count toward order count and revenue, only the
// product quantity is lost.
func AggregateBuckets(orders []order.Order, slots []report.Slot, now time.Time) []report.Bucket {
	buckets := make([]report.Bucket, len(slots))
	for i, slot := range slots {
		buckets[i] = report.NewBucket(slot.Label)
	}

	for _, o := range orders {
		if o.CreatedAt.After(now) {
			continue
		}
		for i, slot := range slots {
			if !slot.Contains(o.CreatedAt) {
				continue
			}
			buckets[i].Count++
			buckets[i].Revenue = buckets[i].Revenue.Add(o.TotalPrice)
			if items, err := o.ParseItems(); err == nil {
				for _, item := range items {
					buckets[i].ProductQuantity += item.Quantity
				}
			}
			break
		}
	}

	return buckets
}
