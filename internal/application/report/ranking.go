package report

import (
	"sort"
	"time"

	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/report"
)

// DefaultTopItemLimit caps ranked item lists when no explicit limit is given.
const DefaultTopItemLimit = 10

// TopItems ranks item names by total quantity sold over [start, end]. The
// end bound is inclusive, unlike slot membership. Ties keep first-encountered
// order, so the ranking is stable across identical snapshots. Lines with an
// empty name or non-positive quantity are ignored, as are orders whose item
// payload cannot be parsed.
func TopItems(orders []order.Order, start, end time.Time, limit int) []report.TopItemEntry {
	if limit <= 0 {
		limit = DefaultTopItemLimit
	}

	totals := make(map[string]int64)
	names := make([]string, 0)

	for _, o := range orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		items, err := o.ParseItems()
		if err != nil {
			continue
		}
		for _, item := range items {
			if item.Name == "" || item.Quantity <= 0 {
				continue
			}
			if _, seen := totals[item.Name]; !seen {
				names = append(names, item.Name)
			}
			totals[item.Name] += item.Quantity
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		return totals[names[i]] > totals[names[j]]
	})

	if len(names) > limit {
		names = names[:limit]
	}

	entries := make([]report.TopItemEntry, len(names))
	for i, name := range names {
		entries[i] = report.TopItemEntry{Label: name, Value: totals[name]}
	}
	return entries
}
