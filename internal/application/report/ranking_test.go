package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastehunt/backend/internal/domain/order"
)

func TestTopItemsRanksByQuantity(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	orders := []order.Order{
		orderAt(t, start.AddDate(0, 0, 1), 10, []order.Item{
			{Name: "Soup", Quantity: 2},
			{Name: "Noodles", Quantity: 5},
		}),
		orderAt(t, start.AddDate(0, 0, 2), 10, []order.Item{
			{Name: "Soup", Quantity: 4},
		}),
	}

	entries := TopItems(orders, start, end, 10)
	require.Len(t, entries, 2)
	assert.Equal(t, "Soup", entries[0].Label)
	assert.Equal(t, int64(6), entries[0].Value)
	assert.Equal(t, "Noodles", entries[1].Label)
	assert.Equal(t, int64(5), entries[1].Value)
}

func TestTopItemsTiesKeepFirstEncountered(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	orders := []order.Order{
		orderAt(t, start.AddDate(0, 0, 1), 10, []order.Item{
			{Name: "Tea", Quantity: 3},
			{Name: "Coffee", Quantity: 3},
		}),
	}

	entries := TopItems(orders, start, end, 10)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tea", entries[0].Label)
	assert.Equal(t, "Coffee", entries[1].Label)
}

func TestTopItemsInclusiveEndBound(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	orders := []order.Order{
		orderAt(t, end, 10, []order.Item{{Name: "Soup", Quantity: 1}}),
		orderAt(t, end.Add(time.Second), 10, []order.Item{{Name: "Late", Quantity: 9}}),
	}

	entries := TopItems(orders, start, end, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "Soup", entries[0].Label)
}

func TestTopItemsSkipsInvalidLines(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	orders := []order.Order{
		orderAt(t, start.AddDate(0, 0, 1), 10, []order.Item{
			{Name: "", Quantity: 5},
			{Name: "Zero", Quantity: 0},
			{Name: "Valid", Quantity: 1},
		}),
	}

	entries := TopItems(orders, start, end, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "Valid", entries[0].Label)
}

func TestTopItemsAppliesLimit(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	items := make([]order.Item, 0, 12)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		items = append(items, order.Item{Name: name, Quantity: 1})
	}
	orders := []order.Order{orderAt(t, start.AddDate(0, 0, 1), 10, items)}

	assert.Len(t, TopItems(orders, start, end, 0), DefaultTopItemLimit)
	assert.Len(t, TopItems(orders, start, end, 3), 3)
}
