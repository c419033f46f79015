package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastehunt/backend/internal/domain/shared"
)

func TestWindowForToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	w, err := WindowFor(now, GranularityToday)
	require.NoError(t, err)

	require.Len(t, w.Slots, 5)
	assert.Equal(t, []string{"00:00", "06:00", "12:00", "18:00", "24:00"}, slotLabels(w))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), w.LowerBound)

	// Fourth slot runs up to next midnight.
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), w.Slots[3].End)

	// The trailing 24:00 slot is degenerate and can never contain an instant.
	fifth := w.Slots[4]
	assert.Equal(t, fifth.Start, fifth.End)
	assert.False(t, fifth.Contains(fifth.Start))
}

func TestWindowForWeekStartsMonday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"monday itself", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"sunday maps back six days", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := WindowFor(tc.now, GranularityWeek)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.LowerBound)
			assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, slotLabels(w))
		})
	}
}

func TestWindowForMonthFourthSlotAbsorbsTail(t *testing.T) {
	// March has 31 days, so W4 covers the 22nd through the 31st.
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	w, err := WindowFor(now, GranularityMonth)
	require.NoError(t, err)
	require.Len(t, w.Slots, 4)

	w4 := w.Slots[3]
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), w4.Start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), w4.End)
	assert.True(t, w4.Contains(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)))

	// February in a non-leap year: W4 is exactly one week.
	feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	w, err = WindowFor(feb, GranularityMonth)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), w.Slots[3].End)
}

func TestWindowForSixMonthsWrapsYear(t *testing.T) {
	now := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)

	w, err := WindowFor(now, GranularitySixMonths)
	require.NoError(t, err)
	require.Len(t, w.Slots, 6)

	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, slotLabels(w))
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), w.LowerBound)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), w.Slots[5].End)
}

func TestWindowForYear(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	w, err := WindowFor(now, GranularityYear)
	require.NoError(t, err)
	require.Len(t, w.Slots, 2)

	assert.Equal(t, []string{"2024", "2025"}, slotLabels(w))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.LowerBound)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), w.Slots[1].End)
}

func TestWindowForRejectsUnknownGranularity(t *testing.T) {
	_, err := WindowFor(time.Now(), Granularity("fortnight"))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSlotContainsBoundaries(t *testing.T) {
	slot := Slot{
		Start: time.Date(2025, 3, 15, 6, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	assert.True(t, slot.Contains(slot.Start))
	assert.True(t, slot.Contains(slot.End.Add(-time.Nanosecond)))
	assert.False(t, slot.Contains(slot.End))
	assert.False(t, slot.Contains(slot.Start.Add(-time.Nanosecond)))
}

func TestReportRangeStart(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 45, 0, 0, time.UTC)

	cases := []struct {
		token string
		want  time.Time
	}{
		{"day", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC)},
		{"15days", time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"6months", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ReportRangeStart(now, tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ReportRangeStart(now, "quarter")
	assert.ErrorIs(t, err, shared.ErrInvalidRange)
}

func slotLabels(w Window) []string {
	labels := make([]string, len(w.Slots))
	for i, s := range w.Slots {
		labels[i] = s.Label
	}
	return labels
}
