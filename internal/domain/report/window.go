package report

import (
	"strconv"
	"time"

	"github.com/tastehunt/backend/internal/domain/shared"
)

// Slot is a single labeled sub-bucket boundary within a granularity window.
// Membership is inclusive-lower, exclusive-upper.
type Slot struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the slot's [Start, End) range.
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Window is the full time span covered by a granularity: its lower bound and
// the ordered labeled slots the span is divided into.
type Window struct {
	LowerBound time.Time
	Slots      []Slot
}

// WindowFor derives the calendar-aligned window for a granularity at the
// given instant. Weeks start on Monday. The today window keeps its historical
// fifth "24:00" slot with an empty [24:00, 24:00) range; dashboard clients
// expect five labeled points, so the always-zero bucket is part of the
// contract even though nothing can ever land in it.
func WindowFor(now time.Time, g Granularity) (Window, error) {
	switch g {
	case GranularityToday:
		return todayWindow(now), nil
	case GranularityWeek:
		return weekWindow(now), nil
	case GranularityMonth:
		return monthWindow(now), nil
	case GranularitySixMonths:
		return sixMonthWindow(now), nil
	case GranularityYear:
		return yearWindow(now), nil
	default:
		return Window{}, shared.ErrInvalidInput
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent Monday midnight at or before t.
func StartOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func todayWindow(now time.Time) Window {
	day := startOfDay(now)
	labels := []string{"00:00", "06:00", "12:00", "18:00", "24:00"}
	hours := [][2]int{{0, 6}, {6, 12}, {12, 18}, {18, 24}, {24, 24}}

	slots := make([]Slot, len(labels))
	for i, label := range labels {
		slots[i] = Slot{
			Label: label,
			Start: day.Add(time.Duration(hours[i][0]) * time.Hour),
			End:   day.Add(time.Duration(hours[i][1]) * time.Hour),
		}
	}
	return Window{LowerBound: day, Slots: slots}
}

func weekWindow(now time.Time) Window {
	monday := StartOfWeek(now)
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	slots := make([]Slot, len(labels))
	for i, label := range labels {
		start := monday.AddDate(0, 0, i)
		slots[i] = Slot{Label: label, Start: start, End: start.AddDate(0, 0, 1)}
	}
	return Window{LowerBound: monday, Slots: slots}
}

// monthWindow splits the current month into W1..W3 (fixed seven-day slots)
// and W4, which stretches from day 22 through the last calendar day.
func monthWindow(now time.Time) Window {
	first := startOfMonth(now)
	nextMonth := first.AddDate(0, 1, 0)

	slots := []Slot{
		{Label: "W1", Start: first, End: first.AddDate(0, 0, 7)},
		{Label: "W2", Start: first.AddDate(0, 0, 7), End: first.AddDate(0, 0, 14)},
		{Label: "W3", Start: first.AddDate(0, 0, 14), End: first.AddDate(0, 0, 21)},
		{Label: "W4", Start: first.AddDate(0, 0, 21), End: nextMonth},
	}
	return Window{LowerBound: first, Slots: slots}
}

// sixMonthWindow covers the current calendar month and the five preceding
// ones, wrapping the year boundary when needed.
func sixMonthWindow(now time.Time) Window {
	slots := make([]Slot, 0, 6)
	for i := 5; i >= 0; i-- {
		start := startOfMonth(now).AddDate(0, -i, 0)
		slots = append(slots, Slot{
			Label: start.Format("Jan"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return Window{LowerBound: slots[0].Start, Slots: slots}
}

func yearWindow(now time.Time) Window {
	previous := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
	current := previous.AddDate(1, 0, 0)

	slots := []Slot{
		{Label: strconv.Itoa(now.Year() - 1), Start: previous, End: current},
		{Label: strconv.Itoa(now.Year()), Start: current, End: current.AddDate(1, 0, 0)},
	}
	return Window{LowerBound: previous, Slots: slots}
}

// ReportRangeStart resolves a single-range report token to the window lower
// bound for a period report. Unknown tokens yield ErrInvalidRange.
func ReportRangeStart(now time.Time, token string) (time.Time, error) {
	switch token {
	case "day":
		return startOfDay(now), nil
	case "week":
		return startOfDay(now).AddDate(0, 0, -7), nil
	case "15days":
		return startOfDay(now).AddDate(0, 0, -15), nil
	case "month":
		return startOfMonth(now), nil
	case "6months":
		return startOfMonth(now).AddDate(0, -6, 0), nil
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, shared.ErrInvalidRange
	}
}

// ReportRangeTokens lists the accepted single-range report tokens.
func ReportRangeTokens() []string {
	return []string{"day", "week", "15days", "month", "6months", "year"}
}
