package report

// Granularity is one of the five supported reporting scopes.
type Granularity string

const (
	GranularityToday     Granularity = "today"
	GranularityWeek      Granularity = "week"
	GranularityMonth     Granularity = "month"
	GranularitySixMonths Granularity = "6months"
	GranularityYear      Granularity = "year"
)

// IsValid checks if the granularity is a supported value
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityToday, GranularityWeek, GranularityMonth, GranularitySixMonths, GranularityYear:
		return true
	}
	return false
}

// String returns the string representation of Granularity
func (g Granularity) String() string {
	return string(g)
}

// AllGranularities returns the five granularities in dashboard order.
func AllGranularities() []Granularity {
	return []Granularity{
		GranularityToday,
		GranularityWeek,
		GranularityMonth,
		GranularitySixMonths,
		GranularityYear,
	}
}
