package weather

import (
	"slices"
	"strings"
)

const (
	// middayMarker selects the 12:00 slot of the provider's 3-hour series.
	middayMarker = "12:00:00"
	maxDays      = 5
)

// SampleDaily keeps the midday points of a forecast series and returns the
// first five of them in chronological order. It never pads: fewer midday
// points yield a shorter forecast, none yields an empty one.
func SampleDaily(points []ForecastPoint) DailyForecast {
	daily := make(DailyForecast, 0, maxDays)
	for _, p := range points {
		if strings.Contains(p.Label, middayMarker) {
			daily = append(daily, p)
		}
	}

	slices.SortStableFunc(daily, func(a, b ForecastPoint) int {
		return a.Time.Compare(b.Time)
	})

	if len(daily) > maxDays {
		daily = daily[:maxDays]
	}
	return daily
}
