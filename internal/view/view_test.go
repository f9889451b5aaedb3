package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/weatherdash/internal/view"
	"github.com/neexbeast/weatherdash/internal/weather"
)

func parisReport() *weather.Report {
	start := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC) // a Monday
	daily := make(weather.DailyForecast, 0, 5)
	for d := 0; d < 5; d++ {
		ts := start.AddDate(0, 0, d)
		daily = append(daily, weather.ForecastPoint{
			Time:        ts,
			Temperature: 20.6 + float64(d),
			Icon:        "02d",
			Condition:   "Clouds",
			Label:       ts.Format("2006-01-02 15:04:05"),
		})
	}
	return &weather.Report{
		Current: weather.CurrentConditions{
			Place:       "Paris",
			Country:     "FR",
			Temperature: 18.4,
			FeelsLike:   17.9,
			Humidity:    60,
			WindSpeed:   weather.WindKMH(5.0),
			Description: "clear sky",
			Icon:        "01d",
			Condition:   "Clear",
		},
		Daily: daily,
	}
}

func TestBuild_Paris(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	v := view.Build(parisReport(), now, time.UTC)

	assert.Equal(t, "Paris, FR", v.Place)
	assert.Equal(t, "Monday, March 4, 2024", v.Date)
	assert.Equal(t, "18°", v.Temperature)
	assert.Equal(t, "18°", v.FeelsLike)
	assert.Equal(t, "60%", v.Humidity)
	assert.Equal(t, "18 km/h", v.Wind)
	assert.Equal(t, "clear sky", v.Description)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", v.IconURL)
	assert.Equal(t, "Clear", v.IconAlt)

	require.Len(t, v.Forecast, 5)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, []string{
		v.Forecast[0].Day, v.Forecast[1].Day, v.Forecast[2].Day, v.Forecast[3].Day, v.Forecast[4].Day,
	})
	assert.Equal(t, "21°", v.Forecast[0].Temperature)
	assert.Equal(t, "https://openweathermap.org/img/wn/02d.png", v.Forecast[0].IconURL)
}

func TestBuild_EmptyForecast(t *testing.T) {
	r := parisReport()
	r.Daily = weather.DailyForecast{}

	v := view.Build(r, time.Now(), nil)
	assert.NotNil(t, v.Forecast)
	assert.Empty(t, v.Forecast)
}

func TestBuild_DayNamesUseLocation(t *testing.T) {
	r := parisReport()
	r.Daily = r.Daily[:1]
	r.Daily[0].Time = time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC) // Monday in UTC

	tokyo := time.FixedZone("JST", 9*60*60)
	v := view.Build(r, time.Now(), tokyo)
	assert.Equal(t, "Tue", v.Forecast[0].Day)
}

func TestDegrees(t *testing.T) {
	assert.Equal(t, "18°", view.Degrees(18.4))
	assert.Equal(t, "19°", view.Degrees(18.5))
	assert.Equal(t, "-3°", view.Degrees(-2.6))
	assert.Equal(t, "0°", view.Degrees(-0.4))
}
