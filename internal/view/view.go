// Package view turns a weather report into the display strings a front-end
// shows: rounded temperatures, km/h wind, icon URLs and day labels.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/neexbeast/weatherdash/internal/weather"
)

const iconBaseURL = "https://openweathermap.org/img/wn/"

// View is the complete display state for one successful search.
type View struct {
	Place       string `json:"place"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	IconAlt     string `json:"icon_alt"`
	Forecast    []Day  `json:"forecast"`
}

// Day is one entry of the daily forecast strip.
type Day struct {
	Day         string `json:"day"`
	IconURL     string `json:"icon_url"`
	IconAlt     string `json:"icon_alt"`
	Temperature string `json:"temperature"`
}

// Build renders r as of now, with forecast day names in loc.
// A nil loc means UTC.
func Build(r *weather.Report, now time.Time, loc *time.Location) View {
	if loc == nil {
		loc = time.UTC
	}
	cur := r.Current

	v := View{
		Place:       fmt.Sprintf("%s, %s", cur.Place, cur.Country),
		Date:        now.In(loc).Format("Monday, January 2, 2006"),
		Temperature: Degrees(cur.Temperature),
		FeelsLike:   Degrees(cur.FeelsLike),
		Humidity:    fmt.Sprintf("%d%%", cur.Humidity),
		Wind:        fmt.Sprintf("%d km/h", cur.WindSpeed),
		Description: cur.Description,
		IconURL:     iconBaseURL + cur.Icon + "@2x.png",
		IconAlt:     cur.Condition,
		Forecast:    make([]Day, 0, len(r.Daily)),
	}

	for _, p := range r.Daily {
		v.Forecast = append(v.Forecast, Day{
			Day:         p.Time.In(loc).Format("Mon"),
			IconURL:     iconBaseURL + p.Icon + ".png",
			IconAlt:     p.Condition,
			Temperature: Degrees(p.Temperature),
		})
	}
	return v
}

// Degrees formats a temperature rounded to the nearest whole degree.
func Degrees(t float64) string {
	return fmt.Sprintf("%d°", int(math.Round(t)))
}
