package weather

import (
	"fmt"
	"math"
	"time"
)

// msToKMH converts the provider's metric wind speed (m/s) to km/h.
const msToKMH = 3.6

type owmCondition struct {
	Main        *string `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// owmCurrent mirrors the /weather body. Pointer fields distinguish a missing
// field from a zero value.
type owmCurrent struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []owmCondition `json:"weather"`
}

// owmForecast mirrors the /forecast (5 day / 3 hour) body.
type owmForecast struct {
	List *[]struct {
		Dt    *int64  `json:"dt"`
		DtTxt *string `json:"dt_txt"`
		Main  *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

func missing(field string) error {
	return fmt.Errorf("missing %s: %w", field, ErrMalformedResponse)
}

// WindKMH converts a provider wind speed to whole km/h.
func WindKMH(speed float64) int {
	return int(math.Round(speed * msToKMH))
}

func (c owmCondition) complete() bool {
	return c.Main != nil && c.Description != nil && c.Icon != nil
}

func (raw *owmCurrent) normalize() (CurrentConditions, error) {
	switch {
	case raw.Name == nil:
		return CurrentConditions{}, missing("name")
	case raw.Sys == nil || raw.Sys.Country == nil:
		return CurrentConditions{}, missing("sys.country")
	case raw.Main == nil || raw.Main.Temp == nil:
		return CurrentConditions{}, missing("main.temp")
	case raw.Main.FeelsLike == nil:
		return CurrentConditions{}, missing("main.feels_like")
	case raw.Main.Humidity == nil:
		return CurrentConditions{}, missing("main.humidity")
	case raw.Wind == nil || raw.Wind.Speed == nil:
		return CurrentConditions{}, missing("wind.speed")
	case len(raw.Weather) == 0 || !raw.Weather[0].complete():
		return CurrentConditions{}, missing("weather[0]")
	}

	w := raw.Weather[0]
	return CurrentConditions{
		Place:       *raw.Name,
		Country:     *raw.Sys.Country,
		Temperature: *raw.Main.Temp,
		FeelsLike:   *raw.Main.FeelsLike,
		Humidity:    *raw.Main.Humidity,
		WindSpeed:   WindKMH(*raw.Wind.Speed),
		Description: *w.Description,
		Icon:        *w.Icon,
		Condition:   *w.Main,
	}, nil
}

func (raw *owmForecast) normalize() ([]ForecastPoint, error) {
	if raw.List == nil {
		return nil, missing("list")
	}

	points := make([]ForecastPoint, 0, len(*raw.List))
	for i, item := range *raw.List {
		switch {
		case item.Dt == nil:
			return nil, missing(fmt.Sprintf("list[%d].dt", i))
		case item.DtTxt == nil:
			return nil, missing(fmt.Sprintf("list[%d].dt_txt", i))
		case item.Main == nil || item.Main.Temp == nil:
			return nil, missing(fmt.Sprintf("list[%d].main.temp", i))
		case len(item.Weather) == 0 || item.Weather[0].Icon == nil:
			return nil, missing(fmt.Sprintf("list[%d].weather[0].icon", i))
		}

		condition := ""
		if item.Weather[0].Main != nil {
			condition = *item.Weather[0].Main
		}
		points = append(points, ForecastPoint{
			Time:        time.Unix(*item.Dt, 0).UTC(),
			Temperature: *item.Main.Temp,
			Icon:        *item.Weather[0].Icon,
			Condition:   condition,
			Label:       *item.DtTxt,
		})
	}
	return points, nil
}
