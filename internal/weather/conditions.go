package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/neexbeast/fishcast/internal/fishing"
	"github.com/neexbeast/fishcast/internal/place"
)

// msToKmh converts the provider's metric wind speed to km/h.
const msToKmh = 3.6

// Current is a current-conditions reading plus what the provider told us
// about the place.
type Current struct {
	Observation fishing.Observation
	Location    *time.Location
	Name        string
	Country     string
}

// Forecast is a series of timestamped samples, usually three hours apart.
type Forecast struct {
	Samples  []fishing.Observation
	Location *time.Location
}

type owmMain struct {
	Temp     float64 `json:"temp"`
	Pressure float64 `json:"pressure"`
	SeaLevel float64 `json:"sea_level"`
	Humidity int     `json:"humidity"`
}

// seaLevelPressure prefers the explicit sea-level reading when present.
func (m owmMain) seaLevelPressure() float64 {
	if m.SeaLevel > 0 {
		return m.SeaLevel
	}
	return m.Pressure
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type owmClouds struct {
	All int `json:"all"`
}

type owmCurrentResponse struct {
	Name       string         `json:"name"`
	Dt         int64          `json:"dt"`
	Timezone   int            `json:"timezone"`
	Main       owmMain        `json:"main"`
	Weather    []owmCondition `json:"weather"`
	Wind       owmWind        `json:"wind"`
	Clouds     owmClouds      `json:"clouds"`
	Visibility *float64       `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type owmForecastResponse struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
		Wind    owmWind        `json:"wind"`
		Clouds  owmClouds      `json:"clouds"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

func zoneFor(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+03d:%02d", offsetSeconds/3600, abs(offsetSeconds%3600)/60), offsetSeconds)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func firstCondition(conds []owmCondition) owmCondition {
	if len(conds) > 0 {
		return conds[0]
	}
	return owmCondition{}
}

// Current retrieves current conditions for p.
func (c *Client) Current(ctx context.Context, p place.Place) (*Current, error) {
	var raw owmCurrentResponse
	if err := c.doGet(ctx, "/data/2.5/weather", c.placeParams(p), &raw); err != nil {
		return nil, fmt.Errorf("openweathermap current weather for %s: %w", p.Query, err)
	}

	loc := zoneFor(raw.Timezone)
	cond := firstCondition(raw.Weather)

	obs := fishing.Observation{
		Time:          time.Unix(raw.Dt, 0).In(loc),
		Temperature:   raw.Main.Temp,
		Humidity:      raw.Main.Humidity,
		Pressure:      raw.Main.seaLevelPressure(),
		WindSpeed:     raw.Wind.Speed * msToKmh,
		WindDirection: raw.Wind.Deg,
		CloudCover:    raw.Clouds.All,
		Description:   cond.Description,
		Icon:          cond.Icon,
		Sunrise:       time.Unix(raw.Sys.Sunrise, 0).In(loc),
		Sunset:        time.Unix(raw.Sys.Sunset, 0).In(loc),
	}
	if raw.Visibility != nil {
		km := *raw.Visibility / 1000
		obs.Visibility = &km
	}

	return &Current{
		Observation: obs,
		Location:    loc,
		Name:        raw.Name,
		Country:     raw.Sys.Country,
	}, nil
}

// Forecast retrieves the multi-day forecast series for p.
func (c *Client) Forecast(ctx context.Context, p place.Place) (*Forecast, error) {
	var raw owmForecastResponse
	if err := c.doGet(ctx, "/data/2.5/forecast", c.placeParams(p), &raw); err != nil {
		return nil, fmt.Errorf("openweathermap forecast for %s: %w", p.Query, err)
	}

	loc := zoneFor(raw.City.Timezone)
	samples := make([]fishing.Observation, 0, len(raw.List))
	for _, item := range raw.List {
		cond := firstCondition(item.Weather)
		samples = append(samples, fishing.Observation{
			Time:          time.Unix(item.Dt, 0).In(loc),
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Pressure:      item.Main.seaLevelPressure(),
			WindSpeed:     item.Wind.Speed * msToKmh,
			WindDirection: item.Wind.Deg,
			CloudCover:    item.Clouds.All,
			Description:   cond.Description,
			Icon:          cond.Icon,
		})
	}

	return &Forecast{Samples: samples, Location: loc}, nil
}
