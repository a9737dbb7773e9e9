package fishing

import "time"

// Observation is a normalized weather snapshot for one place at one instant,
// either a current reading or a single forecast sample.
type Observation struct {
	Time          time.Time `json:"time"`
	Temperature   float64   `json:"temperature"`
	Humidity      int       `json:"humidity"`
	Pressure      float64   `json:"pressure"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection int       `json:"wind_direction"`
	CloudCover    int       `json:"cloud_cover"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon,omitempty"`

	// Current readings only.
	Visibility *float64  `json:"visibility,omitempty"`
	Sunrise    time.Time `json:"sunrise,omitzero"`
	Sunset     time.Time `json:"sunset,omitzero"`
}

// IndexResult holds the per-factor tier scores and their rounded mean.
type IndexResult struct {
	Temperature int `json:"temperature"`
	Pressure    int `json:"pressure"`
	Wind        int `json:"wind"`
	Humidity    int `json:"humidity"`
	Clouds      int `json:"clouds"`
	Overall     int `json:"overall"`
}

// BiteWindow is a recommended time range for fishing.
type BiteWindow struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Hours   int       `json:"hours"`
	Minutes int       `json:"minutes"`
	Reason  string    `json:"reason"`
}

// TimeAdvice groups the sunrise and sunset windows with the seasonal pick and tips.
type TimeAdvice struct {
	EarlyBite BiteWindow `json:"early_bite"`
	LateBite  BiteWindow `json:"late_bite"`
	BestTime  string     `json:"best_time"`
	Tips      []string   `json:"tips"`
}

// ForecastDay is the scored summary of one calendar day of forecast.
type ForecastDay struct {
	Date          string  `json:"date"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon,omitempty"`
	Humidity      int     `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection int     `json:"wind_direction"`
	CloudCover    int     `json:"cloud_cover"`
	FishingIndex  int     `json:"fishing_index"`
	FishingAdvice string  `json:"fishing_advice"`
}
