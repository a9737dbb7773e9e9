// Package fishing scores weather observations for fishing and plans bite windows.
package fishing

import "math"

// tier is one row of a scoring table. Rows are evaluated top to bottom and
// the first matching row wins; a nil match is the fallback row.
type tier struct {
	match func(v float64) bool
	score int
}

func scoreBy(tiers []tier, v float64) int {
	for _, t := range tiers {
		if t.match == nil || t.match(v) {
			return t.score
		}
	}
	return 0
}

var temperatureTiers = []tier{
	{match: func(v float64) bool { return v < 10 || v > 30 }, score: 20},
	{match: func(v float64) bool { return v < 15 || v > 25 }, score: 60},
	{score: 100},
}

var pressureTiers = []tier{
	{match: func(v float64) bool { return v >= 1013 && v <= 1020 }, score: 100},
	{match: func(v float64) bool { return v < 1000 || v > 1030 }, score: 40},
	{score: 80},
}

var windTiers = []tier{
	{match: func(v float64) bool { return v > 20 }, score: 20},
	{match: func(v float64) bool { return v > 15 }, score: 40},
	{match: func(v float64) bool { return v > 10 }, score: 60},
	{match: func(v float64) bool { return v > 5 }, score: 80},
	{score: 100},
}

var humidityTiers = []tier{
	{match: func(v float64) bool { return v >= 40 && v <= 70 }, score: 100},
	{match: func(v float64) bool { return v < 30 || v > 80 }, score: 50},
	{score: 80},
}

// Cover below 30% shares the fallback with 81-90%; there is no clear-sky tier.
var cloudTiers = []tier{
	{match: func(v float64) bool { return v >= 30 && v <= 80 }, score: 100},
	{match: func(v float64) bool { return v > 90 }, score: 60},
	{score: 70},
}

// CalculateIndex scores the five weather factors and averages them.
// Wind speed is in km/h; humidity and cloud cover are percentages and are
// scored as given, without clamping.
func CalculateIndex(temperature, pressure, windSpeed float64, humidity, cloudCover int) IndexResult {
	r := IndexResult{
		Temperature: scoreBy(temperatureTiers, temperature),
		Pressure:    scoreBy(pressureTiers, pressure),
		Wind:        scoreBy(windTiers, windSpeed),
		Humidity:    scoreBy(humidityTiers, float64(humidity)),
		Clouds:      scoreBy(cloudTiers, float64(cloudCover)),
	}
	sum := r.Temperature + r.Pressure + r.Wind + r.Humidity + r.Clouds
	r.Overall = int(math.Floor(float64(sum)/5 + 0.5))
	return r
}

// Index scores the observation.
func (o Observation) Index() IndexResult {
	return CalculateIndex(o.Temperature, o.Pressure, o.WindSpeed, o.Humidity, o.CloudCover)
}

// Tier names for an overall score.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierMarginal  = "marginal"
	TierPoor      = "poor"
)

type adviceRow struct {
	min   int
	tier  string
	long  string
	short string
}

var adviceTable = []adviceRow{
	{min: 80, tier: TierExcellent, long: "Excellent conditions, fish are likely to be very active. A great day to go out.", short: "Great day to fish"},
	{min: 60, tier: TierGood, long: "Good conditions, worth heading out. Pick a sheltered spot and be patient.", short: "Good for fishing"},
	{min: 40, tier: TierMarginal, long: "Marginal conditions, bites may be slow. Try deeper water and lighter tackle.", short: "Fair, bites may be slow"},
	{min: math.MinInt, tier: TierPoor, long: "Poor conditions, fish are unlikely to feed. Consider another day.", short: "Not recommended"},
}

func adviceFor(overall int) adviceRow {
	for _, row := range adviceTable {
		if overall >= row.min {
			return row
		}
	}
	return adviceTable[len(adviceTable)-1]
}

// Tier returns the tier name for an overall score.
func Tier(overall int) string { return adviceFor(overall).tier }

// Advice returns the full advisory sentence for an overall score.
func Advice(overall int) string { return adviceFor(overall).long }

// ShortAdvice returns the short label used on forecast rows.
func ShortAdvice(overall int) string { return adviceFor(overall).short }
