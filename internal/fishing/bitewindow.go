package fishing

import (
	"fmt"
	"strings"
	"time"
)

// Best-time labels.
const (
	BestEarlyBite = "early bite"
	BestLateBite  = "late bite"
)

// windowParams are offsets before sunrise/sunset and window lengths, in hours.
type windowParams struct {
	earlyOffset   float64
	earlyDuration float64
	lateOffset    float64
	lateDuration  float64
}

type seasonRule struct {
	months []time.Month
	params windowParams
}

// Northern-hemisphere seasons.
var seasonTable = []seasonRule{
	{months: []time.Month{time.March, time.April, time.May}, params: windowParams{1.5, 3.0, 2.5, 3.0}},
	{months: []time.Month{time.June, time.July, time.August}, params: windowParams{2.0, 2.0, 3.0, 2.5}},
	{months: []time.Month{time.September, time.October, time.November}, params: windowParams{1.5, 3.0, 2.5, 3.0}},
	{months: []time.Month{time.December, time.January, time.February}, params: windowParams{1.0, 2.0, 2.0, 2.0}},
}

func seasonParams(month time.Month) windowParams {
	for _, rule := range seasonTable {
		for _, m := range rule.months {
			if m == month {
				return rule.params
			}
		}
	}
	return seasonTable[len(seasonTable)-1].params
}

// Keywords match English and Simplified Chinese provider descriptions.
var (
	rainKeywords     = []string{"rain", "雨"}
	overcastKeywords = []string{"overcast", "cloudy", "阴", "多云"}
	clearKeywords    = []string{"clear", "晴"}
)

func containsAny(description string, keywords []string) bool {
	d := strings.ToLower(description)
	for _, k := range keywords {
		if strings.Contains(d, k) {
			return true
		}
	}
	return false
}

// conditions is what the weather rules look at.
type conditions struct {
	temperature float64
	description string
	month       time.Month
}

func (c conditions) rainy() bool    { return containsAny(c.description, rainKeywords) }
func (c conditions) overcast() bool { return containsAny(c.description, overcastKeywords) }
func (c conditions) clear() bool    { return containsAny(c.description, clearKeywords) }
func (c conditions) summer() bool {
	return c.month >= time.June && c.month <= time.August
}

// durationRule adjusts both window lengths. Only the first matching rule applies.
type durationRule struct {
	applies func(c conditions) bool
	delta   float64
}

var durationRules = []durationRule{
	{applies: func(c conditions) bool { return c.rainy() || c.overcast() }, delta: 0.5},
	{applies: func(c conditions) bool { return c.clear() && c.temperature > 30 }, delta: -0.5},
}

// tipRule adds an advisory line. Every matching rule applies, in table order.
type tipRule struct {
	applies func(c conditions) bool
	tip     string
}

var tipRules = []tipRule{
	{applies: conditions.rainy, tip: "Light rain stirs up food and oxygenates the water; fish often feed harder just before and after a shower."},
	{applies: func(c conditions) bool { return c.temperature >= 25 && c.temperature <= 30 }, tip: "Warm water pushes fish deeper; fish shaded or deeper spots."},
	{applies: conditions.overcast, tip: "Overcast skies keep fish near the surface longer; the bite windows run a little longer today."},
	{applies: conditions.summer, tip: "Avoid the midday heat; fish rest in deep water between late morning and mid afternoon."},
}

// PlanBiteWindows derives the sunrise and sunset bite windows for the given
// conditions. Window lengths depend only on season and weather, never on the
// sunrise or sunset instant.
func PlanBiteWindows(sunrise, sunset time.Time, temperature float64, description string, month time.Month) TimeAdvice {
	c := conditions{temperature: temperature, description: description, month: month}
	p := seasonParams(month)

	for _, rule := range durationRules {
		if rule.applies(c) {
			p.earlyDuration += rule.delta
			p.lateDuration += rule.delta
			break
		}
	}

	early := newWindow(sunrise, p.earlyOffset, p.earlyDuration)
	early.Reason = fmt.Sprintf("Fish feed around dawn: start %.1fh before sunrise and stay %.1fh.", p.earlyOffset, p.earlyDuration)

	late := newWindow(sunset, p.lateOffset, p.lateDuration)
	late.Reason = fmt.Sprintf("Fish feed again toward dusk: start %.1fh before sunset and stay %.1fh.", p.lateOffset, p.lateDuration)

	best := BestLateBite
	if month >= time.March && month <= time.November {
		best = BestEarlyBite
	}

	tips := []string{}
	for _, rule := range tipRules {
		if rule.applies(c) {
			tips = append(tips, rule.tip)
		}
	}

	return TimeAdvice{EarlyBite: early, LateBite: late, BestTime: best, Tips: tips}
}

// newWindow opens offset hours before anchor and closes duration hours later.
func newWindow(anchor time.Time, offset, duration float64) BiteWindow {
	start := anchor.Add(-hours(offset))
	end := anchor.Add(hours(duration - offset))
	length := end.Sub(start)
	return BiteWindow{
		Start:   start,
		End:     end,
		Hours:   int(length / time.Hour),
		Minutes: int((length % time.Hour) / time.Minute),
	}
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
