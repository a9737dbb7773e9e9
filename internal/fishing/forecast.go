package fishing

import "time"

// DefaultForecastDays is how many days SummarizeForecast covers by default.
const DefaultForecastDays = 5

// SummarizeForecast scores one representative sample per calendar day,
// starting with the day of now in now's location. The representative sample
// is the one closest to local noon; on a tie the earlier sample in the slice
// wins. A day is left out when its closest sample belongs to another date,
// which happens once the series runs out.
func SummarizeForecast(samples []Observation, now time.Time, days int) []ForecastDay {
	if len(samples) == 0 || days <= 0 {
		return nil
	}

	loc := now.Location()
	y, m, d := now.Date()

	out := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		noon := time.Date(y, m, d+i, 12, 0, 0, 0, loc)

		best := closestTo(samples, noon)
		if !sameDate(samples[best].Time.In(loc), noon) {
			continue
		}
		out = append(out, summarizeDay(samples, best, noon))
	}
	return out
}

func closestTo(samples []Observation, target time.Time) int {
	best := 0
	bestDiff := absDuration(samples[0].Time.Sub(target))
	for i := 1; i < len(samples); i++ {
		diff := absDuration(samples[i].Time.Sub(target))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

func summarizeDay(samples []Observation, pick int, day time.Time) ForecastDay {
	s := samples[pick]
	lo, hi := s.Temperature, s.Temperature
	for _, o := range samples {
		if !sameDate(o.Time.In(day.Location()), day) {
			continue
		}
		if o.Temperature < lo {
			lo = o.Temperature
		}
		if o.Temperature > hi {
			hi = o.Temperature
		}
	}

	overall := s.Index().Overall
	return ForecastDay{
		Date:          day.Format(time.DateOnly),
		TempMin:       lo,
		TempMax:       hi,
		Description:   s.Description,
		Icon:          s.Icon,
		Humidity:      s.Humidity,
		Pressure:      s.Pressure,
		WindSpeed:     s.WindSpeed,
		WindDirection: s.WindDirection,
		CloudCover:    s.CloudCover,
		FishingIndex:  overall,
		FishingAdvice: ShortAdvice(overall),
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
