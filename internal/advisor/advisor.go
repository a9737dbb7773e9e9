// Package advisor builds fishing reports by resolving a place, fetching its
// weather and running the fishing scorers over it.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/fishcast/internal/fishing"
	"github.com/neexbeast/fishcast/internal/place"
	"github.com/neexbeast/fishcast/internal/weather"
)

// compareLimit bounds how many places Compare scores at once.
const compareLimit = 4

// WeatherSource is the interface satisfied by weather.Client.
type WeatherSource interface {
	Current(ctx context.Context, p place.Place) (*weather.Current, error)
	Forecast(ctx context.Context, p place.Place) (*weather.Forecast, error)
}

// PlaceResolver is the interface satisfied by place.Resolver.
type PlaceResolver interface {
	ResolveByName(ctx context.Context, name string) (place.Place, error)
	ResolveByCoordinates(ctx context.Context, lat, lon float64) (place.Place, error)
}

// Report is everything shown for one place.
type Report struct {
	Place       place.Place           `json:"place"`
	Current     fishing.Observation   `json:"current"`
	Index       fishing.IndexResult   `json:"index"`
	Tier        string                `json:"tier"`
	Advice      string                `json:"advice"`
	TimeAdvice  fishing.TimeAdvice    `json:"time_advice"`
	Forecast    []fishing.ForecastDay `json:"forecast"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Advisor builds Reports.
type Advisor struct {
	weather      WeatherSource
	resolver     PlaceResolver
	defaultPlace place.Place
	days         int
	now          func() time.Time
	log          *slog.Logger
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithForecastDays sets how many forecast days a report covers.
func WithForecastDays(days int) Option {
	return func(a *Advisor) {
		if days > 0 {
			a.days = days
		}
	}
}

// WithClock replaces time.Now (for tests).
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) { a.now = now }
}

// New constructs an Advisor that falls back to defaultPlace when no location is known.
func New(ws WeatherSource, resolver PlaceResolver, defaultPlace place.Place, log *slog.Logger, opts ...Option) *Advisor {
	a := &Advisor{
		weather:      ws,
		resolver:     resolver,
		defaultPlace: defaultPlace,
		days:         fishing.DefaultForecastDays,
		now:          time.Now,
		log:          log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ForCity resolves a free-text city name and builds its report.
func (a *Advisor) ForCity(ctx context.Context, name string) (*Report, error) {
	p, err := a.resolver.ResolveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving city %q: %w", name, err)
	}
	return a.ForPlace(ctx, p)
}

// ForCoordinates builds the report for a coordinate pair. When reverse
// geocoding fails the weather is still fetched by coordinates and the place
// is labelled with them.
func (a *Advisor) ForCoordinates(ctx context.Context, lat, lon float64) (*Report, error) {
	p, err := a.resolver.ResolveByCoordinates(ctx, lat, lon)
	if err != nil {
		a.log.Warn("reverse geocoding failed, using raw coordinates", "lat", lat, "lon", lon, "err", err)
		label := fmt.Sprintf("%.4f,%.4f", lat, lon)
		p = place.Place{Name: label, Query: label, Lat: &lat, Lon: &lon}
	}
	return a.ForPlace(ctx, p)
}

// ForGeolocationFailure logs why the browser could not locate the user and
// serves the default place instead.
func (a *Advisor) ForGeolocationFailure(ctx context.Context, cause error) (*Report, error) {
	a.log.Warn("geolocation unavailable, using default place", "place", a.defaultPlace.Name, "err", cause)
	return a.ForPlace(ctx, a.defaultPlace)
}

// DefaultPlace returns the fallback place.
func (a *Advisor) DefaultPlace() place.Place { return a.defaultPlace }

// ForPlace fetches current conditions then the forecast, one after the
// other, and scores them. Nothing is returned unless both calls succeed.
func (a *Advisor) ForPlace(ctx context.Context, p place.Place) (*Report, error) {
	cur, err := a.weather.Current(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetching current weather for %s: %w", p.Name, err)
	}

	fc, err := a.weather.Forecast(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast for %s: %w", p.Name, err)
	}

	if p.Name == "" {
		p.Name = cur.Name
	}

	now := a.now().In(cur.Location)
	obs := cur.Observation
	index := obs.Index()

	return &Report{
		Place:       p,
		Current:     obs,
		Index:       index,
		Tier:        fishing.Tier(index.Overall),
		Advice:      fishing.Advice(index.Overall),
		TimeAdvice:  fishing.PlanBiteWindows(obs.Sunrise, obs.Sunset, obs.Temperature, obs.Description, now.Month()),
		Forecast:    fishing.SummarizeForecast(fc.Samples, now, a.days),
		GeneratedAt: now,
	}, nil
}

// Comparison is one row of a multi-place comparison. Exactly one of Report
// and Error is set.
type Comparison struct {
	City   string  `json:"city"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Compare builds reports for several cities concurrently. A failing city is
// reported in its row and does not abort the others.
func (a *Advisor) Compare(ctx context.Context, cities []string) ([]Comparison, error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(compareLimit)

	out := make([]Comparison, len(cities))
	for i, city := range cities {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					a.log.Error("compare panicked", "city", city, "recover", r)
					err = fmt.Errorf("compare for %s panicked: %v", city, r)
				}
			}()

			out[i].City = city
			report, buildErr := a.ForCity(gCtx, city)
			if buildErr != nil {
				a.log.Warn("compare: report failed", "city", city, "err", buildErr)
				out[i].Error = UserMessage(buildErr)
				return nil
			}
			out[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparing %d cities: %w", len(cities), err)
	}
	return out, nil
}
