// Package place turns free-text city names and coordinates into places the
// weather provider understands.
package place

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ErrNotFound is returned when no place matches the input.
var ErrNotFound = errors.New("place not found")

// Place identifies a location for the weather provider. When Lat and Lon are
// set the provider is queried by coordinates, otherwise by Query.
type Place struct {
	Name  string   `json:"name"`
	Query string   `json:"query"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
}

// HasCoordinates reports whether the place carries a coordinate pair.
func (p Place) HasCoordinates() bool {
	return p.Lat != nil && p.Lon != nil
}

// Key is a stable identifier for caching.
func (p Place) Key() string {
	if p.HasCoordinates() {
		return fmt.Sprintf("%.2f,%.2f", *p.Lat, *p.Lon)
	}
	return strings.ToLower(strings.TrimSpace(p.Query))
}

// Candidate is one reverse-geocoding match.
type Candidate struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Country    string            `json:"country"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
}

// Geocoder looks up place candidates for a coordinate pair.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]Candidate, error)
}

// AliasSource supplies extra name mappings on top of the embedded table.
// found is false when the alias is unknown.
type AliasSource interface {
	LookupAlias(ctx context.Context, alias string) (query string, found bool, err error)
}

// Resolver resolves names and coordinates into places.
type Resolver struct {
	geocoder Geocoder
	aliases  AliasSource
	byQuery  map[string]string
	log      *slog.Logger
}

// NewResolver constructs a Resolver. aliases may be nil.
func NewResolver(geocoder Geocoder, aliases AliasSource, log *slog.Logger) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		aliases:  aliases,
		byQuery:  reverseNames(cityNames),
		log:      log,
	}
}

// reverseNames maps each romanization back to a Chinese name. When two
// cities share a romanization the lexically smallest Chinese name wins.
func reverseNames(names map[string]string) map[string]string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(names))
	for _, k := range keys {
		if _, ok := out[names[k]]; !ok {
			out[names[k]] = k
		}
	}
	return out
}

// ResolveByName maps a city name to the provider's identifier. Known Chinese
// names use the embedded table, then the alias source; anything else passes
// through unchanged for the provider to resolve.
func (r *Resolver) ResolveByName(ctx context.Context, name string) (Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Place{}, fmt.Errorf("resolving empty city name: %w", ErrNotFound)
	}

	if q, ok := lookupName(name); ok {
		return Place{Name: name, Query: q}, nil
	}

	if r.aliases != nil {
		q, found, err := r.aliases.LookupAlias(ctx, name)
		if err != nil {
			r.log.Warn("alias lookup failed, passing name through", "name", name, "err", err)
		} else if found {
			return Place{Name: name, Query: q}, nil
		}
	}

	return Place{Name: name, Query: name}, nil
}

func lookupName(name string) (string, bool) {
	if q, ok := cityNames[name]; ok {
		return q, true
	}
	q, ok := cityNames[strings.TrimSuffix(name, "市")]
	return q, ok
}

// ResolveByCoordinates reverse geocodes lat/lon into a named place that is
// still queried by coordinates.
func (r *Resolver) ResolveByCoordinates(ctx context.Context, lat, lon float64) (Place, error) {
	candidates, err := r.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocoding %.4f,%.4f: %w", lat, lon, err)
	}
	if len(candidates) == 0 {
		return Place{}, fmt.Errorf("reverse geocoding %.4f,%.4f: %w", lat, lon, ErrNotFound)
	}

	c := candidates[0]
	return Place{
		Name:  r.displayName(c),
		Query: c.Name,
		Lat:   &lat,
		Lon:   &lon,
	}, nil
}

// displayName prefers the Chinese local name without the 市 suffix. Names
// that still carry a district (区/县) fall back to the city the English name
// maps to, or to the English name itself.
func (r *Resolver) displayName(c Candidate) string {
	name := c.LocalNames["zh"]
	if name == "" {
		name = c.Name
	}
	name = strings.Replace(name, "市", "", 1)

	if hasDistrict(name) {
		if zh, ok := r.byQuery[c.Name]; ok {
			return zh
		}
		return c.Name
	}
	return name
}

func hasDistrict(name string) bool {
	return strings.Contains(name, "区") || strings.Contains(name, "县")
}

// Default returns the fallback place used when no location is available.
func Default(name string) Place {
	if q, ok := lookupName(name); ok {
		return Place{Name: name, Query: q}
	}
	return Place{Name: name, Query: name}
}
