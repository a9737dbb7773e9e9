package api

import (
	"context"

	"github.com/neexbeast/fishcast/internal/advisor"
	"github.com/neexbeast/fishcast/internal/place"
	"github.com/neexbeast/fishcast/internal/storage"
)

// ReportCache defines the cache operations needed by handlers.
type ReportCache interface {
	Get(ctx context.Context, placeKey string) (*advisor.Report, error)
	Set(ctx context.Context, placeKey string, report *advisor.Report) error
}

// AliasStore maintains the place alias table.
// *storage.Repository satisfies this interface.
type AliasStore interface {
	UpsertAlias(ctx context.Context, alias, query string) error
	ListAliases(ctx context.Context) ([]storage.Alias, error)
}

var _ AliasStore = (*storage.Repository)(nil)

// PlaceResolver turns a city path segment into a place.
type PlaceResolver interface {
	ResolveByName(ctx context.Context, name string) (place.Place, error)
}

// ReportBuilder defines the report operations needed by handlers.
// *advisor.Advisor satisfies this interface.
type ReportBuilder interface {
	ForPlace(ctx context.Context, p place.Place) (*advisor.Report, error)
	ForCoordinates(ctx context.Context, lat, lon float64) (*advisor.Report, error)
	ForGeolocationFailure(ctx context.Context, cause error) (*advisor.Report, error)
	DefaultPlace() place.Place
	Compare(ctx context.Context, cities []string) ([]advisor.Comparison, error)
}

var _ ReportBuilder = (*advisor.Advisor)(nil)
