package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/fishcast/internal/advisor"
	"github.com/neexbeast/fishcast/internal/place"
)

// maxCompareCities bounds a single compare request.
const maxCompareCities = 8

// requestError is a client mistake reported back verbatim with a 400.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	resolver PlaceResolver
	reports  ReportBuilder
	cache    ReportCache
	aliases  AliasStore
	now      func() time.Time
	log      *slog.Logger
}

// NewHandlers constructs Handlers. cache may be nil, in which case every
// request builds a fresh report.
func NewHandlers(resolver PlaceResolver, reports ReportBuilder, cache ReportCache, log *slog.Logger) *Handlers {
	return &Handlers{
		resolver: resolver,
		reports:  reports,
		cache:    cache,
		now:      time.Now,
		log:      log,
	}
}

// WithAliases enables the alias maintenance routes.
func (h *Handlers) WithAliases(store AliasStore) *Handlers {
	h.aliases = store
	return h
}

// WithClock replaces time.Now (for tests).
func (h *Handlers) WithClock(now func() time.Time) *Handlers {
	h.now = now
	return h
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code and the single user-facing message.
func writeError(w http.ResponseWriter, err error) {
	var re *requestError
	if errors.As(err, &re) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": re.msg})
		return
	}
	writeJSON(w, advisor.HTTPStatus(err), map[string]string{"error": advisor.UserMessage(err)})
}

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

func (h *Handlers) cached(ctx context.Context, key string) *advisor.Report {
	if h.cache == nil {
		return nil
	}
	report, err := h.cache.Get(ctx, key)
	if err != nil {
		h.log.Error("cache get failed", "key", key, "err", err)
		return nil
	}
	return report
}

// store overwrites the entry in place so a failed write keeps the previous report.
func (h *Handlers) store(ctx context.Context, key string, report *advisor.Report) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, key, report); err != nil {
		h.log.Warn("cache set failed", "key", key, "err", err)
	}
}

// reportFor serves the cached report under key when there is one, otherwise
// builds and caches a fresh one. refresh skips the cache read.
func (h *Handlers) reportFor(ctx context.Context, key string, refresh bool, build func() (*advisor.Report, error)) (*advisor.Report, error) {
	if !refresh {
		if report := h.cached(ctx, key); report != nil {
			return report, nil
		}
	}

	report, err := build()
	if err != nil {
		return nil, err
	}

	h.store(ctx, key, report)
	return report, nil
}

// GetAdvice handles GET /api/v1/places/{city}/advice.
// Cache hit → return. Miss → build from the provider, cache, return.
func (h *Handlers) GetAdvice(w http.ResponseWriter, r *http.Request) {
	h.serveCity(w, r, false)
}

// RefreshAdvice handles POST /api/v1/places/{city}/advice/refresh.
// Always rebuilds and replaces the cached report.
func (h *Handlers) RefreshAdvice(w http.ResponseWriter, r *http.Request) {
	h.serveCity(w, r, true)
}

func (h *Handlers) serveCity(w http.ResponseWriter, r *http.Request, refresh bool) {
	city := chi.URLParam(r, "city")

	p, err := h.resolver.ResolveByName(r.Context(), city)
	if err != nil {
		h.log.Warn("resolve city failed", "city", city, "err", err)
		writeError(w, err)
		return
	}

	report, err := h.reportFor(r.Context(), p.Key(), refresh, func() (*advisor.Report, error) {
		return h.reports.ForPlace(r.Context(), p)
	})
	if err != nil {
		h.log.Error("build report failed", "city", city, "query", p.Query, "err", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

type nearbyResponse struct {
	Report *advisor.Report `json:"report"`
	// Notice explains why the default place was served instead of the user's location.
	Notice string `json:"notice,omitempty"`
}

// GetNearbyAdvice handles GET /api/v1/advice/nearby?lat=&lon=&geo_error=.
// A geolocation failure, or no coordinates at all, serves the default place.
func (h *Handlers) GetNearbyAdvice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	geoErr := place.ParseGeolocationError(q.Get("geo_error"))
	if geoErr == nil && q.Get("lat") == "" && q.Get("lon") == "" {
		geoErr = place.ErrGeolocationUnavailable
	}

	if geoErr != nil {
		def := h.reports.DefaultPlace()
		report, err := h.reportFor(r.Context(), def.Key(), false, func() (*advisor.Report, error) {
			return h.reports.ForGeolocationFailure(r.Context(), geoErr)
		})
		if err != nil {
			h.log.Error("build default report failed", "err", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nearbyResponse{Report: report, Notice: advisor.UserMessage(geoErr)})
		return
	}

	lat, lon, err := parseCoordinates(q.Get("lat"), q.Get("lon"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Reports are shared across the Key() grid cell (about 1 km); the caller
	// still gets back their own coordinates.
	key := place.Place{Lat: &lat, Lon: &lon}.Key()
	report, err := h.reportFor(r.Context(), key, false, func() (*advisor.Report, error) {
		return h.reports.ForCoordinates(r.Context(), lat, lon)
	})
	if err != nil {
		h.log.Error("build nearby report failed", "lat", lat, "lon", lon, "err", err)
		writeError(w, err)
		return
	}

	served := *report
	served.Place.Lat, served.Place.Lon = &lat, &lon
	writeJSON(w, http.StatusOK, nearbyResponse{Report: &served})
}

func parseCoordinates(latStr, lonStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, badRequest("invalid latitude %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, 0, badRequest("invalid longitude %q", lonStr)
	}
	return lat, lon, nil
}

// CompareAdvice handles GET /api/v1/advice/compare?city=a&city=b.
// Rows come back in request order; a failing city carries its message.
func (h *Handlers) CompareAdvice(w http.ResponseWriter, r *http.Request) {
	var cities []string
	for _, c := range r.URL.Query()["city"] {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}

	switch {
	case len(cities) == 0:
		writeError(w, badRequest("at least one city is required"))
		return
	case len(cities) > maxCompareCities:
		writeError(w, badRequest("at most %d cities can be compared", maxCompareCities))
		return
	}

	rows, err := h.reports.Compare(r.Context(), cities)
	if err != nil {
		h.log.Error("compare failed", "cities", cities, "err", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": rows})
}
