// Package weather fetches current conditions, forecasts and reverse geocoding
// from OpenWeatherMap and normalizes them into fishing observations.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/neexbeast/fishcast/internal/place"
)

const httpTimeout = 10 * time.Second

// Error kinds. None of them are retried.
var (
	ErrPlaceNotFound  = errors.New("place not found by weather provider")
	ErrRateLimited    = errors.New("weather provider rate limit reached")
	ErrNetworkFailure = errors.New("weather provider unreachable")
)

const (
	owmDefaultURL = "https://api.openweathermap.org"
	defaultLang   = "zh_cn"
)

// Options tune a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL string
	Lang    string
	// RPS caps outbound requests per second; 0 disables the limiter.
	RPS   float64
	Burst int
}

// Client talks to the OpenWeatherMap current, forecast and geocoding APIs.
type Client struct {
	apiKey  string
	baseURL string
	lang    string
	limiter *rate.Limiter
	client  *http.Client
}

// NewClient constructs a Client against the production API.
func NewClient(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = owmDefaultURL
	}
	if opts.Lang == "" {
		opts.Lang = defaultLang
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: opts.BaseURL,
		lang:    opts.Lang,
		client:  &http.Client{Timeout: httpTimeout},
	}
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return c
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return NewClient(apiKey, Options{BaseURL: baseURL})
}

// doGet performs a GET request and decodes the JSON response into dst.
func (c *Client) doGet(ctx context.Context, path string, params url.Values, dst any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			// A cancelled caller is not a throttled one.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("%w: waiting for limiter: %w", ErrRateLimited, err)
		}
	}

	params.Set("appid", c.apiKey)
	rawURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrNetworkFailure, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, ErrPlaceNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("GET %s: %w", path, ErrRateLimited)
	default:
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}

// placeParams builds the location query for p: coordinates when present,
// otherwise the provider query string.
func (c *Client) placeParams(p place.Place) url.Values {
	v := url.Values{}
	if p.HasCoordinates() {
		v.Set("lat", strconv.FormatFloat(*p.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(*p.Lon, 'f', -1, 64))
	} else {
		v.Set("q", p.Query)
	}
	v.Set("units", "metric")
	v.Set("lang", c.lang)
	return v
}

type geoEntry struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Country    string            `json:"country"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
}

// ReverseGeocode returns the places nearest to lat/lon, best match first.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]place.Candidate, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("limit", "1")

	var raw []geoEntry
	if err := c.doGet(ctx, "/geo/1.0/reverse", params, &raw); err != nil {
		slog.Warn("reverse geocoding failed", "lat", lat, "lon", lon, "err", err)
		return nil, fmt.Errorf("openweathermap reverse geocode: %w", err)
	}

	out := make([]place.Candidate, 0, len(raw))
	for _, e := range raw {
		out = append(out, place.Candidate{
			Name:       e.Name,
			LocalNames: e.LocalNames,
			Country:    e.Country,
			Lat:        e.Lat,
			Lon:        e.Lon,
		})
	}
	return out, nil
}

var _ place.Geocoder = (*Client)(nil)
