package weather_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/fishcast/internal/place"
	"github.com/neexbeast/fishcast/internal/weather"
)

// 2025-06-01 04:00:00 UTC, noon in Beijing.
const noonUTC8 = 1748750400

func currentHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":     "Beijing",
			"dt":       noonUTC8,
			"timezone": 28800,
			"main": map[string]any{
				"temp":     22.5,
				"pressure": 1016,
				"humidity": 60,
			},
			"weather":    []map[string]any{{"description": "多云", "icon": "03d"}},
			"wind":       map[string]any{"speed": 2.5, "deg": 135},
			"clouds":     map[string]any{"all": 40},
			"visibility": 8000,
			"sys": map[string]any{
				"country": "CN",
				"sunrise": noonUTC8 - 7*3600,
				"sunset":  noonUTC8 + 7*3600 + 1800,
			},
		})
	}
}

func forecastHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"city": map[string]any{"name": "Beijing", "timezone": 28800},
			"list": []map[string]any{
				{
					"dt":      noonUTC8,
					"main":    map[string]any{"temp": 24.0, "pressure": 1012, "sea_level": 1014, "humidity": 50},
					"weather": []map[string]any{{"description": "晴", "icon": "01d"}},
					"wind":    map[string]any{"speed": 5.0, "deg": 90},
					"clouds":  map[string]any{"all": 5},
				},
				{
					"dt":      noonUTC8 + 3*3600,
					"main":    map[string]any{"temp": 26.0, "pressure": 1011, "humidity": 45},
					"weather": []map[string]any{},
					"wind":    map[string]any{"speed": 1.0, "deg": 180},
					"clouds":  map[string]any{"all": 20},
				},
			},
		})
	}
}

func statusHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(status), status)
	}
}

func TestCurrent_ConvertsUnits(t *testing.T) {
	srv := httptest.NewServer(currentHandler(t))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	cur, err := c.Current(context.Background(), place.Place{Query: "Beijing"})
	require.NoError(t, err)

	obs := cur.Observation
	assert.Equal(t, 22.5, obs.Temperature)
	assert.Equal(t, 60, obs.Humidity)
	assert.Equal(t, 1016.0, obs.Pressure)
	assert.InDelta(t, 9.0, obs.WindSpeed, 1e-9)
	assert.Equal(t, 135, obs.WindDirection)
	assert.Equal(t, 40, obs.CloudCover)
	assert.Equal(t, "多云", obs.Description)
	assert.Equal(t, "03d", obs.Icon)
	require.NotNil(t, obs.Visibility)
	assert.Equal(t, 8.0, *obs.Visibility)

	assert.Equal(t, 12, obs.Time.Hour())
	assert.Equal(t, 5, obs.Sunrise.Hour())
	assert.Equal(t, 19, obs.Sunset.Hour())
	assert.Equal(t, 30, obs.Sunset.Minute())

	_, offset := obs.Time.Zone()
	assert.Equal(t, 28800, offset)
	assert.Equal(t, "Beijing", cur.Name)
	assert.Equal(t, "CN", cur.Country)
}

func TestCurrent_QueriesByCoordinates(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{"lat": q.Get("lat"), "lon": q.Get("lon"), "q": q.Get("q")}
		currentHandler(t)(w, r)
	}))
	defer srv.Close()

	lat, lon := 38.8671, 115.4845
	c := weather.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Current(context.Background(), place.Place{Query: "Baoding", Lat: &lat, Lon: &lon})
	require.NoError(t, err)

	assert.Equal(t, "38.8671", gotQuery["lat"])
	assert.Equal(t, "115.4845", gotQuery["lon"])
	assert.Empty(t, gotQuery["q"])
}

func TestCurrent_NotFound(t *testing.T) {
	srv := httptest.NewServer(statusHandler(http.StatusNotFound))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Current(context.Background(), place.Place{Query: "Atlantis"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrPlaceNotFound))
}

func TestCurrent_RateLimited(t *testing.T) {
	srv := httptest.NewServer(statusHandler(http.StatusTooManyRequests))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Current(context.Background(), place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrRateLimited))
}

func TestCurrent_ServerError(t *testing.T) {
	srv := httptest.NewServer(statusHandler(http.StatusInternalServerError))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Current(context.Background(), place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.False(t, errors.Is(err, weather.ErrPlaceNotFound))
}

func TestCurrent_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(currentHandler(t))
	srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Current(context.Background(), place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrNetworkFailure))
}

func TestCurrent_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c := weather.NewClientWithURL(slow.URL, "test-key")
	_, err := c.Current(ctx, place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrNetworkFailure))
}

func TestForecast_Samples(t *testing.T) {
	srv := httptest.NewServer(forecastHandler(t))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	fc, err := c.Forecast(context.Background(), place.Place{Query: "Beijing"})
	require.NoError(t, err)
	require.Len(t, fc.Samples, 2)

	first := fc.Samples[0]
	assert.Equal(t, 12, first.Time.Hour())
	assert.Equal(t, 1014.0, first.Pressure, "sea-level pressure is preferred")
	assert.InDelta(t, 18.0, first.WindSpeed, 1e-9)
	assert.Equal(t, "晴", first.Description)
	assert.Nil(t, first.Visibility)
	assert.True(t, first.Sunrise.IsZero())

	second := fc.Samples[1]
	assert.Equal(t, 1011.0, second.Pressure)
	assert.Empty(t, second.Description)
	assert.Equal(t, 15, second.Time.Hour())
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/reverse", r.URL.Path)
		assert.Equal(t, "38.8671", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"name":        "Baoding",
			"local_names": map[string]string{"zh": "保定市莲池区"},
			"country":     "CN",
			"lat":         38.8671,
			"lon":         115.4845,
		}})
	}))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	got, err := c.ReverseGeocode(context.Background(), 38.8671, 115.4845)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Baoding", got[0].Name)
	assert.Equal(t, "保定市莲池区", got[0].LocalNames["zh"])
}

func TestReverseGeocode_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := weather.NewClientWithURL(srv.URL, "test-key")
	got, err := c.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_LimiterHonoursContext(t *testing.T) {
	srv := httptest.NewServer(currentHandler(t))
	defer srv.Close()

	c := weather.NewClient("test-key", weather.Options{BaseURL: srv.URL, RPS: 0.01, Burst: 1})

	_, err := c.Current(context.Background(), place.Place{Query: "Beijing"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Current(ctx, place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrRateLimited))
}

func TestClient_LimiterCancelledContextIsNotRateLimited(t *testing.T) {
	srv := httptest.NewServer(currentHandler(t))
	defer srv.Close()

	c := weather.NewClient("test-key", weather.Options{BaseURL: srv.URL, RPS: 1, Burst: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Current(ctx, place.Place{Query: "Beijing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, weather.ErrRateLimited))
}
