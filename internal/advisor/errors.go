package advisor

import (
	"errors"
	"net/http"

	"github.com/neexbeast/fishcast/internal/place"
	"github.com/neexbeast/fishcast/internal/weather"
)

type errorKind struct {
	target  error
	status  int
	message string
}

// Checked in order; the first kind the error wraps wins.
var errorKinds = []errorKind{
	{weather.ErrPlaceNotFound, http.StatusNotFound, "City not found, please check the name and try again."},
	{place.ErrNotFound, http.StatusNotFound, "City not found, please check the name and try again."},
	{weather.ErrRateLimited, http.StatusTooManyRequests, "The weather service is busy, please try again in a minute."},
	{weather.ErrNetworkFailure, http.StatusBadGateway, "Could not reach the weather service, please check your connection and try again."},
	{place.ErrGeolocationDenied, http.StatusBadRequest, "Location permission was denied."},
	{place.ErrGeolocationUnavailable, http.StatusBadRequest, "Your location is unavailable."},
	{place.ErrGeolocationTimeout, http.StatusBadRequest, "Locating you timed out."},
}

const fallbackMessage = "Failed to load weather data, please try again later."

// UserMessage converts any error into the single message shown to the user.
func UserMessage(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.message
		}
	}
	return fallbackMessage
}

// HTTPStatus picks the response status for err.
func HTTPStatus(err error) int {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}
