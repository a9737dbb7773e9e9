package place

import (
	"errors"
	"fmt"
	"strconv"
)

// Geolocation failures reported by the browser. Callers fall back to the
// default place for all of them.
var (
	ErrGeolocationDenied      = errors.New("geolocation permission denied")
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	ErrGeolocationTimeout     = errors.New("geolocation timed out")
)

// ParseGeolocationError maps a W3C GeolocationPositionError code (1 denied,
// 2 unavailable, 3 timeout) or its name to an error. An empty input is nil.
func ParseGeolocationError(code string) error {
	switch code {
	case "":
		return nil
	case "1", "denied", "PERMISSION_DENIED":
		return ErrGeolocationDenied
	case "2", "unavailable", "POSITION_UNAVAILABLE":
		return ErrGeolocationUnavailable
	case "3", "timeout", "TIMEOUT":
		return ErrGeolocationTimeout
	}
	if _, err := strconv.Atoi(code); err == nil {
		return fmt.Errorf("code %s: %w", code, ErrGeolocationUnavailable)
	}
	return fmt.Errorf("%q: %w", code, ErrGeolocationUnavailable)
}
