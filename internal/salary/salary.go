// Package salary tracks how much of a monthly salary has been earned since a
// start instant.
package salary

import (
	"context"
	"errors"
	"math"
	"time"
)

// CelebrationStep is the earned amount between celebrations.
const CelebrationStep = 100

// ErrInvalidSalary is returned for a non-positive monthly salary.
var ErrInvalidSalary = errors.New("monthly salary must be positive")

// Session is one running ticker. It is a value: Tick returns the next state
// instead of mutating the receiver.
type Session struct {
	MonthlySalary float64   `json:"monthly_salary"`
	StartedAt     time.Time `json:"started_at"`
	Now           time.Time `json:"now"`
	Earned        float64   `json:"earned"`
	Celebrations  int       `json:"celebrations"`
}

// PerMinute is the salary earned per minute, assuming a 30-day month worked
// around the clock.
func PerMinute(monthly float64) float64 {
	return monthly / 30 / 24 / 60
}

// Start begins a session at now.
func Start(monthly float64, now time.Time) (Session, error) {
	if monthly <= 0 || math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return Session{}, ErrInvalidSalary
	}
	return Session{MonthlySalary: monthly, StartedAt: now, Now: now}, nil
}

// Tick advances the session to now. The second result is true when the
// earned amount crossed a new multiple of CelebrationStep.
func (s Session) Tick(now time.Time) (Session, bool) {
	minutes := now.Sub(s.StartedAt).Minutes()
	if minutes < 0 {
		minutes = 0
	}

	next := s
	next.Now = now
	next.Earned = PerMinute(s.MonthlySalary) * minutes

	reached := int(math.Floor(next.Earned / CelebrationStep))
	if reached > s.Celebrations {
		next.Celebrations = reached
		return next, true
	}
	return next, false
}

// DefaultInterval is the display refresh used when Run gets a non-positive interval.
const DefaultInterval = time.Second

// Run ticks the session every interval until ctx is done, handing each new
// state to fn. It returns the last state.
func Run(ctx context.Context, s Session, interval time.Duration, fn func(s Session, celebrate bool)) Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s
		case now := <-ticker.C:
			var celebrate bool
			s, celebrate = s.Tick(now)
			fn(s, celebrate)
		}
	}
}
