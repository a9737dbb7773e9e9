package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is satisfied by adapters around the Postgres pool and Redis client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks the optional
// backing stores. A nil pinger is reported as "disabled" and does not degrade
// the status.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		check := func(name string, p Pinger) string {
			if p == nil {
				return "disabled"
			}
			if err := p.Ping(ctx); err != nil {
				log.Error("health check: ping failed", "store", name, "err", err)
				status = http.StatusServiceUnavailable
				return "error"
			}
			return "ok"
		}

		dbStatus := check("db", db)
		redisStatus := check("redis", redis)

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
