package api

import (
	"context"
	"net/http"
)

// Pinger is the slice of the database client the health endpoint needs.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
