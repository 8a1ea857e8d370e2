package api

import (
	"bytes"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"task-manager-api/internal/infrastructure/requestlog"
)

// RequestLogMiddleware records every request to the append-only request log
// before the handler runs. Log failures are reported to the process logger
// and never fail the request itself.
func RequestLogMiddleware(requestLog *requestlog.Logger, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload []byte
			if r.Body != nil {
				payload, _ = io.ReadAll(r.Body)
				r.Body.Close()
				// Restore the body for the handler
				r.Body = io.NopCloser(bytes.NewReader(payload))
			}

			if err := requestLog.Log(r.Method, r.URL.Path, payload); err != nil {
				logger.WithError(err).Warn("request log write failed")
			}

			next.ServeHTTP(w, r)
		})
	}
}
