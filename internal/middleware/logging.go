// internal/middleware/logging.go
//
// Access logging.
//
// Two records per request: "Incoming request" when the request arrives and
// "HTTP Request" once the response is complete, carrying status and latency.
// Both are tagged with the request ID so they can be joined downstream.

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs each request through log.
func RequestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := RequestIDFrom(r.Context())

			log.Infow("Incoming request",
				"request_id", reqID,
				"method", r.Method,
				"url", r.URL.RequestURI(),
				"user_agent", r.UserAgent(),
				"ip", r.RemoteAddr,
			)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.Infow("HTTP Request",
					"request_id", reqID,
					"method", r.Method,
					"url", r.URL.RequestURI(),
					"status_code", status,
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"user_agent", r.UserAgent(),
					"ip", r.RemoteAddr,
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
