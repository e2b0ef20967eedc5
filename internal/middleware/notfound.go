package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/response"
)

// NotFound answers requests that matched no route.
func NotFound(log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := fmt.Sprintf("Route %s %s not found", r.Method, r.URL.RequestURI())
		log.Infow("route not found",
			"method", r.Method,
			"url", r.URL.RequestURI(),
			"request_id", RequestIDFrom(r.Context()),
		)
		_ = response.Fail(w, http.StatusNotFound, response.CodeNotFound, msg)
	}
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path)
		log.Infow("method not allowed",
			"method", r.Method,
			"url", r.URL.RequestURI(),
			"request_id", RequestIDFrom(r.Context()),
		)
		_ = response.Fail(w, http.StatusMethodNotAllowed, response.CodeMethodNotAllowed, msg)
	}
}
