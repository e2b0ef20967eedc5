// internal/middleware/recover.go
//
// Panic recovery.
//
// A panic anywhere below this stage becomes a 500 INTERNAL_ERROR envelope
// and one error record with the stack.  The panic message and stack are
// echoed to the client only in development.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection
// quietly, as it expects.

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/metrics"
	"github.com/yanizio/apidemo/internal/response"
)

// Recoverer turns handler panics into JSON 500 responses.
func Recoverer(log *zap.SugaredLogger, development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				metrics.PanicsTotal.Inc()
				msg := fmt.Sprint(rec)
				stack := string(debug.Stack())

				log.Errorw("Error caught by middleware",
					"error", msg,
					"stack", stack,
					"url", r.URL.RequestURI(),
					"method", r.Method,
					"request_id", RequestIDFrom(r.Context()),
				)

				body := response.Failure{Error: "Internal Server Error", Code: response.CodeInternal}
				if development {
					body.Error = msg
					body.Stack = stack
				}
				_ = response.WriteJSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
