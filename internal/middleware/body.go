// internal/middleware/body.go
//
// JSON body decoding.
//
// Context
// -------
// JSONBody reads a JSON object into a map[string]any and stores it in the
// request context, where ValidateBody and handlers pick it up with BodyFrom.
//
//   • Non-JSON content types and empty bodies yield an empty map.
//   • Anything that is not a single JSON object (malformed text, null, an
//     array, trailing data) is rejected with 400 INVALID_JSON.
//   • Bodies over MaxBodyBytes are rejected with 413.
//
// Numbers decode as float64.

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/response"
)

// MaxBodyBytes caps request bodies at 100 KiB.
const MaxBodyBytes = 100 << 10

type bodyKey struct{}

// JSONBody decodes the request body for later stages.
func JSONBody(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := map[string]any{}

			if isJSON(r.Header.Get("Content-Type")) && r.Body != nil {
				raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
				if err != nil {
					var tooBig *http.MaxBytesError
					if errors.As(err, &tooBig) {
						log.Warnw("request body too large",
							"url", r.URL.RequestURI(),
							"method", r.Method,
							"limit", tooBig.Limit,
							"request_id", RequestIDFrom(r.Context()),
						)
						_ = response.Fail(w, http.StatusRequestEntityTooLarge, response.CodePayloadTooLarge, "Request body too large")
						return
					}
					_ = response.Fail(w, http.StatusBadRequest, response.CodeInvalidJSON, "Could not read request body")
					return
				}

				if len(bytes.TrimSpace(raw)) > 0 {
					var obj map[string]any
					var decoded any
					if err := json.Unmarshal(raw, &decoded); err == nil {
						obj, _ = decoded.(map[string]any)
					}
					if obj == nil {
						log.Warnw("invalid JSON body",
							"url", r.URL.RequestURI(),
							"method", r.Method,
							"request_id", RequestIDFrom(r.Context()),
						)
						_ = response.Fail(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be a JSON object")
						return
					}
					payload = obj
				}
			}

			ctx := context.WithValue(r.Context(), bodyKey{}, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFrom returns the payload stored by JSONBody, or nil when JSONBody did
// not run.
func BodyFrom(ctx context.Context) map[string]any {
	m, _ := ctx.Value(bodyKey{}).(map[string]any)
	return m
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
