// internal/middleware/validate.go
//
// Validation pipeline stages.
//
// Context
// -------
// ValidateBody and ValidateQuery run the schema evaluator and either pass
// the request on untouched or end it with exactly one response:
//
//   • Invalid input     → 400 with VALIDATION_ERROR / QUERY_VALIDATION_ERROR
//                         and the full issue list, logged at warn.
//   • Evaluator failure → 500 with VALIDATION_MIDDLEWARE_ERROR /
//                         QUERY_VALIDATION_MIDDLEWARE_ERROR and a generic
//                         message, logged at error with a stack.
//
// Logged payloads pass through internal/redact first.  The client still
// sees the values it submitted in `details`.

package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/metrics"
	"github.com/yanizio/apidemo/internal/redact"
	"github.com/yanizio/apidemo/internal/response"
	"github.com/yanizio/apidemo/internal/validation"
)

// ValidateBody checks the JSON body stored by JSONBody against schema.
func ValidateBody(schema validation.Schema, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := BodyFrom(r.Context())

			out, err := validation.EvaluateBody(schema, payload)
			if err != nil {
				log.Errorw("Validation middleware error",
					"error", err,
					zap.Stack("stack"),
					"url", r.URL.RequestURI(),
					"method", r.Method,
					"request_id", RequestIDFrom(r.Context()),
				)
				metrics.ValidationFailuresTotal.WithLabelValues(response.CodeValidationFault).Inc()
				_ = response.Fail(w, http.StatusInternalServerError,
					response.CodeValidationFault, "Internal server error during validation")
				return
			}
			if !out.Valid() {
				log.Warnw("Request validation failed",
					"url", r.URL.RequestURI(),
					"method", r.Method,
					"request_id", RequestIDFrom(r.Context()),
					"errors", logIssues(out.Issues),
					"body", redact.Payload(payload),
				)
				metrics.ValidationFailuresTotal.WithLabelValues(response.CodeValidation).Inc()
				_ = response.FailWithDetails(w, http.StatusBadRequest,
					response.CodeValidation, "Validation failed", response.FieldDetails(out.Issues))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidateQuery checks the URL query parameters against schema.
func ValidateQuery(schema validation.QuerySchema, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := r.URL.Query()

			out, err := validation.EvaluateQuery(schema, params)
			if err != nil {
				log.Errorw("Query validation middleware error",
					"error", err,
					zap.Stack("stack"),
					"url", r.URL.RequestURI(),
					"method", r.Method,
					"request_id", RequestIDFrom(r.Context()),
				)
				metrics.ValidationFailuresTotal.WithLabelValues(response.CodeQueryValidationFault).Inc()
				_ = response.Fail(w, http.StatusInternalServerError,
					response.CodeQueryValidationFault, "Internal server error during query validation")
				return
			}
			if !out.Valid() {
				log.Warnw("Query validation failed",
					"url", r.URL.RequestURI(),
					"method", r.Method,
					"request_id", RequestIDFrom(r.Context()),
					"errors", logIssues(out.Issues),
					"query", redact.Query(params),
				)
				metrics.ValidationFailuresTotal.WithLabelValues(response.CodeQueryValidation).Inc()
				_ = response.FailWithDetails(w, http.StatusBadRequest,
					response.CodeQueryValidation, "Query validation failed", response.QueryDetails(out.Issues))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// logIssues renders issues for the log with sensitive values masked.
func logIssues(issues []validation.Issue) []map[string]any {
	out := make([]map[string]any, len(issues))
	for i, is := range issues {
		out[i] = map[string]any{
			"field":   is.Field,
			"message": is.Message,
			"value":   redact.Value(is.Field, is.Value),
		}
	}
	return out
}
