package middleware

import (
	"net/http"
	"strings"

	"github.com/yanizio/apidemo/internal/config"
)

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS applies the configured cross-origin policy.  Origin "*" allows every
// caller; otherwise Origin is a comma-separated allow list and a matching
// request origin is echoed back.  Credentials are never advertised together
// with the wildcard, which browsers reject.  Preflight OPTIONS requests end
// here with 200.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	wildcard := strings.TrimSpace(cfg.Origin) == "*"
	allowed := map[string]bool{}
	for _, o := range strings.Split(cfg.Origin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")

			switch {
			case wildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				if cfg.Credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			default:
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
