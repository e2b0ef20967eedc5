// internal/routing/router.go
//
// Root router.
//
// Context
// -------
// New assembles the process-wide chi router once at startup.  Middleware
// order matters:
//
//  1. RealIP            – trust X-Forwarded-For / X-Real-IP for RemoteAddr.
//  2. RequestID         – every later record can carry the ID.
//  3. RequestLogger     – sees the final status, including recovered panics.
//  4. Instrument        – Prometheus counter and latency per route pattern.
//  5. Recoverer         – panics become 500 INTERNAL_ERROR.
//  6. CORS              – answers preflight before any handler work.
//  7. Security          – response headers, HSTS in production only.
//  8. requestinfo       – UA, language, IP, and Geo in the context.
//  9. Timeout           – request context deadline from API_TIMEOUT.
//
// Components are mounted under their own prefixes.  The JSON 404 and 405
// handlers are registered before mounting so chi copies them into every
// sub-router.  /metrics is served by promhttp from the global registry.

package routing

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/config"
	"github.com/yanizio/apidemo/internal/metrics"
	"github.com/yanizio/apidemo/internal/middleware"
	"github.com/yanizio/apidemo/internal/requestinfo"
)

// Deps are the collaborators the router wires together.  Geo may be nil.
type Deps struct {
	Config     *config.Config
	Log        *zap.SugaredLogger
	Geo        requestinfo.GeoLookup
	Components []component.Component
}

// New builds the root handler.
func New(d Deps) (http.Handler, error) {
	srv := d.Config.Server()

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.RequestLogger(d.Log),
		metrics.Instrument,
		middleware.Recoverer(d.Log, d.Config.IsDevelopment()),
		middleware.CORS(srv.CORS),
		middleware.Security(d.Config.IsProduction()),
		requestinfo.Enrich(d.Geo, d.Log),
		chimw.Timeout(srv.Timeout),
	)

	r.NotFound(middleware.NotFound(d.Log))
	r.MethodNotAllowed(middleware.MethodNotAllowed(d.Log))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if err := component.Mount(r, d.Components...); err != nil {
		return nil, fmt.Errorf("mount components: %w", err)
	}

	d.Log.Debugw("router built",
		"components", len(d.Components),
		"timeout", srv.Timeout,
		"cors_origin", srv.CORS.Origin,
	)
	return r, nil
}
