// components/health/health.go
//
// Liveness probe.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/response"
)

// Version is reported by the probe.
const Version = "1.0.0"

// isoMillis always prints milliseconds, e.g. 2024-05-01T12:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var _ component.Component = (*Comp)(nil)

// Comp serves GET /health.
type Comp struct {
	now func() time.Time
}

// New returns the health component.
func New() *Comp { return &Comp{now: time.Now} }

func (c *Comp) Name() string   { return "health" }
func (c *Comp) Prefix() string { return "/health" }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_ = response.WriteJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "Server is running",
			"timestamp": c.now().UTC().Format(isoMillis),
			"version":   Version,
		})
	})
	return r
}
