// components/client/client.go
//
// Client component – echoes what the server learned about the caller:
// content type, parsed User-Agent, language, Authorization presence, IP,
// and Geo hints.  Useful when debugging proxies and CORS setups.
package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/requestinfo"
	"github.com/yanizio/apidemo/internal/response"
)

// compile-time assertion
var _ component.Component = (*Comp)(nil)

// Comp implements component.Component; no state needed.
type Comp struct{}

func (c *Comp) Name() string   { return "client" }
func (c *Comp) Prefix() string { return "/api/v1/client" }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		ri := requestinfo.FromContext(r.Context())
		if ri == nil {
			_ = response.Fail(w, http.StatusInternalServerError, response.CodeInternal, "request info not available")
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, response.Envelope{Success: true, Data: ri})
	})

	return r
}
