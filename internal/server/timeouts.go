// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – API_TIMEOUT plus a grace period, so the handler-level
//     timeout answers first and the connection deadline only catches stragglers
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//
// This helper centralises those defaults so cmd/web doesn’t repeat boilerplate.
//

package server

import (
	"net/http"
	"time"
)

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	writeGrace  = 5 * time.Second
)

// New constructs an *http.Server for handler.  apiTimeout is the per-request
// budget enforced by the router.
func New(addr string, handler http.Handler, apiTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      apiTimeout + writeGrace,
		IdleTimeout:       idleTimeout,
	}
}
