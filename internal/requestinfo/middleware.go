// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *Info.
//
/*
Context
--------
This handler sits after logging, metrics, and CORS, and before the route
handlers.  For every request it:

  1. Records Content-Type and whether an Authorization header is present
     (never its value).
  2. Parses the User-Agent header (memoized) and Accept-Language list.
  3. Extracts the left-most client IP from X-Forwarded-For or X-Real-IP,
     falling back to `r.RemoteAddr`.
  4. Performs a GeoLite2 lookup when a database was configured.
  5. Stores a `*Info` value in `request.Context` under an unexported key,
     so handlers can read it without reparsing.

Instrumentation
---------------
At debug level each invocation logs client IP, country, browser, device,
and bot flag.
*/
package requestinfo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/cache"
	"github.com/yanizio/apidemo/internal/ua"
)

// uaCacheSize bounds the per-middleware User-Agent memo.
const uaCacheSize = 1024

/*──────────────────────────── middleware ───────────────────────────────────*/

// Enrich returns middleware that attaches *Info and forwards.  geo may be
// nil.  Parsed User-Agents are memoized in an LRU.
func Enrich(geo GeoLookup, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	agents := cache.New[string, ua.Info](uaCacheSize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			al := r.Header.Get("Accept-Language")

			info := &Info{
				ContentType:    r.Header.Get("Content-Type"),
				UA:             agents.GetOrAdd(r.UserAgent(), ua.Parse),
				AcceptLanguage: al,
				PrimaryLang:    primaryLang(al),
				Authorization:  "missing",
				Timestamp:      time.Now().UTC(),
			}
			if r.Header.Get("Authorization") != "" {
				info.Authorization = "present"
			}
			if ip != nil {
				info.IP = ip.String()
				if geo != nil {
					info.Geo = geo.Lookup(ip)
				}
			}

			log.Debugw("request info",
				"ip", info.IP,
				"country", info.Geo.CountryISO,
				"browser", info.UA.Browser,
				"device", info.UA.Device,
				"bot", info.UA.IsBot,
				"path", r.URL.Path,
			)

			ctx := context.WithValue(r.Context(), ctxKey{}, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

/*──────────────────────────── client IP helper ─────────────────────────────*/

// clientIP extracts the left-most address from X-Forwarded-For or
// X-Real-IP, falling back to r.RemoteAddr ("ip:port" or bare IP).
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(r.RemoteAddr)
}
