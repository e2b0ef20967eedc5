//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight types that collect per-request metadata (content type,
//  user-agent fingerprint, language, authorization presence, IP plus
//  geolocation, and timestamp).  These structs are inert.  They hold no
//  handles or large buffers, so they are safe to log or JSON-encode.
//
//  Dependencies
//  • internal/ua                        (UA parsing via uasurfer)
//  • github.com/oschwald/geoip2-golang  (MaxMind lookup, optional)
//

package requestinfo

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/oschwald/geoip2-golang"

	"github.com/yanizio/apidemo/internal/ua"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// Info is attached to the request context by Enrich.
type Info struct {
	ContentType    string    `json:"contentType,omitempty"`
	UA             ua.Info   `json:"userAgent"`
	AcceptLanguage string    `json:"acceptLanguage,omitempty"`
	PrimaryLang    string    `json:"primaryLang,omitempty"` // first tag, "en-us"
	Authorization  string    `json:"authorization"`         // "present" or "missing"
	IP             string    `json:"ip,omitempty"`
	Geo            Geo       `json:"geo"`
	Timestamp      time.Time `json:"timestamp"`
}

// Geo holds IP-based geolocation hints.
// These are best-effort and may be empty if the DB has no match.
type Geo struct {
	CountryISO string `json:"countryIso,omitempty"` // "US", "CA", "FR", ...
	City       string `json:"city,omitempty"`       // "Chicago", "Paris", ...
}

// GeoLookup resolves an address to Geo.  *GeoDB implements it; tests and
// deployments without a database pass nil.
type GeoLookup interface {
	Lookup(ip net.IP) Geo
}

//
//  -----------------------------
//  MaxMind reader
//  -----------------------------
//

// GeoDB wraps a GeoLite2-City reader.  It is safe for concurrent reads,
// which is all we ever perform.
type GeoDB struct {
	r *geoip2.Reader
}

// OpenGeo opens the GeoLite2-City database at path.
func OpenGeo(path string) (*GeoDB, error) {
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open GeoLite2 DB: %w", err)
	}
	return &GeoDB{r: r}, nil
}

// Lookup returns best-effort Geo data.  Misses yield the zero value.
func (g *GeoDB) Lookup(ip net.IP) Geo {
	if g == nil || g.r == nil || ip == nil {
		return Geo{}
	}
	rec, err := g.r.City(ip)
	if err != nil {
		return Geo{}
	}
	return Geo{
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}

// Close releases the underlying database.
func (g *GeoDB) Close() error {
	if g == nil || g.r == nil {
		return nil
	}
	return g.r.Close()
}

//
//  -----------------------------
//  Public helper: FromContext
//  -----------------------------
//

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich.
// It returns nil if the middleware has not run.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// primaryLang extracts the first language tag before any ";q=" weight.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag, _, _ := strings.Cut(al, ",")
	tag, _, _ = strings.Cut(tag, ";")
	return strings.ToLower(strings.TrimSpace(tag))
}
