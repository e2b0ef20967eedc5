// internal/component/registry.go
//
// Component contract and mounting.
//
// Each concrete component lives under components/<name>, is constructed in
// cmd/web with the dependencies it needs, and is handed to the router
// builder.  Mount attaches every component's Routes() under its own Prefix.
// chi panics when two routers claim the same pattern, so duplicates are
// reported as an error before anything is mounted.

package component

import (
	"fmt"
	"sort"

	"github.com/go-chi/chi/v5"
)

// Component contract.
//
// Routes() returns a router relative to Prefix(), e.g. a users component
// with Prefix "/api/v1/users" registers "/" and "/search":
//
//	r := chi.NewRouter()
//	r.Get("/", list)
//	r.Get("/search", search)
//	return r
type Component interface {
	Name() string
	Prefix() string
	Routes() chi.Router
}

// Mount attaches comps to r.  Components are mounted in prefix order so the
// route table does not depend on argument order.
func Mount(r chi.Router, comps ...Component) error {
	sorted := append([]Component(nil), comps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Prefix() < sorted[j].Prefix() })

	seen := make(map[string]string, len(sorted))
	for _, c := range sorted {
		if prev, dup := seen[c.Prefix()]; dup {
			return fmt.Errorf("component %q: prefix %s already used by %q", c.Name(), c.Prefix(), prev)
		}
		seen[c.Prefix()] = c.Name()
	}

	for _, c := range sorted {
		r.Mount(c.Prefix(), c.Routes())
	}
	return nil
}
