// Package route derives the logical page path from the navigation
// fragment and decides which pages receive global decoration.
package route

import (
	"github.com/jaykit/jay/config"
	"github.com/jaykit/jay/element"
	"github.com/jaykit/jay/nav"
)

// Resolver maps the navigator's fragment to a page path and answers
// global-decoration questions from the configuration.
type Resolver struct {
	nav *nav.Navigator
	cfg *config.Config
}

// NewResolver creates a resolver over a navigator and configuration.
func NewResolver(navigator *nav.Navigator, cfg *config.Config) *Resolver {
	return &Resolver{nav: navigator, cfg: cfg}
}

// Current returns the page path for the current fragment: "/" when
// the fragment is empty, otherwise "/" + fragment. Never empty.
func (r *Resolver) Current() string {
	fragment := r.nav.Fragment()
	if fragment == "" {
		return "/"
	}
	return "/" + fragment
}

// AppliesGlobally reports whether page participates in global
// decoration: the filter list contains the wildcard or the page
// exactly.
func (r *Resolver) AppliesGlobally(page string) bool {
	for _, p := range r.cfg.Global.Pages {
		if p == config.Wildcard || p == page {
			return true
		}
	}
	return false
}

// GlobalHeaders returns the configured header components for page,
// or nil when the page is filtered out.
func (r *Resolver) GlobalHeaders(page string) []element.Factory {
	if !r.AppliesGlobally(page) {
		return nil
	}
	return r.cfg.Global.Headers
}

// GlobalFooters returns the configured footer components for page,
// or nil when the page is filtered out.
func (r *Resolver) GlobalFooters(page string) []element.Factory {
	if !r.AppliesGlobally(page) {
		return nil
	}
	return r.cfg.Global.Footers
}
