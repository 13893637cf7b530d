// Package config holds the application configuration record: page
// map, global header/footer components, theme and stylesheets.
package config

import "github.com/jaykit/jay/element"

// Wildcard in the global page filter means every page participates
// in global decoration.
const Wildcard = "*"

// Global configures components shared across pages and the filter
// deciding which pages receive them.
type Global struct {
	Headers []element.Factory
	Footers []element.Factory
	Pages   []string
}

// Config is the application configuration. It is owned by the app
// context and mutated only through Merge.
type Config struct {
	Title       string
	Theme       string
	Stylesheet  string
	Stylesheets []string
	InlineStyle string
	Global      Global
	Pages       map[string]element.Factory
}

// Default returns the starting configuration: no pages, global
// decoration enabled everywhere.
func Default() *Config {
	return &Config{
		Global: Global{Pages: []string{Wildcard}},
		Pages:  make(map[string]element.Factory),
	}
}

// Merge applies overlay as a shallow overlay: zero-valued overlay
// fields keep their current values, page map entries merge key by
// key, and non-nil global lists replace the current ones. Returns
// the receiver for chaining.
func (c *Config) Merge(overlay Config) *Config {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Theme != "" {
		c.Theme = overlay.Theme
	}
	if overlay.Stylesheet != "" {
		c.Stylesheet = overlay.Stylesheet
	}
	if overlay.Stylesheets != nil {
		c.Stylesheets = overlay.Stylesheets
	}
	if overlay.InlineStyle != "" {
		c.InlineStyle = overlay.InlineStyle
	}
	if overlay.Global.Headers != nil {
		c.Global.Headers = overlay.Global.Headers
	}
	if overlay.Global.Footers != nil {
		c.Global.Footers = overlay.Global.Footers
	}
	if overlay.Global.Pages != nil {
		c.Global.Pages = overlay.Global.Pages
	}
	if overlay.Pages != nil {
		if c.Pages == nil {
			c.Pages = make(map[string]element.Factory, len(overlay.Pages))
		}
		for route, factory := range overlay.Pages {
			c.Pages[route] = factory
		}
	}
	return c
}

// Page returns the component factory for a route, falling back to
// the root page when the route has no explicit entry.
func (c *Config) Page(route string) (element.Factory, bool) {
	if f, ok := c.Pages[route]; ok && f != nil {
		return f, true
	}
	if f, ok := c.Pages["/"]; ok && f != nil {
		return f, true
	}
	return nil, false
}
