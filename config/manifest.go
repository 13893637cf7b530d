package config

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jaykit/jay/element"
	"github.com/jaykit/jay/logging"
)

// Manifest is the YAML form of a configuration overlay. Components
// are referenced by the names they were registered under.
type Manifest struct {
	Title       string   `yaml:"title"`
	Theme       string   `yaml:"theme"`
	Stylesheet  string   `yaml:"stylesheet"`
	Stylesheets []string `yaml:"stylesheets"`
	InlineStyle string   `yaml:"inline_style"`
	Global      struct {
		Headers []string `yaml:"headers"`
		Footers []string `yaml:"footers"`
		Pages   []string `yaml:"pages"`
	} `yaml:"global"`
	Pages map[string]string `yaml:"pages"`
}

// LoadManifest parses a YAML overlay and resolves component names
// through the registry. Unknown component names are reported and
// skipped, not fatal.
func LoadManifest(data []byte, components *element.Components, log *logging.Logger) (Config, error) {
	if log == nil {
		log = logging.NewNop()
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("config: parse manifest: %w", err)
	}

	overlay := Config{
		Title:       m.Title,
		Theme:       m.Theme,
		Stylesheet:  m.Stylesheet,
		Stylesheets: m.Stylesheets,
		InlineStyle: m.InlineStyle,
	}
	overlay.Global.Pages = m.Global.Pages
	overlay.Global.Headers = resolveAll(m.Global.Headers, components, log)
	overlay.Global.Footers = resolveAll(m.Global.Footers, components, log)

	if len(m.Pages) > 0 {
		overlay.Pages = make(map[string]element.Factory, len(m.Pages))
		for route, name := range m.Pages {
			factory, ok := components.Lookup(name)
			if !ok {
				log.Warn("manifest references unknown component",
					zap.String("route", route),
					zap.String("component", name))
				continue
			}
			overlay.Pages[route] = factory
		}
	}

	return overlay, nil
}

func resolveAll(names []string, components *element.Components, log *logging.Logger) []element.Factory {
	if names == nil {
		return nil
	}
	factories := make([]element.Factory, 0, len(names))
	for _, name := range names {
		factory, ok := components.Lookup(name)
		if !ok {
			log.Warn("manifest references unknown component", zap.String("component", name))
			continue
		}
		factories = append(factories, factory)
	}
	return factories
}
