package render

import (
	"github.com/jaykit/jay/config"
	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/element"
	"github.com/jaykit/jay/expr"
	"github.com/jaykit/jay/logging"
	"github.com/jaykit/jay/nav"
	"github.com/jaykit/jay/route"
	"github.com/jaykit/jay/style"
)

// App is the explicitly constructed context that owns all shared
// state: the document, configuration, template registry, style
// manager, navigator and expression scope. Create one per document;
// there is no package-level singleton.
type App struct {
	doc       *dom.Document
	cfg       *config.Config
	templates *element.Templates
	styles    *style.Manager
	nav       *nav.Navigator
	eval      *expr.Evaluator
	builder   *element.Builder
	resolver  *route.Resolver
	log       *logging.Logger
}

// Option customizes App construction.
type Option func(*App)

// WithDocument renders into an existing document instead of a fresh
// one.
func WithDocument(doc *dom.Document) Option {
	return func(a *App) { a.doc = doc }
}

// WithNavigator shares an externally owned navigator.
func WithNavigator(n *nav.Navigator) Option {
	return func(a *App) { a.nav = n }
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(a *App) { a.log = log }
}

// New creates an app context and subscribes it to fragment changes.
func New(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.doc == nil {
		a.doc = dom.NewDocument()
	}
	if a.nav == nil {
		a.nav = nav.New()
	}
	if a.log == nil {
		a.log = logging.NewDefault()
	}
	a.cfg = config.Default()
	a.templates = element.NewTemplates()
	a.eval = expr.New()
	a.styles = style.NewManager(a.doc)
	a.builder = element.NewBuilder(a.doc, a.eval, a.templates)
	a.resolver = route.NewResolver(a.nav, a.cfg)

	a.nav.Subscribe(func(string) { a.OnNavigate() })
	return a
}

// Document exposes the document the app renders into.
func (a *App) Document() *dom.Document { return a.doc }

// Navigator exposes the app's navigator.
func (a *App) Navigator() *nav.Navigator { return a.nav }

// Config exposes the current configuration.
func (a *App) Config() *config.Config { return a.cfg }

// Templates exposes the template registry.
func (a *App) Templates() *element.Templates { return a.templates }

// Configure merges an overlay into the configuration and applies its
// side effects: document title, theme attribute and style injection.
// Returns the merged configuration for chaining.
func (a *App) Configure(overlay config.Config) *config.Config {
	a.cfg.Merge(overlay)
	if a.cfg.Title != "" {
		a.doc.SetTitle(a.cfg.Title)
	}
	a.styles.ApplyTheme(a.cfg.Theme)
	a.injectStyles()
	return a.cfg
}

// Expose publishes a value into the expression scope so inline
// J{...} expressions can reference it.
func (a *App) Expose(name string, value any) error {
	return a.eval.Expose(name, value)
}

// Build constructs nodes from a loose tag value, a property bag and
// children. It is the programmatic face of the descriptor syntax.
func (a *App) Build(tag any, props element.Props, children ...any) ([]*dom.Node, error) {
	t, err := element.AsTag(tag)
	if err != nil {
		return nil, err
	}
	return a.builder.Build(element.Descriptor{Tag: t, Props: props, Children: children})
}

func (a *App) injectStyles() {
	a.styles.EnsureBaseline()
	a.styles.EnsureLink(a.cfg.Stylesheet)
	for _, url := range a.cfg.Stylesheets {
		a.styles.EnsureLink(url)
	}
	a.styles.EnsureInline(a.cfg.InlineStyle)
}
