// Package jay is a small descriptor-driven UI framework: it builds
// document trees from JSX-like descriptors, tracks a hash-based
// route, composes pages from global header/footer components plus a
// per-route body, and can rebuild a previously created element in
// place by replaying its original descriptor.
package jay

import (
	"github.com/jaykit/jay/config"
	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/element"
	"github.com/jaykit/jay/logging"
	"github.com/jaykit/jay/nav"
	"github.com/jaykit/jay/render"
)

// Core types, re-exported for hosts that only import the root
// package.
type (
	App        = render.App
	Option     = render.Option
	Props      = element.Props
	Component  = element.Component
	Factory    = element.Factory
	RenderFunc = element.RenderFunc
	Descriptor = element.Descriptor
	Config     = config.Config
	Global     = config.Global
	Node       = dom.Node
	Document   = dom.Document
	Navigator  = nav.Navigator
	Keymap     = nav.Keymap
)

// Control tokens and well-known identifiers.
const (
	TokenConfigure = render.TokenConfigure
	TokenRenderAll = render.TokenRenderAll
	TokenRerender  = render.TokenRerender
	MountID        = render.MountID
	Wildcard       = config.Wildcard
)

// New creates an app context.
func New(opts ...Option) *App { return render.New(opts...) }

// WithDocument renders into an existing document.
func WithDocument(doc *dom.Document) Option { return render.WithDocument(doc) }

// WithNavigator shares an externally owned navigator.
func WithNavigator(n *nav.Navigator) Option { return render.WithNavigator(n) }

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option { return render.WithLogger(log) }
