package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/element"
)

// MountID is the well-known id of the mount container. The renderer
// creates the container under body when the document lacks one.
const MountID = "app"

// ContentClass marks the wrapper that holds the page body between
// global headers and footers.
const ContentClass = "content"

// RenderApp performs a full-page render for the current route:
// resolve route, select the body component, ensure styles, tear the
// mount container down and rebuild it as headers, content wrapper,
// footers.
//
// A route without a valid component aborts the pass before any tree
// mutation; whatever was rendered before stays visible.
func (a *App) RenderApp() error {
	page := a.resolver.Current()

	factory, ok := a.cfg.Page(page)
	if !ok {
		a.log.Error("no component registered for route", zap.String("route", page))
		return fmt.Errorf("render: no component for route %q", page)
	}

	// The body renders before the mount is cleared so a failing
	// component cannot leave a half-built page behind.
	body, err := a.builder.Build(element.Descriptor{Tag: element.ComponentTag(factory)})
	if err != nil {
		a.log.Error("page component failed", zap.String("route", page), zap.Error(err))
		return fmt.Errorf("render: page %q: %w", page, err)
	}

	if a.cfg.Title != "" {
		a.doc.SetTitle(a.cfg.Title)
	}
	a.styles.ApplyTheme(a.cfg.Theme)
	a.injectStyles()

	mount := a.ensureMount()
	mount.RemoveChildren()

	for _, header := range a.resolver.GlobalHeaders(page) {
		a.appendComponent(mount, header, page, "header")
	}

	wrapper, err := a.doc.CreateElement("div")
	if err != nil {
		return err
	}
	wrapper.AddClass(ContentClass)
	for _, n := range body {
		wrapper.AppendChild(n)
	}
	mount.AppendChild(wrapper)

	for _, footer := range a.resolver.GlobalFooters(page) {
		a.appendComponent(mount, footer, page, "footer")
	}

	a.log.Debug("rendered", zap.String("route", page))
	return nil
}

// Rerender rebuilds the element registered under id from its stored
// descriptor and swaps it in place. Missing node, detached node or
// missing template entry are silent no-ops. Returns whether a swap
// happened.
func (a *App) Rerender(id string) bool {
	old := a.doc.ElementByID(id)
	if old == nil || old.Parent == nil {
		return false
	}
	desc, ok := a.templates.Lookup(id)
	if !ok {
		return false
	}

	nodes, err := a.builder.Build(desc)
	if err != nil || len(nodes) == 0 {
		a.log.Warn("rerender failed", zap.String("id", id), zap.Error(err))
		return false
	}
	return old.Parent.ReplaceChild(nodes[0], old)
}

// OnReady is the host entry point for initial load.
func (a *App) OnReady() {
	_ = a.RenderApp()
}

// OnNavigate is the host entry point for fragment changes. The
// navigator invokes it automatically for apps created with New.
func (a *App) OnNavigate() {
	_ = a.RenderApp()
}

// appendComponent renders a global component into parent. Failures
// degrade to a logged no-op; global decoration never aborts a pass.
func (a *App) appendComponent(parent *dom.Node, factory element.Factory, page, role string) {
	nodes, err := a.builder.Build(element.Descriptor{Tag: element.ComponentTag(factory)})
	if err != nil {
		a.log.Warn("global component failed",
			zap.String("route", page),
			zap.String("role", role),
			zap.Error(err))
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func (a *App) ensureMount() *dom.Node {
	if el := a.doc.ElementByID(MountID); el != nil {
		return el
	}
	el, err := a.doc.CreateElement("div")
	if err != nil {
		return a.doc.Body
	}
	el.SetAttribute("id", MountID)
	a.doc.Body.AppendChild(el)
	return el
}
