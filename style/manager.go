// Package style injects stylesheet resources into the document head
// and guarantees each is present at most once.
package style

import (
	"sync"

	"github.com/jaykit/jay/dom"
)

// baselineCSS is the framework's minimal default styling, injected
// once per document before any configured stylesheets.
const baselineCSS = `*, *::before, *::after { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; line-height: 1.5; }
[data-theme="dark"] body { background: #14161a; color: #e6e6e6; }
#app { min-height: 100vh; }`

const baselineKey = "baseline"

// Manager tracks injected style resources. Link stylesheets are
// deduplicated by URL; inline stylesheets by exact text.
type Manager struct {
	doc    *dom.Document
	mu     sync.Mutex
	loaded map[string]struct{}
}

// NewManager creates a style manager for a document.
func NewManager(doc *dom.Document) *Manager {
	return &Manager{
		doc:    doc,
		loaded: make(map[string]struct{}),
	}
}

// EnsureBaseline injects the baseline stylesheet exactly once.
func (m *Manager) EnsureBaseline() {
	if !m.mark(baselineKey) {
		return
	}
	el, err := m.doc.CreateElement("style")
	if err != nil {
		return
	}
	el.SetAttribute("data-style", baselineKey)
	el.AppendChild(m.doc.CreateText(baselineCSS))
	m.doc.Head.AppendChild(el)
}

// EnsureLink injects a stylesheet link exactly once per URL.
func (m *Manager) EnsureLink(url string) {
	if url == "" || !m.mark("link:"+url) {
		return
	}
	el, err := m.doc.CreateElement("link")
	if err != nil {
		return
	}
	el.SetAttribute("rel", "stylesheet")
	el.SetAttribute("href", url)
	m.doc.Head.AppendChild(el)
}

// EnsureInline injects an inline stylesheet at most once per exact
// text.
func (m *Manager) EnsureInline(css string) {
	if css == "" || !m.mark("inline:"+css) {
		return
	}
	el, err := m.doc.CreateElement("style")
	if err != nil {
		return
	}
	el.AppendChild(m.doc.CreateText(css))
	m.doc.Head.AppendChild(el)
}

// ApplyTheme records the theme as a data attribute on the document
// root.
func (m *Manager) ApplyTheme(theme string) {
	if theme == "" {
		return
	}
	m.doc.Root.SetAttribute("data-theme", theme)
}

// mark records key in the loaded set, returning false when it was
// already present.
func (m *Manager) mark(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.loaded[key]; ok {
		return false
	}
	m.loaded[key] = struct{}{}
	return true
}
