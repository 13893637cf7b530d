package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaykit/jay/dom"
)

func TestEnsureLinkDeduplicates(t *testing.T) {
	doc := dom.NewDocument()
	m := NewManager(doc)

	m.EnsureLink("/app.css")
	m.EnsureLink("/app.css")
	m.EnsureLink("/other.css")
	m.EnsureLink("")

	links := doc.QueryAll("link")
	assert.Len(t, links, 2)
	assert.Equal(t, "stylesheet", links[0].Attribute("rel"))
	assert.Equal(t, "/app.css", links[0].Attribute("href"))
}

func TestEnsureInlineDeduplicatesByText(t *testing.T) {
	doc := dom.NewDocument()
	m := NewManager(doc)

	m.EnsureInline("body { margin: 0 }")
	m.EnsureInline("body { margin: 0 }")
	m.EnsureInline("body { margin: 1px }")

	assert.Len(t, doc.QueryAll("style"), 2)
}

func TestEnsureBaselineOnce(t *testing.T) {
	doc := dom.NewDocument()
	m := NewManager(doc)

	m.EnsureBaseline()
	m.EnsureBaseline()

	styles := doc.QueryAll("style")
	assert.Len(t, styles, 1)
	assert.Equal(t, "baseline", styles[0].Attribute("data-style"))
}

func TestApplyTheme(t *testing.T) {
	doc := dom.NewDocument()
	m := NewManager(doc)

	m.ApplyTheme("dark")
	assert.Equal(t, "dark", doc.Root.Attribute("data-theme"))

	// empty theme leaves the attribute alone
	m.ApplyTheme("")
	assert.Equal(t, "dark", doc.Root.Attribute("data-theme"))
}
