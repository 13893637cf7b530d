package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()

	t.Run("valid tags", func(t *testing.T) {
		for _, tag := range []string{"div", "SPAN", "my-widget", "h1"} {
			el, err := doc.CreateElement(tag)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(tag), el.Tag)
		}
	})

	t.Run("invalid tags", func(t *testing.T) {
		for _, tag := range []string{"", "1div", "a b", "<script>", "-x"} {
			_, err := doc.CreateElement(tag)
			assert.Error(t, err, "tag %q", tag)
		}
	})
}

func TestClassHandling(t *testing.T) {
	doc := NewDocument()
	el, err := doc.CreateElement("div")
	require.NoError(t, err)

	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a") // duplicate ignored
	assert.Equal(t, "a b", el.Attribute("class"))
	assert.True(t, el.HasClass("a"))
	assert.False(t, el.HasClass("c"))
}

func TestStyleHandling(t *testing.T) {
	doc := NewDocument()
	el, err := doc.CreateElement("div")
	require.NoError(t, err)

	el.SetStyle("color", "red")
	el.SetStyle("margin", "0")
	el.SetStyle("color", "blue") // replaces in place
	assert.Equal(t, "color: blue; margin: 0", el.Attribute("style"))
	assert.Equal(t, "blue", el.StyleValue("color"))
	assert.Equal(t, "", el.StyleValue("padding"))
}

func TestTreeMutation(t *testing.T) {
	doc := NewDocument()
	parent, _ := doc.CreateElement("ul")
	first, _ := doc.CreateElement("li")
	second, _ := doc.CreateElement("li")
	parent.AppendChild(first)
	parent.AppendChild(second)

	t.Run("append reparents", func(t *testing.T) {
		other, _ := doc.CreateElement("ol")
		other.AppendChild(first)
		assert.Len(t, parent.Children, 1)
		assert.Same(t, other, first.Parent)
	})

	t.Run("replace child keeps position", func(t *testing.T) {
		a, _ := doc.CreateElement("li")
		b, _ := doc.CreateElement("li")
		c, _ := doc.CreateElement("em")
		list, _ := doc.CreateElement("ul")
		list.AppendChild(a)
		list.AppendChild(b)

		require.True(t, list.ReplaceChild(c, a))
		assert.Same(t, c, list.Children[0])
		assert.Same(t, b, list.Children[1])
		assert.Nil(t, a.Parent)
	})

	t.Run("replace foreign child fails", func(t *testing.T) {
		stranger, _ := doc.CreateElement("li")
		repl, _ := doc.CreateElement("li")
		assert.False(t, parent.ReplaceChild(repl, stranger))
	})

	t.Run("remove children detaches all", func(t *testing.T) {
		parent.RemoveChildren()
		assert.Empty(t, parent.Children)
		assert.Nil(t, second.Parent)
	})
}

func TestQueries(t *testing.T) {
	doc := NewDocument()
	section, _ := doc.CreateElement("section")
	section.SetAttribute("id", "main")
	section.AddClass("wide")
	p, _ := doc.CreateElement("p")
	p.AddClass("wide")
	section.AppendChild(p)
	doc.Body.AppendChild(section)

	assert.Same(t, section, doc.ElementByID("main"))
	assert.Nil(t, doc.ElementByID("missing"))
	assert.Len(t, doc.QueryAll(".wide"), 2)
	assert.Len(t, doc.QueryAll("p"), 1)
	assert.Len(t, doc.QueryAll("#main"), 1)
}

func TestHTMLRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.SetTitle("round trip")
	div, _ := doc.CreateElement("div")
	div.SetAttribute("id", "app")
	div.AppendChild(doc.CreateText("hello & <world>"))
	doc.Body.AppendChild(div)

	out := doc.HTML()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<div id="app">`)
	assert.Contains(t, out, "hello &amp; &lt;world&gt;")
	assert.Contains(t, out, "<title>round trip</title>")

	parsed, err := ParseDocument(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "round trip", parsed.Title())
	el := parsed.ElementByID("app")
	require.NotNil(t, el)
	assert.Equal(t, "hello & <world>", el.TextContent())
}

func TestParseFragment(t *testing.T) {
	nodes, err := ParseFragment("<b>bold</b> and text")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "b", nodes[0].Tag)
	assert.Equal(t, " and text", nodes[1].Text)
}

func TestSetTitleUpdatesInPlace(t *testing.T) {
	doc := NewDocument()
	doc.SetTitle("one")
	doc.SetTitle("two")
	assert.Equal(t, "two", doc.Title())
	assert.Len(t, doc.QueryAll("title"), 1)
}
