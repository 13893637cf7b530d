package dom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML serializes the document, including the doctype.
func (d *Document) HTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>")
	if err := html.Render(&b, toHTMLNode(d.Root)); err != nil {
		return ""
	}
	return b.String()
}

// OuterHTML serializes a single node and its subtree.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	if err := html.Render(&b, toHTMLNode(n)); err != nil {
		return ""
	}
	return b.String()
}

// ParseDocument builds a Document from serialized HTML.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	htmlEl := findHTMLElement(root, "html")
	if htmlEl == nil {
		return nil, fmt.Errorf("dom: document has no html element")
	}
	doc := &Document{Root: fromHTMLNode(htmlEl, nil)}
	for _, c := range doc.Root.Children {
		switch c.Tag {
		case "head":
			doc.Head = c
		case "body":
			doc.Body = c
		}
	}
	if doc.Head == nil {
		doc.Head = &Node{Kind: KindElement, Tag: "head"}
		doc.Root.InsertBefore(doc.Head, firstChild(doc.Root))
	}
	if doc.Body == nil {
		doc.Body = &Node{Kind: KindElement, Tag: "body"}
		doc.Root.AppendChild(doc.Body)
	}
	return doc, nil
}

// ParseFragment parses markup into a list of detached nodes, as it
// would appear inside a div.
func ParseFragment(markup string) ([]*Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	nodes := make([]*Node, 0, len(parsed))
	for _, p := range parsed {
		if n := fromHTMLNode(p, nil); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func toHTMLNode(n *Node) *html.Node {
	if n.Kind == KindText {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Attr = append(out.Attr, html.Attribute{Key: k, Val: n.Attributes[k]})
	}
	for _, c := range n.Children {
		out.AppendChild(toHTMLNode(c))
	}
	return out
}

func fromHTMLNode(src *html.Node, parent *Node) *Node {
	switch src.Type {
	case html.TextNode:
		return &Node{Kind: KindText, Text: src.Data, Parent: parent}
	case html.ElementNode:
		n := &Node{Kind: KindElement, Tag: src.Data, Parent: parent}
		for _, a := range src.Attr {
			n.SetAttribute(a.Key, a.Val)
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c, n); child != nil {
				n.Children = append(n.Children, child)
			}
		}
		return n
	default:
		return nil
	}
}

func findHTMLElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findHTMLElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func firstChild(n *Node) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}
