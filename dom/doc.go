// Package dom implements the in-memory document tree the framework
// renders into.
//
// The tree mirrors the small slice of the DOM the renderer needs:
// element creation by tag name, text nodes, attribute/class/style
// mutation, child insertion and replacement, and lookup by id, class
// or tag. Serialization and parsing round-trip through
// golang.org/x/net/html, which is how hosts and tests observe the
// tree.
//
// Key Components:
//   - Document: root container with Head and Body always present
//   - Node: element or text node with mutation primitives
//   - HTML/OuterHTML and ParseDocument/ParseFragment for round-trips
package dom
