// Package render orchestrates full-page renders and partial
// re-renders over the app context.
//
// A full render resolves the current route, selects the body
// component, guarantees style resources, then rebuilds the mount
// container as global headers, one content wrapper holding the body
// output, and global footers — always in that order. There is no
// diffing: re-rendering means discard and recreate.
//
// Partial re-render replays the descriptor captured when an element
// with an id was first built, re-evaluating any inline expressions
// against the current scope, and swaps the fresh node in place.
package render
