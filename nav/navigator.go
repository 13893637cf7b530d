// Package nav tracks the navigation fragment and its history.
package nav

import (
	"strings"
	"sync"
)

// Keymap binds keyboard chords to history navigation.
type Keymap struct {
	Previous string
	Next     string
}

// DefaultKeymap returns the standard back/forward chords.
func DefaultKeymap() Keymap {
	return Keymap{Previous: "alt+left", Next: "alt+right"}
}

// Navigator owns the current fragment, a linear history with a
// cursor, and change subscriptions. Hosts feed it navigation and key
// events; the renderer subscribes to re-render on change.
type Navigator struct {
	mu      sync.Mutex
	history []string
	pos     int
	keymap  Keymap
	subs    []func(fragment string)
}

// New creates a navigator positioned at the empty fragment.
func New() *Navigator {
	return &Navigator{
		history: []string{""},
		keymap:  DefaultKeymap(),
	}
}

// Fragment returns the current fragment (the part after "#", without
// the marker). Empty means the root.
func (n *Navigator) Fragment() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[n.pos]
}

// Navigate moves to a new fragment, truncating any forward history.
// A leading "#" is tolerated and stripped. Navigating to the current
// fragment is a no-op.
func (n *Navigator) Navigate(fragment string) {
	fragment = strings.TrimPrefix(fragment, "#")

	n.mu.Lock()
	if n.history[n.pos] == fragment {
		n.mu.Unlock()
		return
	}
	n.history = append(n.history[:n.pos+1], fragment)
	n.pos = len(n.history) - 1
	n.mu.Unlock()

	n.notify(fragment)
}

// Back moves one step backward in history. Returns false at the
// beginning.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if n.pos == 0 {
		n.mu.Unlock()
		return false
	}
	n.pos--
	fragment := n.history[n.pos]
	n.mu.Unlock()

	n.notify(fragment)
	return true
}

// Forward moves one step forward in history. Returns false at the
// end.
func (n *Navigator) Forward() bool {
	n.mu.Lock()
	if n.pos >= len(n.history)-1 {
		n.mu.Unlock()
		return false
	}
	n.pos++
	fragment := n.history[n.pos]
	n.mu.Unlock()

	n.notify(fragment)
	return true
}

// Subscribe registers a callback invoked after every fragment change.
func (n *Navigator) Subscribe(fn func(fragment string)) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

// SetKeymap replaces the navigation keybindings.
func (n *Navigator) SetKeymap(k Keymap) {
	n.mu.Lock()
	n.keymap = k
	n.mu.Unlock()
}

// HandleKey dispatches a keyboard chord against the keymap. Returns
// true when the chord triggered a history move.
func (n *Navigator) HandleKey(chord string) bool {
	chord = strings.ToLower(strings.TrimSpace(chord))

	n.mu.Lock()
	keymap := n.keymap
	n.mu.Unlock()

	switch chord {
	case strings.ToLower(keymap.Previous):
		return n.Back()
	case strings.ToLower(keymap.Next):
		return n.Forward()
	}
	return false
}

func (n *Navigator) notify(fragment string) {
	n.mu.Lock()
	subs := make([]func(string), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(fragment)
	}
}
