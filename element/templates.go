package element

import "github.com/jaykit/jay/registry"

// Templates maps an element id to the descriptor used to first build
// it. The first registration for an id wins; later builds reusing the
// id never replace the stored descriptor, which stays authoritative
// for partial re-renders.
type Templates struct {
	store registry.Store[Descriptor]
}

// NewTemplates creates an empty template registry.
func NewTemplates() *Templates {
	return &Templates{}
}

// Register captures the descriptor under id. Returns false when an
// entry already exists, in which case the original is kept.
func (t *Templates) Register(id string, d Descriptor) bool {
	if id == "" {
		return false
	}
	return t.store.PutIfAbsent(id, d)
}

// Lookup retrieves the descriptor registered under id.
func (t *Templates) Lookup(id string) (Descriptor, bool) {
	return t.store.Get(id)
}

// Forget drops the entry under id, if any.
func (t *Templates) Forget(id string) {
	t.store.Delete(id)
}

// Len counts registered templates.
func (t *Templates) Len() int {
	return t.store.Len()
}
