package preset

import (
	"fmt"
	"strings"
)

// Registry provides lookup of presets by ID.
type Registry struct {
	presets map[string]*Preset
	order   []string
}

// NewRegistry indexes presets by lowercased ID.
//
// Precondition: No two presets may share an ID (case-insensitive).
// Postcondition: Returns a Registry or an error naming the duplicate ID.
func NewRegistry(presets []*Preset) (*Registry, error) {
	r := &Registry{presets: make(map[string]*Preset, len(presets))}
	for _, p := range presets {
		key := strings.ToLower(p.ID)
		if _, exists := r.presets[key]; exists {
			return nil, fmt.Errorf("duplicate preset id: %q", p.ID)
		}
		r.presets[key] = p
		r.order = append(r.order, key)
	}
	return r, nil
}

// Lookup returns the preset with the given ID, ignoring case.
//
// Postcondition: Returns (preset, true) if found, or (nil, false).
func (r *Registry) Lookup(id string) (*Preset, bool) {
	p, ok := r.presets[strings.ToLower(id)]
	return p, ok
}

// All returns the presets in registration order.
func (r *Registry) All() []*Preset {
	out := make([]*Preset, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.presets[key])
	}
	return out
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	return len(r.order)
}
