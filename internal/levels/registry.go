package levels

import "fmt"

// Registry is the immutable level table for a session. Levels unlock in the
// order they were loaded.
type Registry struct {
	specs []Spec
	byID  map[string]int
}

// Load validates every spec and builds a registry. Any malformed spec aborts
// the load with an ErrConfig-wrapped error; no partial registry is returned.
func Load(specs []Spec) (*Registry, error) {
	r := &Registry{
		specs: make([]Spec, len(specs)),
		byID:  make(map[string]int, len(specs)),
	}
	copy(r.specs, specs)

	for i, s := range r.specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate level id %q", ErrConfig, s.ID)
		}
		r.byID[s.ID] = i
	}
	return r, nil
}

// Get returns the spec for id, or ErrNotFound.
func (r *Registry) Get(id string) (Spec, error) {
	i, ok := r.byID[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return r.specs[i], nil
}

// Has reports whether id is a known level.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns every spec in unlock order.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Len returns the number of levels.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Predecessor returns the level immediately before id in the unlock chain.
// ok is false for the first level or an unknown id.
func (r *Registry) Predecessor(id string) (string, bool) {
	i, found := r.byID[id]
	if !found || i == 0 {
		return "", false
	}
	return r.specs[i-1].ID, true
}
