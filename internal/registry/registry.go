package registry

import (
	"fmt"
	"sort"
)

// Registry maps family names and aliases to Family definitions.
// A Registry is never mutated after construction.
type Registry struct {
	families map[string]*Family // canonical name → family
	aliases  map[string]string  // alias → canonical name
}

// NewRegistry creates a Registry populated with the given families.
//
// Precondition: No two families may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions or
// a family with neither a factory nor a builder.
func NewRegistry(fams []Family) (*Registry, error) {
	r := &Registry{
		families: make(map[string]*Family, len(fams)),
		aliases:  make(map[string]string),
	}

	for i := range fams {
		fam := &fams[i]
		if fam.Name == "" {
			return nil, fmt.Errorf("family name must not be empty")
		}
		if fam.Factory == nil && fam.Builder == nil {
			return nil, fmt.Errorf("family %q has neither a factory nor a builder", fam.Name)
		}
		if _, exists := r.families[fam.Name]; exists {
			return nil, fmt.Errorf("duplicate family name: %q", fam.Name)
		}
		if _, exists := r.aliases[fam.Name]; exists {
			return nil, fmt.Errorf("family name %q conflicts with an existing alias", fam.Name)
		}
		r.families[fam.Name] = fam

		for _, alias := range fam.Aliases {
			if _, exists := r.families[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with family name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, fam.Name)
			}
			r.aliases[alias] = fam.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in families.
//
// Postcondition: Returns a Registry with all built-in families registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinFamilies())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// defaultRegistry is built once, at package initialization, and only read
// afterwards.
var defaultRegistry = DefaultRegistry()

// Default returns the process-wide registry of built-in families.
func Default() *Registry { return defaultRegistry }

// With returns a new Registry holding r's families plus extra. r is unchanged.
//
// Postcondition: Returns an error on any name/alias collision.
func (r *Registry) With(extra ...Family) (*Registry, error) {
	all := make([]Family, 0, len(r.families)+len(extra))
	for _, name := range r.Names() {
		all = append(all, *r.families[name])
	}
	all = append(all, extra...)
	return NewRegistry(all)
}

// Resolve looks up a family by name or alias.
//
// Postcondition: Returns (family, true) if found, or (nil, false).
func (r *Registry) Resolve(name string) (*Family, bool) {
	if fam, ok := r.families[name]; ok {
		return fam, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.families[canonical], true
	}
	return nil, false
}

// Names returns the canonical family names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Families returns every family in name order.
func (r *Registry) Families() []*Family {
	out := make([]*Family, 0, len(r.families))
	for _, name := range r.Names() {
		out = append(out, r.families[name])
	}
	return out
}
