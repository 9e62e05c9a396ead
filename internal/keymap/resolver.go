package keymap

import "slices"

// Resolver maps key strings to actions.
type Resolver map[string]Action

// NewResolver indexes bindings by key. When two bindings share a key, the
// later one wins.
func NewResolver(bindings []Binding) Resolver {
	r := make(Resolver)
	for _, b := range bindings {
		for _, k := range b.Keys {
			r[k] = b.Action
		}
	}
	return r
}

// ForContexts builds a resolver over the bindings of the given contexts.
func ForContexts(contexts ...string) Resolver {
	return NewResolver(slices.DeleteFunc(slices.Clone(All), func(b Binding) bool {
		return !slices.Contains(contexts, b.Context)
	}))
}

// Resolve returns the action bound to key, or "".
func (r Resolver) Resolve(key string) Action {
	return r[key]
}
