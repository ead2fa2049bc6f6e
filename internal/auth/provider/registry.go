package provider

import "fmt"

// Registry indexes the portal's configured OAuth providers by
// name so the sign-in handlers can route /auth/:provider without
// knowing which providers are enabled. Lookup only, no auth logic.
type Registry struct {
	providers map[string]OAuthProvider
}

// NewRegistry builds the index. A duplicated name silently keeps
// the last provider registered, so names must be unique.
func NewRegistry(list ...OAuthProvider) *Registry {
	m := make(map[string]OAuthProvider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get resolves a provider by name.
func (r *Registry) Get(name string) (OAuthProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
