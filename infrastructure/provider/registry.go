package provider

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/bumpwatch/domain"
)

// Factory is a constructor function that creates a Provider given an auth token.
type Factory func(token string) domain.Provider

// Registry manages all registered Git provider implementations.
type Registry struct {
	providers map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Factory),
	}
}

// Register adds a provider factory under the given name (e.g. "github").
func (r *Registry) Register(name string, factory Factory) {
	r.providers[name] = factory
}

// Get returns a configured provider instance for the given name and token.
func (r *Registry) Get(name, token string) (domain.Provider, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(token), nil
}

// Detect returns the first registered provider whose Name matches the given
// remote URL, or an error when none does.
func (r *Registry) Detect(remoteURL, token string) (domain.Provider, error) {
	for _, name := range r.Names() {
		p := r.providers[name](token)
		if p.MatchesURL(remoteURL) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no registered provider matches remote URL %q", remoteURL)
}

// Names returns the registered provider names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
