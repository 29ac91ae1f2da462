package screening

import (
	"context"

	dErrors "vigia/pkg/domain-errors"
)

// Provider is a single watchlist source. CheckPerson may fail; the
// aggregator converts failures to ERROR results, so implementations should
// return errors freely rather than inventing fallback verdicts.
type Provider interface {
	Source() string
	CheckPerson(ctx context.Context, identification, fullName string) (CheckResult, error)
}

// Registry holds the configured providers. Registration order is preserved
// so reports enumerate sources deterministically in logs.
type Registry struct {
	providers []Provider
	bySource  map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{bySource: make(map[string]Provider)}
}

// Register adds a provider. Duplicate sources are rejected.
func (r *Registry) Register(p Provider) error {
	key := sourceKey(p.Source())
	if _, exists := r.bySource[key]; exists {
		return dErrors.New(dErrors.CodeConflict, "provider already registered: "+p.Source())
	}
	r.bySource[key] = p
	r.providers = append(r.providers, p)
	return nil
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}

func (r *Registry) Len() int {
	return len(r.providers)
}
