package analysis

import (
	"context"
	"slices"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
)

// ForwardDependencyCache memoizes recursive forward dependencies per asset,
// keyed by the asset's content fingerprint.
type ForwardDependencyCache struct {
	resolver ports.DependencyResolver
	entries  map[domain.AssetID]*domain.ForwardDependencyEntry
}

// NewForwardDependencyCache creates an empty ForwardDependencyCache.
func NewForwardDependencyCache(resolver ports.DependencyResolver) *ForwardDependencyCache {
	return &ForwardDependencyCache{
		resolver: resolver,
		entries:  make(map[domain.AssetID]*domain.ForwardDependencyEntry),
	}
}

// Get returns the transitive dependencies of id.
// The fingerprint is checked on every call; the resolver is asked for dependencies
// only when no entry exists or the fingerprint changed. The boolean reports a cache hit.
// A failing resolver leaves the cache untouched.
func (c *ForwardDependencyCache) Get(ctx context.Context, id domain.AssetID) ([]domain.AssetID, bool, error) {
	fingerprint, err := c.resolver.ContentFingerprint(ctx, id)
	if err != nil {
		return nil, false, resolverFailure(err, "failed to fingerprint asset", id)
	}

	if entry, ok := c.entries[id]; ok && entry.Fingerprint == fingerprint {
		return slices.Clone(entry.Dependencies), true, nil
	}

	deps, err := c.resolver.ForwardDeps(ctx, id, true)
	if err != nil {
		return nil, false, resolverFailure(err, "failed to resolve dependencies", id)
	}
	if deps == nil {
		deps = []domain.AssetID{}
	}

	c.entries[id] = &domain.ForwardDependencyEntry{
		Fingerprint:  fingerprint,
		Dependencies: deps,
	}
	return slices.Clone(deps), false, nil
}

// Len returns the number of cached entries.
func (c *ForwardDependencyCache) Len() int {
	return len(c.entries)
}

// Reset drops every cached entry.
func (c *ForwardDependencyCache) Reset() {
	clear(c.entries)
}
