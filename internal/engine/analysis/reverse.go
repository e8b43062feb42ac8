package analysis

import (
	"context"
	"fmt"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
)

// ReverseIndexBuilder scans a universe of assets once and inverts their direct
// dependencies into a domain.ReverseIndex.
type ReverseIndexBuilder struct {
	resolver ports.DependencyResolver
	progress ports.Progress
	logger   ports.Logger

	index *domain.ReverseIndex
	state domain.IndexState
}

// NewReverseIndexBuilder creates a new ReverseIndexBuilder.
func NewReverseIndexBuilder(
	resolver ports.DependencyResolver,
	progress ports.Progress,
	logger ports.Logger,
) *ReverseIndexBuilder {
	if progress == nil {
		progress = ports.NoProgress{}
	}
	return &ReverseIndexBuilder{
		resolver: resolver,
		progress: progress,
		logger:   logger,
	}
}

// Build returns the reverse index of universe, scanning it on the first call.
// Later calls return the memoized index until Reset, even if universe differs.
// On resolver failure nothing is memoized and the next call scans again.
func (b *ReverseIndexBuilder) Build(ctx context.Context, universe []domain.AssetID) (*domain.ReverseIndex, error) {
	if b.state == domain.IndexBuilt {
		return b.index, nil
	}

	b.logger.Info(fmt.Sprintf("total assets: %d", len(universe)))
	defer b.progress.Done()

	index := domain.NewReverseIndex(len(universe))
	for _, id := range universe {
		index.AddAsset(id)
	}

	total := float64(len(universe))
	for i, asset := range universe {
		b.progress.Update(float64(i)/total, asset)

		deps, err := b.resolver.ForwardDeps(ctx, asset, false)
		if err != nil {
			return nil, resolverFailure(err, "failed to build reverse index", asset)
		}

		for _, dep := range deps {
			if dep == asset {
				continue
			}
			// Dependencies outside the universe have no bucket and are dropped.
			index.AddReference(dep, asset)
		}
	}

	b.index = index
	b.state = domain.IndexBuilt
	return index, nil
}

// Index returns the memoized index, or nil when the builder has not run yet.
func (b *ReverseIndexBuilder) Index() *domain.ReverseIndex {
	return b.index
}

// State returns the lifecycle state of the index.
func (b *ReverseIndexBuilder) State() domain.IndexState {
	return b.state
}

// Reset drops the memoized index.
func (b *ReverseIndexBuilder) Reset() {
	b.index = nil
	b.state = domain.IndexUninitialized
}
