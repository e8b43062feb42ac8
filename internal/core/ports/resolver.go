package ports

import (
	"context"

	"go.trai.ch/depscope/internal/core/domain"
)

// DependencyResolver answers low-level dependency questions about single assets.
// Implementations may be slow; results are cached by the analysis engine.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// ForwardDeps lists the assets the given asset depends on.
	// When recursive is false only direct dependencies are returned, otherwise the full closure.
	// The asset itself is never part of the result.
	ForwardDeps(ctx context.Context, id domain.AssetID, recursive bool) ([]domain.AssetID, error)

	// ContentFingerprint returns a value that changes whenever the asset or any of its
	// transitive dependencies changes.
	ContentFingerprint(ctx context.Context, id domain.AssetID) (domain.Fingerprint, error)

	// EnumerateUniverse lists every asset of the project in a stable order.
	EnumerateUniverse(ctx context.Context) ([]domain.AssetID, error)
}
