package ports

import (
	"context"

	"go.trai.ch/depscope/internal/core/domain"
)

// AtlasLoader reads atlas definitions.
//
//go:generate mockgen -source=atlas_loader.go -destination=mocks/mock_atlas_loader.go -package=mocks
type AtlasLoader interface {
	// Load reads the atlas definition stored at the given asset.
	// It returns nil and no error when the asset exists but is not an atlas.
	Load(ctx context.Context, id domain.AssetID) (*domain.AtlasEntry, error)
}
