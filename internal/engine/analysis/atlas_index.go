package analysis

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// AtlasMembershipIndex maps image names to the atlases that pack them.
type AtlasMembershipIndex struct {
	fs     ports.Filesystem
	loader ports.AtlasLoader
	logger ports.Logger

	order   []domain.AssetID
	entries map[domain.AssetID]*domain.AtlasEntry
	state   domain.IndexState
}

// NewAtlasMembershipIndex creates an empty AtlasMembershipIndex.
func NewAtlasMembershipIndex(fsys ports.Filesystem, loader ports.AtlasLoader, logger ports.Logger) *AtlasMembershipIndex {
	return &AtlasMembershipIndex{
		fs:      fsys,
		loader:  loader,
		logger:  logger,
		entries: make(map[domain.AssetID]*domain.AtlasEntry),
	}
}

// Build scans the immediate entries of folder and records every atlas found there.
// A missing folder leaves the index empty and is not an error.
// Atlases already present keep their position and have their members replaced.
func (x *AtlasMembershipIndex) Build(ctx context.Context, folder string) error {
	entries, err := x.fs.ListEntries(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			x.logger.Warn(fmt.Sprintf("atlas folder %s does not exist", folder))
			x.state = domain.IndexBuilt
			return nil
		}
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrAtlasFolderUnreadable, err), "failed to build atlas index"),
			"folder", folder,
		)
	}

	for _, entry := range entries {
		if entry.IsMetadata || !entry.HasAtlasExtension {
			continue
		}

		id := domain.NewAssetID(path.Join(folder, entry.Name))
		atlas, err := x.loader.Load(ctx, id)
		if err != nil {
			return zerr.With(
				zerr.Wrap(errors.Join(domain.ErrAtlasLoadFailed, err), "failed to build atlas index"),
				"asset", id.String(),
			)
		}
		if atlas == nil {
			continue
		}
		atlas.ID = id
		x.put(atlas)
	}

	x.state = domain.IndexBuilt
	x.logger.Info(fmt.Sprintf("indexed %d atlas(es) under %s", len(x.order), folder))
	return nil
}

func (x *AtlasMembershipIndex) put(atlas *domain.AtlasEntry) {
	if _, exists := x.entries[atlas.ID]; !exists {
		x.order = append(x.order, atlas.ID)
	}
	x.entries[atlas.ID] = atlas
}

// FindOwningAtlas returns the first atlas, in build order, that has a member
// named exactly imageName.
func (x *AtlasMembershipIndex) FindOwningAtlas(imageName string) (domain.AssetID, bool) {
	for _, id := range x.order {
		if x.entries[id].HasMember(imageName) {
			return id, true
		}
	}
	return domain.AssetID{}, false
}

// Len returns the number of indexed atlases.
func (x *AtlasMembershipIndex) Len() int {
	return len(x.order)
}

// State returns the lifecycle state of the index.
func (x *AtlasMembershipIndex) State() domain.IndexState {
	return x.state
}

// Reset empties the index.
func (x *AtlasMembershipIndex) Reset() {
	x.order = nil
	clear(x.entries)
	x.state = domain.IndexUninitialized
}
