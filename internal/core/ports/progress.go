package ports

import "go.trai.ch/depscope/internal/core/domain"

// Progress receives progress of long-running index builds.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Update reports the fraction of work done, in [0, 1], and the asset being processed.
	Update(fraction float64, current domain.AssetID)
	// Done signals that the build finished, successfully or not.
	Done()
}

// NoProgress discards all progress updates.
type NoProgress struct{}

// Update implements Progress.
func (NoProgress) Update(float64, domain.AssetID) {}

// Done implements Progress.
func (NoProgress) Done() {}
