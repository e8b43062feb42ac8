package analysis

import (
	"errors"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolverFailure joins the resolver's cause with domain.ErrResolverFailed so callers
// can match either one.
func resolverFailure(err error, msg string, id domain.AssetID) error {
	wrapped := zerr.Wrap(errors.Join(domain.ErrResolverFailed, err), msg)
	if id.IsZero() {
		return wrapped
	}
	return zerr.With(wrapped, "asset", id.String())
}

// assetError wraps a sentinel and tags it with the asset it concerns.
func assetError(sentinel error, msg string, id domain.AssetID) error {
	return zerr.With(zerr.Wrap(sentinel, msg), "asset", id.String())
}
