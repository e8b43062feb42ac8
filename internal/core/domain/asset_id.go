package domain

import (
	"path"
	"path/filepath"
	"strings"
	"unique"
)

// AssetID identifies an asset by its slash-separated path relative to the project root.
// It wraps a unique.Handle[string] so that ids are cheap to compare and hash, which keeps
// every index lookup O(1) regardless of path length.
type AssetID struct {
	h unique.Handle[string]
}

// NewAssetID creates an AssetID from a path.
// Backslashes are converted to slashes and the path is cleaned. An empty path yields the zero id.
func NewAssetID(p string) AssetID {
	if p == "" {
		return AssetID{}
	}
	p = path.Clean(strings.ReplaceAll(filepath.ToSlash(p), `\`, "/"))
	p = strings.TrimPrefix(p, "./")
	if p == "." {
		return AssetID{}
	}
	return AssetID{h: unique.Make(p)}
}

// NewAssetIDs converts a list of paths into ids, preserving order.
func NewAssetIDs(paths ...string) []AssetID {
	ids := make([]AssetID, len(paths))
	for i, p := range paths {
		ids[i] = NewAssetID(p)
	}
	return ids
}

// String returns the path of the asset.
func (id AssetID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the id is empty, i.e. no asset is selected.
func (id AssetID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// Ext returns the lower-cased extension of the asset, including the dot.
func (id AssetID) Ext() string {
	return strings.ToLower(path.Ext(id.String()))
}

// Name returns the file name of the asset.
func (id AssetID) Name() string {
	if id.IsZero() {
		return ""
	}
	return path.Base(id.String())
}

// BaseName returns the file name of the asset without its extension.
func (id AssetID) BaseName() string {
	name := id.Name()
	return strings.TrimSuffix(name, path.Ext(name))
}

// Strings converts a list of ids back to their paths.
func Strings(ids []AssetID) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = id.String()
	}
	return res
}

// MarshalText implements encoding.TextMarshaler.
func (id AssetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AssetID) UnmarshalText(text []byte) error {
	*id = NewAssetID(string(text))
	return nil
}
