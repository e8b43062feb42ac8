package domain

import "slices"

// ReverseIndex maps each asset of a universe to the assets that reference it.
// Referrers within each bucket keep their insertion order.
type ReverseIndex struct {
	buckets map[AssetID][]AssetID
}

// NewReverseIndex creates an empty ReverseIndex sized for n assets.
func NewReverseIndex(n int) *ReverseIndex {
	return &ReverseIndex{
		buckets: make(map[AssetID][]AssetID, n),
	}
}

// AddAsset registers an asset with an empty bucket.
// Registering the same asset twice keeps the existing bucket.
func (r *ReverseIndex) AddAsset(id AssetID) {
	if _, exists := r.buckets[id]; exists {
		return
	}
	r.buckets[id] = []AssetID{}
}

// AddReference records that referrer depends on target.
// It returns false when target is not part of the index. Duplicates are kept.
func (r *ReverseIndex) AddReference(target, referrer AssetID) bool {
	bucket, ok := r.buckets[target]
	if !ok {
		return false
	}
	r.buckets[target] = append(bucket, referrer)
	return true
}

// AppendUnique appends referrer to the bucket of target unless it is already present.
// It returns true only when the bucket changed.
func (r *ReverseIndex) AppendUnique(target, referrer AssetID) bool {
	bucket, ok := r.buckets[target]
	if !ok || slices.Contains(bucket, referrer) {
		return false
	}
	r.buckets[target] = append(bucket, referrer)
	return true
}

// Lookup returns a copy of the referrers of the asset.
// The second return value is false when the asset is not part of the index.
func (r *ReverseIndex) Lookup(id AssetID) ([]AssetID, bool) {
	bucket, ok := r.buckets[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(bucket), true
}

// Len returns the number of assets in the index.
func (r *ReverseIndex) Len() int {
	return len(r.buckets)
}
