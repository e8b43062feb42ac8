package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/internal/core/domain"
)

func TestReverseIndex_AddReference(t *testing.T) {
	a, b, c := domain.NewAssetID("A"), domain.NewAssetID("B"), domain.NewAssetID("C")
	outside := domain.NewAssetID("Packages/outside.mat")

	idx := domain.NewReverseIndex(3)
	idx.AddAsset(a)
	idx.AddAsset(b)
	idx.AddAsset(c)

	assert.True(t, idx.AddReference(b, a))
	assert.True(t, idx.AddReference(c, b))
	assert.False(t, idx.AddReference(outside, a), "targets outside the index are ignored")

	refs, ok := idx.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, []domain.AssetID{a}, refs)

	refs, ok = idx.Lookup(a)
	require.True(t, ok)
	assert.Empty(t, refs)
	assert.NotNil(t, refs, "present assets return an empty, non-nil bucket")

	_, ok = idx.Lookup(outside)
	assert.False(t, ok)
}

func TestReverseIndex_KeepsDuplicates(t *testing.T) {
	a, b := domain.NewAssetID("A"), domain.NewAssetID("B")

	idx := domain.NewReverseIndex(2)
	idx.AddAsset(a)
	idx.AddAsset(b)
	idx.AddReference(b, a)
	idx.AddReference(b, a)

	refs, _ := idx.Lookup(b)
	assert.Equal(t, []domain.AssetID{a, a}, refs)
}

func TestReverseIndex_AppendUnique(t *testing.T) {
	img, atlas := domain.NewAssetID("leaf.png"), domain.NewAssetID("atlas.asset")

	idx := domain.NewReverseIndex(1)
	idx.AddAsset(img)

	assert.True(t, idx.AppendUnique(img, atlas))
	assert.False(t, idx.AppendUnique(img, atlas))

	refs, _ := idx.Lookup(img)
	assert.Equal(t, []domain.AssetID{atlas}, refs)
}

func TestReverseIndex_LookupReturnsCopy(t *testing.T) {
	a, b := domain.NewAssetID("A"), domain.NewAssetID("B")

	idx := domain.NewReverseIndex(2)
	idx.AddAsset(a)
	idx.AddAsset(b)
	idx.AddReference(b, a)

	refs, _ := idx.Lookup(b)
	refs[0] = domain.NewAssetID("mutated")

	again, _ := idx.Lookup(b)
	assert.Equal(t, []domain.AssetID{a}, again)
}

func TestReverseIndex_AddAssetTwice(t *testing.T) {
	ids := domain.NewAssetIDs("z", "a", "m")

	idx := domain.NewReverseIndex(len(ids))
	for _, id := range ids {
		idx.AddAsset(id)
	}
	idx.AddReference(ids[0], ids[1])
	idx.AddAsset(ids[0])

	assert.Equal(t, 3, idx.Len())
	refs, ok := idx.Lookup(ids[0])
	require.True(t, ok)
	assert.Equal(t, ids[1:2], refs, "re-registering keeps the existing bucket")
}
