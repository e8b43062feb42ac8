package domain

import "slices"

// AtlasMember is a named sub-image packed into an atlas.
type AtlasMember struct {
	Name     string
	Metadata map[string]string
}

// AtlasEntry describes one atlas definition and the members it packs, in file order.
type AtlasEntry struct {
	ID      AssetID
	Members []AtlasMember
}

// MemberNames returns the member names in file order.
func (a *AtlasEntry) MemberNames() []string {
	names := make([]string, len(a.Members))
	for i, m := range a.Members {
		names[i] = m.Name
	}
	return names
}

// HasMember reports whether the atlas packs a member with exactly the given name.
func (a *AtlasEntry) HasMember(name string) bool {
	return slices.ContainsFunc(a.Members, func(m AtlasMember) bool {
		return m.Name == name
	})
}
