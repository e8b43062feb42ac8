package analysis

import "go.trai.ch/depscope/internal/core/domain"

// Session owns every cache that lives for the duration of one analysis session.
// Nothing here survives a Reset or a process restart.
type Session struct {
	Reverse *ReverseIndexBuilder
	Forward *ForwardDependencyCache
	Atlas   *AtlasMembershipIndex

	last *domain.QueryResult
}

// Reset returns both indexes to the uninitialized state and drops the forward cache
// and the last result.
func (s *Session) Reset() {
	s.Reverse.Reset()
	s.Forward.Reset()
	s.Atlas.Reset()
	s.last = nil
}

// SessionState summarizes the caches of a session.
type SessionState struct {
	ReverseIndex  domain.IndexState
	IndexedAssets int
	AtlasIndex    domain.IndexState
	Atlases       int
	CachedForward int
}
