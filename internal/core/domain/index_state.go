package domain

// IndexState is the lifecycle state of a lazily built index.
type IndexState uint8

const (
	// IndexUninitialized means the index has not been built in the current session.
	IndexUninitialized IndexState = iota
	// IndexBuilt means the index has been built and is reused until the session is reset.
	IndexBuilt
)

// String returns the human-readable name of the state.
func (s IndexState) String() string {
	if s == IndexBuilt {
		return "built"
	}
	return "uninitialized"
}
