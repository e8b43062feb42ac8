package domain

// QueryKind identifies which analysis produced a QueryResult.
type QueryKind string

const (
	// QueryForward lists what an asset depends on, transitively.
	QueryForward QueryKind = "dependencies"
	// QueryReferences lists what depends on an asset, including its owning atlas.
	QueryReferences QueryKind = "references"
	// QueryAtlasMembers lists the members packed into an atlas.
	QueryAtlasMembers QueryKind = "atlas"
)

// ParseQueryKind converts a user-facing name into a QueryKind.
func ParseQueryKind(s string) (QueryKind, bool) {
	switch s {
	case "deps", "dependencies", "depends":
		return QueryForward, true
	case "refs", "references", "uses":
		return QueryReferences, true
	case "atlas", "members":
		return QueryAtlasMembers, true
	default:
		return "", false
	}
}

// QueryResult is the answer to the most recent query.
// Items holds asset paths, or member names for QueryAtlasMembers.
type QueryResult struct {
	Kind    QueryKind `json:"kind"`
	Subject AssetID   `json:"subject"`
	Items   []string  `json:"items"`
}

// NewQueryResult builds a result from a list of asset ids.
func NewQueryResult(kind QueryKind, subject AssetID, assets []AssetID) *QueryResult {
	return &QueryResult{
		Kind:    kind,
		Subject: subject,
		Items:   Strings(assets),
	}
}
