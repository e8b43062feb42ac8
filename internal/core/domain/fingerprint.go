package domain

// Fingerprint is an opaque value describing the content state of an asset.
// Two fingerprints compare equal exactly when the content they describe is unchanged.
type Fingerprint string

// ForwardDependencyEntry is a memoized forward-dependency result.
// Dependencies is only valid while the asset still reports Fingerprint.
type ForwardDependencyEntry struct {
	Fingerprint  Fingerprint
	Dependencies []AssetID
}
