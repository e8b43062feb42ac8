package domain

import "go.trai.ch/zerr"

var (
	// ErrNoAssetSelected is returned when a query is issued without an asset.
	ErrNoAssetSelected = zerr.New("no asset selected")

	// ErrNoReferences is returned when the queried asset has no entry in the reverse index.
	// It is distinct from an empty result: the asset is unknown to the index.
	ErrNoReferences = zerr.New("no references found")

	// ErrNotAnAtlas is returned when an atlas-only operation is applied to an asset of another type.
	ErrNotAnAtlas = zerr.New("asset is not an atlas")

	// ErrResolverFailed is returned when the dependency resolver fails for a single query.
	ErrResolverFailed = zerr.New("dependency resolution failed")

	// ErrAssetNotFound is returned when an asset does not exist in the project.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrAssetOutsideRoot is returned when a path resolves outside the project root.
	ErrAssetOutsideRoot = zerr.New("asset path is outside project root")

	// ErrAtlasFolderUnreadable is returned when the atlas folder exists but cannot be listed.
	ErrAtlasFolderUnreadable = zerr.New("failed to list atlas folder")

	// ErrAtlasLoadFailed is returned when an atlas definition cannot be read.
	ErrAtlasLoadFailed = zerr.New("failed to load atlas definition")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrUnknownCommand is returned by the session when a line cannot be parsed.
	ErrUnknownCommand = zerr.New("unknown command")
)
