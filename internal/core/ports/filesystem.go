package ports

// DirEntry is a single entry of a listed folder.
type DirEntry struct {
	// Name is the file name of the entry.
	Name string
	// IsMetadata reports whether the entry is an editor sidecar file.
	IsMetadata bool
	// HasAtlasExtension reports whether the entry carries the atlas extension.
	HasAtlasExtension bool
}

// Filesystem lists project folders.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// ListEntries returns the files directly inside dir, which is relative to the project root.
	// A missing folder is reported with an error wrapping fs.ErrNotExist.
	ListEntries(dir string) ([]DirEntry, error)
}
