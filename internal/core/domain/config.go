package domain

import (
	"slices"
	"strings"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "depscope.yaml"

	// MetaExtension is the extension of the sidecar files that carry asset GUIDs.
	MetaExtension = ".meta"

	// DefaultAtlasFolderPath is the folder scanned for atlas definitions.
	DefaultAtlasFolderPath = "Assets/Fix/Atlas/"

	// DefaultDiffHighlightPrefix marks assets that are highlighted in query output.
	DefaultDiffHighlightPrefix = "Assets/Version/"

	// DefaultAtlasExtension is the extension of atlas definition files.
	DefaultAtlasExtension = ".asset"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Config holds the process-wide analysis settings.
type Config struct {
	// Root is the absolute path of the project root. Asset ids are relative to it.
	Root string
	// AtlasFolderPath is the folder, relative to Root, that holds atlas definitions.
	AtlasFolderPath string
	// DiffHighlightPrefix is only used by the presentation layer to highlight results.
	DiffHighlightPrefix string
	// ImageExtensions classifies assets as images for atlas augmentation.
	ImageExtensions []string
	// AtlasExtension is the extension recognized as an atlas definition.
	AtlasExtension string
	// TextAssetExtensions lists the text-serialized asset types scanned for references.
	TextAssetExtensions []string
	// Ignore lists directory or file name patterns skipped while enumerating assets.
	Ignore []string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		AtlasFolderPath:     DefaultAtlasFolderPath,
		DiffHighlightPrefix: DefaultDiffHighlightPrefix,
		ImageExtensions:     []string{".png"},
		AtlasExtension:      DefaultAtlasExtension,
		TextAssetExtensions: []string{
			".anim",
			".asset",
			".controller",
			".mat",
			".overrideController",
			".physicMaterial",
			".playable",
			".prefab",
			".spriteatlas",
			".unity",
		},
		Ignore: []string{"Library", "Temp", "Logs", "obj"},
	}
}

// IsImage reports whether the asset is classified as an image by its extension.
func (c *Config) IsImage(id AssetID) bool {
	return containsFold(c.ImageExtensions, id.Ext())
}

// IsTextAsset reports whether the asset is text-serialized and may carry references.
func (c *Config) IsTextAsset(id AssetID) bool {
	return containsFold(c.TextAssetExtensions, id.Ext())
}

func containsFold(exts []string, ext string) bool {
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
