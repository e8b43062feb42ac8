package config

// Scopefile represents the structure of the depscope.yaml configuration file.
// Empty fields keep their defaults; lists replace the default list when present.
type Scopefile struct {
	Version             string   `yaml:"version"`
	Root                string   `yaml:"root"`
	AtlasFolderPath     string   `yaml:"atlasFolderPath"`
	DiffHighlightPrefix string   `yaml:"diffHighlightPrefix"`
	ImageExtensions     []string `yaml:"imageExtensions"`
	AtlasExtension      string   `yaml:"atlasExtension"`
	TextAssetExtensions []string `yaml:"textAssetExtensions"`
	Ignore              []string `yaml:"ignore"`
}

// SupportedVersion is the configuration version understood by this loader.
const SupportedVersion = "1"
