// Package config provides the configuration loader for depscope.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and its parents for depscope.yaml.
// When none is found the defaults are returned, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	configPath, found := findConfiguration(abs)
	if !found {
		cfg := domain.DefaultConfig()
		cfg.Root = abs
		if err := validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at configPath. A relative root is resolved
// against the directory of the file.
func (l *Loader) LoadFile(configPath string) (*domain.Config, error) {
	var file Scopefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", configPath)
	}

	cfg := merge(domain.DefaultConfig(), &file)
	cfg.Root = resolveRoot(abs, file.Root)

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func merge(cfg *domain.Config, file *Scopefile) *domain.Config {
	if file.AtlasFolderPath != "" {
		cfg.AtlasFolderPath = file.AtlasFolderPath
	}
	if file.DiffHighlightPrefix != "" {
		cfg.DiffHighlightPrefix = file.DiffHighlightPrefix
	}
	if file.AtlasExtension != "" {
		cfg.AtlasExtension = file.AtlasExtension
	}
	if file.ImageExtensions != nil {
		cfg.ImageExtensions = file.ImageExtensions
	}
	if file.TextAssetExtensions != nil {
		cfg.TextAssetExtensions = file.TextAssetExtensions
	}
	if file.Ignore != nil {
		cfg.Ignore = file.Ignore
	}
	return cfg
}

func validate(cfg *domain.Config) error {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "project root does not exist"), "root", cfg.Root)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "project root is not a directory"), "root", cfg.Root)
	}

	folder := filepath.ToSlash(cfg.AtlasFolderPath)
	if path.IsAbs(folder) || filepath.IsAbs(cfg.AtlasFolderPath) || strings.HasPrefix(path.Clean(folder), "..") {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "atlasFolderPath must be relative to the root"), "atlasFolderPath", cfg.AtlasFolderPath)
	}

	if !isExtension(cfg.AtlasExtension) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "extensions must start with a dot"), "atlasExtension", cfg.AtlasExtension)
	}
	for _, ext := range append(append([]string{}, cfg.ImageExtensions...), cfg.TextAssetExtensions...) {
		if !isExtension(ext) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "extensions must start with a dot"), "extension", ext)
		}
	}
	return nil
}

func isExtension(ext string) bool {
	return len(ext) > 1 && strings.HasPrefix(ext, ".")
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and strictly unmarshals it into the target struct.
// An empty file leaves target untouched.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to load configuration")
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, parseErr), "failed to load configuration")
	}

	return nil
}
