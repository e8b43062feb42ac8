package assetdb

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.AtlasLoader = (*AtlasLoader)(nil)

// atlasObject is the part of a serialized object that carries atlas sprites.
// Pointers distinguish an absent list from an empty one. Fields stay nodes so that
// scalars keep their source text: a sprite named 007 is not the number 7.
type atlasObject struct {
	Sprites    *[]map[string]yaml.Node `yaml:"mSprites"`
	SpriteList *[]map[string]yaml.Node `yaml:"spriteList"`
}

func (o atlasObject) sprites() ([]map[string]yaml.Node, bool) {
	switch {
	case o.Sprites != nil:
		return *o.Sprites, true
	case o.SpriteList != nil:
		return *o.SpriteList, true
	default:
		return nil, false
	}
}

// AtlasLoader reads sprite atlas definitions serialized as Unity YAML.
type AtlasLoader struct {
	root     string
	atlasExt string
}

// NewAtlasLoader creates an AtlasLoader for the project described by cfg.
func NewAtlasLoader(cfg *domain.Config) *AtlasLoader {
	return &AtlasLoader{root: cfg.Root, atlasExt: cfg.AtlasExtension}
}

// Load reads the atlas stored at id.
// It returns nil and no error when the asset is not an atlas: wrong extension,
// binary serialization, or no sprite list in any of its objects.
func (l *AtlasLoader) Load(_ context.Context, id domain.AssetID) (*domain.AtlasEntry, error) {
	path := filepath.Join(l.root, filepath.FromSlash(id.String()))

	data, err := os.ReadFile(path) //nolint:gosec // Path is below the project root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "failed to load atlas"), "asset", id.String())
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read atlas"), "path", path)
	}

	if !strings.EqualFold(id.Ext(), l.atlasExt) {
		return nil, nil
	}

	sprites, ok := decodeSprites(data)
	if !ok {
		return nil, nil
	}

	entry := &domain.AtlasEntry{
		ID:      id,
		Members: make([]domain.AtlasMember, 0, len(sprites)),
	}
	for _, sprite := range sprites {
		entry.Members = append(entry.Members, toMember(sprite))
	}
	return entry, nil
}

// decodeSprites returns the sprite list of the first object in data that has one.
func decodeSprites(data []byte) ([]map[string]yaml.Node, bool) {
	dec := yaml.NewDecoder(bytes.NewReader(normalizeUnityYAML(data)))
	for {
		var doc map[string]atlasObject
		// io.EOF ends the stream; any other error means the file is not readable YAML.
		if err := dec.Decode(&doc); err != nil {
			return nil, false
		}
		for _, obj := range doc {
			if sprites, ok := obj.sprites(); ok {
				return sprites, true
			}
		}
	}
}

// normalizeUnityYAML strips the directives and object tags Unity writes, which
// standard YAML decoders reject.
func normalizeUnityYAML(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "%"):
			continue
		case strings.HasPrefix(line, "--- "):
			line = "---"
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func toMember(sprite map[string]yaml.Node) domain.AtlasMember {
	member := domain.AtlasMember{Metadata: make(map[string]string, len(sprite))}
	for key, node := range sprite {
		if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
			continue
		}
		if key == "name" {
			member.Name = node.Value
			continue
		}
		member.Metadata[key] = node.Value
	}
	return member
}
