// Package assetdb resolves asset dependencies of a Unity-style project on disk.
// Assets reference each other by the GUIDs stored in their ".meta" sidecar files;
// text-serialized assets are scanned for those GUIDs to find their direct dependencies.
package assetdb

import (
	"context"
	"encoding/binary"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depscope/internal/adapters/fs"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyResolver = (*Database)(nil)

var (
	// metaGUIDPattern matches the GUID declaration of a ".meta" file.
	metaGUIDPattern = regexp.MustCompile(`(?m)^guid:\s*([0-9a-fA-F]{32})\s*$`)
	// refGUIDPattern matches GUID references inside a serialized asset.
	refGUIDPattern = regexp.MustCompile(`guid:\s*([0-9a-fA-F]{32})`)
)

// missingMarker stands in for the content of a referenced asset whose file is gone.
const missingMarker = "\x00missing"

// parsedAsset is the cached scan of one asset file.
type parsedAsset struct {
	size    int64
	modTime time.Time
	digest  uint64
	refs    []string
}

// Database implements ports.DependencyResolver over the files below a project root.
// Parsed files are cached and revalidated by size and modification time; the GUID
// table is built once and dropped by Reset.
type Database struct {
	root   string
	cfg    *domain.Config
	walker *fs.Walker
	hasher *fs.Hasher

	guids  map[string]domain.AssetID
	parsed map[domain.AssetID]*parsedAsset
}

// New creates a Database for cfg.Root.
func New(cfg *domain.Config, walker *fs.Walker, hasher *fs.Hasher) *Database {
	return &Database{
		root:   cfg.Root,
		cfg:    cfg,
		walker: walker,
		hasher: hasher,
		parsed: make(map[domain.AssetID]*parsedAsset),
	}
}

// EnumerateUniverse lists every asset below the root, excluding ".meta" sidecars,
// in lexical path order.
func (d *Database) EnumerateUniverse(ctx context.Context) ([]domain.AssetID, error) {
	var universe []domain.AssetID
	for path := range d.walker.WalkFiles(d.root, d.cfg.Ignore) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.HasSuffix(path, domain.MetaExtension) {
			continue
		}
		id, err := d.assetID(path)
		if err != nil {
			return nil, err
		}
		universe = append(universe, id)
	}
	return universe, nil
}

// ForwardDeps returns the direct or transitive dependencies of id.
// Transitive dependencies are listed in breadth-first discovery order.
func (d *Database) ForwardDeps(ctx context.Context, id domain.AssetID, recursive bool) ([]domain.AssetID, error) {
	direct, err := d.directDeps(ctx, id)
	if err != nil {
		return nil, err
	}
	if !recursive {
		return direct, nil
	}
	return d.closure(ctx, id, direct)
}

// ContentFingerprint hashes the path, content and import settings of id and of
// every asset in its dependency closure.
func (d *Database) ContentFingerprint(ctx context.Context, id domain.AssetID) (domain.Fingerprint, error) {
	deps, err := d.ForwardDeps(ctx, id, true)
	if err != nil {
		return "", err
	}

	members := append([]domain.AssetID{id}, deps...)
	slices.SortFunc(members[1:], func(a, b domain.AssetID) int {
		return strings.Compare(a.String(), b.String())
	})

	digest := xxhash.New()
	for i, member := range members {
		_, _ = digest.WriteString(member.String())
		_, _ = digest.Write([]byte{0})

		parsed, err := d.parse(member)
		switch {
		case err == nil:
			if err := binary.Write(digest, binary.LittleEndian, parsed.digest); err != nil {
				return "", zerr.Wrap(err, "failed to write hash to digest")
			}
		case i > 0 && errors.Is(err, domain.ErrAssetNotFound):
			// A dependency whose file is gone still counts, as missing.
			_, _ = digest.WriteString(missingMarker)
		default:
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, d.metaDigest(member)); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return domain.Fingerprint(fs.FormatDigest(digest.Sum64())), nil
}

// Reset drops the GUID table and every parsed file.
func (d *Database) Reset() {
	d.guids = nil
	clear(d.parsed)
}

func (d *Database) directDeps(ctx context.Context, id domain.AssetID) ([]domain.AssetID, error) {
	parsed, err := d.parse(id)
	if err != nil {
		return nil, err
	}
	deps := []domain.AssetID{}
	if len(parsed.refs) == 0 {
		return deps, nil
	}

	guids, err := d.guidTable(ctx)
	if err != nil {
		return nil, err
	}

	for _, guid := range parsed.refs {
		dep, ok := guids[guid]
		if !ok || dep == id || slices.Contains(deps, dep) {
			continue
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func (d *Database) closure(ctx context.Context, id domain.AssetID, direct []domain.AssetID) ([]domain.AssetID, error) {
	seen := map[domain.AssetID]struct{}{id: {}}
	result := []domain.AssetID{}
	queue := slices.Clone(direct)

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		result = append(result, next)

		deps, err := d.directDeps(ctx, next)
		if err != nil {
			// A dangling reference does not break the closure of its referrer.
			if errors.Is(err, domain.ErrAssetNotFound) {
				continue
			}
			return nil, err
		}
		queue = append(queue, deps...)
	}
	return result, nil
}

// parse returns the cached scan of id, rescanning it when the file changed on disk.
func (d *Database) parse(id domain.AssetID) (*parsedAsset, error) {
	path := d.path(id)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "failed to resolve asset"), "asset", id.String())
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "asset is a directory"), "asset", id.String())
	}

	if cached, ok := d.parsed[id]; ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached, nil
	}

	parsed := &parsedAsset{size: info.Size(), modTime: info.ModTime()}
	if d.cfg.IsTextAsset(id) {
		data, err := os.ReadFile(path) //nolint:gosec // Path is below the project root
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read asset"), "path", path)
		}
		parsed.digest = d.hasher.HashBytes(data)
		parsed.refs = referencedGUIDs(data)
	} else {
		parsed.digest, err = d.hasher.ComputeFileHash(path)
		if err != nil {
			return nil, err
		}
	}

	d.parsed[id] = parsed
	return parsed, nil
}

// metaDigest hashes the ".meta" sidecar of id, or returns 0 when it has none.
func (d *Database) metaDigest(id domain.AssetID) uint64 {
	sum, err := d.hasher.ComputeFileHash(d.path(id) + domain.MetaExtension)
	if err != nil {
		return 0
	}
	return sum
}

// guidTable maps every GUID declared by a ".meta" file to the asset it describes.
func (d *Database) guidTable(ctx context.Context) (map[string]domain.AssetID, error) {
	if d.guids != nil {
		return d.guids, nil
	}

	guids := make(map[string]domain.AssetID)
	for path := range d.walker.WalkFiles(d.root, d.cfg.Ignore) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !strings.HasSuffix(path, domain.MetaExtension) {
			continue
		}
		data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project walk
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read meta file"), "path", path)
		}
		match := metaGUIDPattern.FindSubmatch(data)
		if match == nil {
			continue
		}
		id, err := d.assetID(strings.TrimSuffix(path, domain.MetaExtension))
		if err != nil {
			return nil, err
		}
		guids[strings.ToLower(string(match[1]))] = id
	}

	d.guids = guids
	return guids, nil
}

// referencedGUIDs returns the distinct GUIDs referenced by data, in order of appearance.
func referencedGUIDs(data []byte) []string {
	matches := refGUIDPattern.FindAllSubmatch(data, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		guid := strings.ToLower(string(m[1]))
		if !slices.Contains(refs, guid) {
			refs = append(refs, guid)
		}
	}
	return refs
}

func (d *Database) path(id domain.AssetID) string {
	return filepath.Join(d.root, filepath.FromSlash(id.String()))
}

func (d *Database) assetID(path string) (domain.AssetID, error) {
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		return domain.AssetID{}, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
	}
	return domain.NewAssetID(rel), nil
}
