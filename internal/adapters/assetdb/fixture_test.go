package assetdb_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/internal/adapters/assetdb"
	"go.trai.ch/depscope/internal/adapters/fs"
	"go.trai.ch/depscope/internal/core/domain"
)

const (
	leafGUID   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	matGUID    = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	prefabGUID = "cccccccccccccccccccccccccccccccc"
	atlasGUID  = "dddddddddddddddddddddddddddddddd"
)

const atlasYAML = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!114 &11400000
MonoBehaviour:
  m_ObjectHideFlags: 0
  m_Name: common
  material: {fileID: 2100000, guid: ` + matGUID + `, type: 2}
  mSprites:
  - name: leaf
    x: 0
    y: 0
    width: 64
    height: 32
    paddingLeft: 0
  - name: button
    x: 64
    y: 0
    width: 16
    height: 16
  mPixelSize: 1
`

func meta(guid string) string {
	return "fileFormatVersion: 2\nguid: " + guid + "\nNativeFormatImporter:\n  userData: \n"
}

// newProject lays out a small project:
// panel.prefab -> ui.mat -> leaf.png, panel.prefab -> leaf.png, common.asset -> ui.mat.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, root, map[string]string{
		"Assets/UI/leaf.png":                 "\x89PNG fake image bytes",
		"Assets/UI/leaf.png.meta":            meta(leafGUID),
		"Assets/Materials/ui.mat":            "Material:\n  m_Texture: {fileID: 2800000, guid: " + leafGUID + ", type: 3}\n",
		"Assets/Materials/ui.mat.meta":       meta(matGUID),
		"Assets/UI/panel.prefab":             prefab(matGUID, leafGUID, matGUID, "0000000000000000f000000000000000"),
		"Assets/UI/panel.prefab.meta":        meta(prefabGUID),
		"Assets/Fix/Atlas/common.asset":      atlasYAML,
		"Assets/Fix/Atlas/common.asset.meta": meta(atlasGUID),
		"Library/ArtifactDB":                 "ignored",
	})
	return root
}

func prefab(guids ...string) string {
	out := "--- !u!1 &100\nGameObject:\n  m_Name: panel\n"
	for _, g := range guids {
		out += "  - ref: {fileID: 10, guid: " + g + ", type: 2}\n"
	}
	return out
}

func write(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	}
}

func newDatabase(root string) *assetdb.Database {
	cfg := domain.DefaultConfig()
	cfg.Root = root
	return assetdb.New(cfg, fs.NewWalker(), fs.NewHasher())
}
