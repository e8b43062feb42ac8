package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/internal/adapters/fs"
	"go.trai.ch/depscope/internal/adapters/telemetry"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
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
  m_Name: common
  mSprites:
  - name: leaf
    width: 64
  - name: button
    width: 16
`

func meta(guid string) string {
	return "fileFormatVersion: 2\nguid: " + guid + "\n"
}

// newProject lays out panel.prefab -> ui.mat -> leaf.png, panel.prefab -> leaf.png,
// with leaf packed into the common atlas.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"Assets/UI/leaf.png":                 "\x89PNG",
		"Assets/UI/leaf.png.meta":            meta(leafGUID),
		"Assets/Materials/ui.mat":            "m_Texture: {fileID: 2800000, guid: " + leafGUID + ", type: 3}\n",
		"Assets/Materials/ui.mat.meta":       meta(matGUID),
		"Assets/UI/panel.prefab":             "m_Material: {guid: " + matGUID + "}\nm_Sprite: {guid: " + leafGUID + "}\n",
		"Assets/UI/panel.prefab.meta":        meta(prefabGUID),
		"Assets/Fix/Atlas/common.asset":      atlasYAML,
		"Assets/Fix/Atlas/common.asset.meta": meta(atlasGUID),
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	}
	return root
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	root   string
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	stdout *syncBuffer
	stderr *syncBuffer
	app    *app.App
}

// newFixture builds an App over a fresh project. The config loader always returns
// the default configuration rooted at the project.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		root:   newProject(t),
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		stdout: &syncBuffer{},
		stderr: &syncBuffer{},
	}

	f.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(string) (*domain.Config, error) {
		cfg := domain.DefaultConfig()
		cfg.Root = f.root
		return cfg, nil
	}).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(f.loader, f.logger, telemetry.NewNoOpTracer(), fs.NewWalker(), fs.NewHasher()).
		WithOutput(f.stdout, f.stderr)
	return f
}

func plain() app.Options {
	return app.Options{OutputMode: "plain"}
}
