package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/internal/adapters/config"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Root = tmpDir
	assert.Equal(t, want, cfg)
}

func TestLoad_DiscoversParentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "Assets", "UI")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "project"), domain.DirPerm))

	writeConfig(t, tmpDir, `
version: "1"
root: project
atlasFolderPath: Art/Atlases
diffHighlightPrefix: Assets/Patch/
imageExtensions: [".png", ".tga"]
ignore: ["Library"]
`)

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "project"), cfg.Root)
	assert.Equal(t, "Art/Atlases", cfg.AtlasFolderPath)
	assert.Equal(t, "Assets/Patch/", cfg.DiffHighlightPrefix)
	assert.Equal(t, []string{".png", ".tga"}, cfg.ImageExtensions)
	assert.Equal(t, []string{"Library"}, cfg.Ignore)
	assert.Equal(t, domain.DefaultAtlasExtension, cfg.AtlasExtension, "unset fields keep defaults")
	assert.Equal(t, domain.DefaultConfig().TextAssetExtensions, cfg.TextAssetExtensions)
}

func TestLoadFile_RootDefaultsToConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, cfg.Root)
}

func TestLoadFile_UnknownVersionWarns(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `version: "9"`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(log).LoadFile(path)
	require.NoError(t, err)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantKey string
	}{
		{
			name:    "malformed yaml",
			content: "ignore: [unterminated",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown field",
			content: "atlasFolder: Assets/Atlas",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "missing root",
			content: "root: does-not-exist",
			wantErr: domain.ErrInvalidConfig,
			wantKey: "root",
		},
		{
			name:    "absolute atlas folder",
			content: "atlasFolderPath: /Assets/Atlas",
			wantErr: domain.ErrInvalidConfig,
			wantKey: "atlasFolderPath",
		},
		{
			name:    "atlas folder escaping root",
			content: "atlasFolderPath: ../elsewhere",
			wantErr: domain.ErrInvalidConfig,
			wantKey: "atlasFolderPath",
		},
		{
			name:    "extension without dot",
			content: `imageExtensions: ["png"]`,
			wantErr: domain.ErrInvalidConfig,
			wantKey: "extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

			cfg, err := loader.LoadFile(path)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			meta := zErr.Metadata()
			assert.Equal(t, path, meta["path"])
			if tt.wantKey != "" {
				assert.Contains(t, meta, tt.wantKey)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}
