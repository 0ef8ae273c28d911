package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spritekit/internal/adapters/config"
	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), domain.FilePerm)
	require.NoError(t, err)
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader, _ := newLoader(t)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(dir), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
quant:
  cache: build/quant.dat
  roots: [sprite, ui]
  command: [pngquant, --speed, "1"]
sprites:
  command: [identify, -format, "%w %h"]
  enumOutput: gen/enum.hpp
  arrayOutput: gen/array.hpp
  countConstants: true
  groups:
    - enum: sprite
      dir: sprite
    - enum: ui
      dir: ui
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, "build", "quant.dat"), cfg.CachePath())
	assert.Equal(t, []string{"sprite", "ui"}, cfg.Quant.Roots)
	assert.Equal(t, []string{"pngquant", "--speed", "1"}, cfg.Quant.Command)
	assert.Equal(t, []string{"identify", "-format", "%w %h"}, cfg.Sprites.Command)
	assert.Equal(t, []string{
		filepath.Join(dir, "gen", "enum.hpp"),
		filepath.Join(dir, "gen", "array.hpp"),
	}, cfg.ArtifactPaths())
	assert.True(t, cfg.Sprites.CountConstants)
	assert.Equal(t, []domain.SpriteGroup{
		{Enum: "sprite", Dir: "sprite"},
		{Enum: "ui", Dir: "ui"},
	}, cfg.Sprites.Groups)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
quant:
  roots: [art]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	want := domain.DefaultConfig(dir)
	want.Quant.Roots = []string{"art"}
	assert.Equal(t, want, cfg)
}

func TestLoad_EmptyFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any())

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(dir), cfg)
}

func TestLoad_RootResolvedAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
root: assets
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assets"), cfg.Root)
	assert.Equal(t, filepath.Join(dir, "assets", domain.DefaultCacheFile), cfg.CachePath())
}

func TestLoad_MissingVersionWarns(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "quant:\n  cache: q.dat\n")
	loader, log := newLoader(t)
	log.EXPECT().Warn(`spritekit.yaml has no version, assuming "1"`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "q.dat"), cfg.CachePath())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "version: [unclosed",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown key",
			content: "version: \"1\"\nquant:\n  caches: x\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "invalid enum name",
			content: "version: \"1\"\nsprites:\n  groups:\n    - enum: 2d\n      dir: sprite\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "duplicate enum name",
			content: "version: \"1\"\nsprites:\n  groups:\n    - {enum: a, dir: x}\n    - {enum: a, dir: y}\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "group without dir",
			content: "version: \"1\"\nsprites:\n  groups:\n    - enum: ui\n",
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			loader, _ := newLoader(t)

			cfg, err := loader.Load(dir)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ConfigFileName), domain.DirPerm))
	loader, _ := newLoader(t)

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
