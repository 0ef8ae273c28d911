package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spritekit/internal/core/domain"
)

func TestIsQuantCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "hero.png", want: true},
		{name: "icon-fs8.png", want: false},
		{name: "icon-fs8-x.png", want: true},
		{name: ".hidden.png", want: false},
		{name: "notes.txt", want: false},
		{name: "HERO.PNG", want: false},
		{name: "archive.png.bak", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsQuantCandidate(tt.name))
		})
	}
}

func TestIsImage_KeepsProcessedNames(t *testing.T) {
	// The generator lists every visible image, including quantizer leftovers.
	assert.True(t, domain.IsImage("icon-fs8.png"))
	assert.False(t, domain.IsImage(".icon.png"))
}

func TestProcessedPath(t *testing.T) {
	got := domain.ProcessedPath(filepath.Join("sprite", "hero.png"))
	assert.Equal(t, filepath.Join("sprite", "hero-fs8.png"), got)
	assert.False(t, domain.IsQuantCandidate(filepath.Base(got)))
}

func TestEnumSymbol(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "hero", want: "HERO"},
		{name: "treasure01", want: "TREASURE01"},
		{name: "wall_top", want: "WALL_TOP"},
		{name: "wall-top", wantErr: true},
		{name: "1up", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.EnumSymbol(tt.name)
			if tt.wantErr {
				assert.ErrorContains(t, err, domain.ErrInvalidSpriteName.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortSprites(t *testing.T) {
	sprites := []domain.Sprite{
		{Name: "b", Width: 8, Height: 8},
		{Name: "a", Width: 4, Height: 4},
		{Name: "B", Width: 2, Height: 2},
	}

	domain.SortSprites(sprites)

	names := []string{sprites[0].Name, sprites[1].Name, sprites[2].Name}
	assert.Equal(t, []string{"B", "a", "b"}, names)
}

func TestMtime_Deterministic(t *testing.T) {
	ts := time.Unix(1700000000, 123456789)
	assert.Equal(t, domain.Mtime(ts), domain.Mtime(ts))
	assert.InDelta(t, 1700000000.123456789, domain.Mtime(ts), 1e-6)
	assert.NotEqual(t, domain.Mtime(ts), domain.Mtime(ts.Add(time.Second)))
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("/project")

	assert.Equal(t, []string{"sprite", "ui", "level"}, cfg.Quant.Roots)
	assert.Equal(t, []string{"pngquant"}, cfg.Quant.Command)
	assert.Equal(t, filepath.Join("/project", ".quant.dat"), cfg.CachePath())
	assert.Equal(t, []string{
		filepath.Join("/project", "sprite_enum.hpp"),
		filepath.Join("/project", "sprite_array.hpp"),
	}, cfg.ArtifactPaths())
	require.Len(t, cfg.Sprites.Groups, 1)
	assert.Equal(t, domain.SpriteGroup{Enum: "sprite", Dir: "sprite"}, cfg.Sprites.Groups[0])
}

func TestConfig_ResolveAbsolute(t *testing.T) {
	cfg := domain.DefaultConfig("/project")
	assert.Equal(t, "/elsewhere/cache", cfg.Resolve("/elsewhere/cache"))
}

func TestQuantStats_Saved(t *testing.T) {
	stats := domain.QuantStats{BytesBefore: 100000, BytesAfter: 42000}
	assert.Equal(t, int64(58000), stats.Saved())
}
