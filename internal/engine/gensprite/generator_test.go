package gensprite_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spritekit/internal/adapters/fs"
	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports/mocks"
	"go.trai.ch/spritekit/internal/engine/gensprite"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root      string
	cfg       *domain.Config
	runner    *mocks.MockToolRunner
	reporter  *mocks.MockReporter
	generator *gensprite.Generator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	runner := mocks.NewMockToolRunner(ctrl)
	reporter := mocks.NewMockReporter(ctrl)

	return &fixture{
		root:      root,
		cfg:       domain.DefaultConfig(root),
		runner:    runner,
		reporter:  reporter,
		generator: gensprite.NewGenerator(fs.NewWalker(), runner, fs.NewArtifactWriter(), reporter),
	}
}

func (f *fixture) addImages(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, dir), domain.DirPerm))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(f.root, dir, name), []byte("png"), domain.FilePerm))
	}
}

// identifyAs returns a fake identifier printing the dimensions registered for each base name.
func identifyAs(dims map[string][2]int) func(context.Context, []string, io.Writer) error {
	return func(_ context.Context, argv []string, w io.Writer) error {
		d, ok := dims[domain.BaseName(argv[len(argv)-1])]
		if !ok {
			return errors.New("exit status 1")
		}
		_, err := fmt.Fprintf(w, "%d %d\n", d[0], d[1])
		return err
	}
}

func (f *fixture) read(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, name))
	require.NoError(t, err)
	return data
}

func TestGenerator_Run(t *testing.T) {
	f := newFixture(t)
	f.addImages(t, "sprite", "b.png", "a.png", ".hidden.png", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(f.root, "sprite", "nested.png"), domain.DirPerm))

	f.runner.EXPECT().
		Run(gomock.Any(), []string{"gm", "identify", "-format", "%w %h", filepath.Join(f.root, "sprite", "a.png")}, gomock.Any()).
		DoAndReturn(identifyAs(map[string][2]int{"a": {4, 4}}))
	f.runner.EXPECT().
		Run(gomock.Any(), []string{"gm", "identify", "-format", "%w %h", filepath.Join(f.root, "sprite", "b.png")}, gomock.Any()).
		DoAndReturn(identifyAs(map[string][2]int{"b": {8, 8}}))
	f.reporter.EXPECT().OnArtifact("sprite_enum.hpp", true)
	f.reporter.EXPECT().OnArtifact("sprite_array.hpp", true)

	require.NoError(t, f.generator.Run(context.Background(), f.cfg))

	g := goldie.New(t)
	g.Assert(t, "enum_two", f.read(t, domain.DefaultEnumOutput))
	g.Assert(t, "array_two", f.read(t, domain.DefaultArrayOutput))
}

func TestGenerator_UnchangedArtifactsAreReported(t *testing.T) {
	f := newFixture(t)
	f.addImages(t, "sprite", "a.png", "b.png")
	dims := map[string][2]int{"a": {4, 4}, "b": {8, 8}}

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(identifyAs(dims)).Times(4)
	gomock.InOrder(
		f.reporter.EXPECT().OnArtifact("sprite_enum.hpp", true),
		f.reporter.EXPECT().OnArtifact("sprite_array.hpp", true),
		f.reporter.EXPECT().OnArtifact("sprite_enum.hpp", false),
		f.reporter.EXPECT().OnArtifact("sprite_array.hpp", false),
	)

	require.NoError(t, f.generator.Run(context.Background(), f.cfg))
	require.NoError(t, f.generator.Run(context.Background(), f.cfg))
}

func TestGenerator_Groups(t *testing.T) {
	f := newFixture(t)
	f.addImages(t, "sprite", "b.png", "a.png")
	f.addImages(t, "ui", "button.png")
	f.cfg.Sprites.CountConstants = true
	f.cfg.Sprites.Groups = []domain.SpriteGroup{
		{Enum: "sprite", Dir: "sprite"},
		{Enum: "ui", Dir: "ui"},
	}

	dims := map[string][2]int{"a": {4, 4}, "b": {8, 8}, "button": {32, 16}}
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(identifyAs(dims)).Times(3)
	f.reporter.EXPECT().OnArtifact(gomock.Any(), true).Times(2)

	require.NoError(t, f.generator.Run(context.Background(), f.cfg))

	g := goldie.New(t)
	g.Assert(t, "enum_groups_counts", f.read(t, domain.DefaultEnumOutput))
	g.Assert(t, "array_groups", f.read(t, domain.DefaultArrayOutput))
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		images  []string
		dims    map[string][2]int
		output  string
		wantErr error
	}{
		{
			name:    "empty directory",
			wantErr: domain.ErrNoSprites,
		},
		{
			name:    "identify fails",
			images:  []string{"a.png"},
			dims:    map[string][2]int{},
			wantErr: domain.ErrIdentifyFailed,
		},
		{
			name:    "unparseable output",
			images:  []string{"a.png"},
			output:  "4x4",
			wantErr: domain.ErrIdentifyParse,
		},
		{
			name:    "invalid sprite name",
			images:  []string{"hero-walk.png"},
			wantErr: domain.ErrInvalidSpriteName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addImages(t, "sprite", tt.images...)

			switch {
			case tt.output != "":
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []string, w io.Writer) error {
						_, err := io.WriteString(w, tt.output)
						return err
					})
			case tt.dims != nil:
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(identifyAs(tt.dims)).
					Times(len(tt.images))
			}

			err := f.generator.Run(context.Background(), f.cfg)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.NoFileExists(t, filepath.Join(f.root, domain.DefaultEnumOutput))
			assert.NoFileExists(t, filepath.Join(f.root, domain.DefaultArrayOutput))
		})
	}
}

func TestGenerator_MissingDirectory(t *testing.T) {
	f := newFixture(t)

	err := f.generator.Run(context.Background(), f.cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrListFailed.Error())
}
