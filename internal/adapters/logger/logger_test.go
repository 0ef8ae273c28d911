package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/spritekit/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colour disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("wrote sprite_enum.hpp")

	assert.Equal(t, "wrote sprite_enum.hpp\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("pngquant: quality too low")

	assert.Equal(t, "! pngquant: quality too low\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "stdlib error",
			err:  os.ErrPermission,
			want: "✗ Error: permission denied\n",
		},
		{
			name: "multiline error",
			err:  errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			want: "✗ Error: yaml: unmarshal errors:\n" +
				"         line 3: cannot unmarshal\n",
		},
		{
			name: "stdlib chain is not traversed",
			err:  fmt.Errorf("load: %w", errors.New("connection refused")),
			want: "✗ Error: load: connection refused\n",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("exit status 1"), "command failed"),
				"failed to quantize image",
			),
			want: "✗ Error: failed to quantize image\n" +
				"\n" +
				"  Caused by:\n" +
				"    → command failed\n" +
				"    → exit status 1\n",
		},
		{
			name: "metadata is sorted",
			err: func() error {
				err := zerr.Wrap(errors.New("exit status 2"), "failed to quantize image")
				err = zerr.With(err, "path", "sprite/hero.png")
				return zerr.With(err, "exit_code", 2)
			}(),
			want: "✗ Error: failed to quantize image (exit_code=2, path=sprite/hero.png)\n" +
				"\n" +
				"  Caused by:\n" +
				"    → exit status 2\n",
		},
		{
			name: "metadata on plain error",
			err:  zerr.With(errors.New("no such file"), "path", ".quant.dat"),
			want: "✗ Error: (path=.quant.dat)\n" +
				"\n" +
				"  Caused by:\n" +
				"    → no such file\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
