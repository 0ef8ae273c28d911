// Package shell provides a ToolRunner that invokes external command line tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner. Tool stderr is forwarded to logger line by line.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes argv and waits for it to complete.
func (r *Runner) Run(ctx context.Context, argv []string, stdout io.Writer) error {
	if len(argv) == 0 {
		return domain.ErrToolNotConfigured
	}
	if stdout == nil {
		stdout = io.Discard
	}

	stderrLog := &logWriter{logger: r.logger, prefix: argv[0] + ": "}
	defer func() { _ = stderrLog.Close() }()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // tool comes from the project configuration
	cmd.Stdout = stdout
	cmd.Stderr = stderrLog

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrToolFailed.Error()), "tool", argv[0]), "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Warn(w.prefix + msg)
}
