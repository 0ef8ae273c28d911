// Package linear provides a synchronous, line-oriented progress reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/ui/output"
	"go.trai.ch/spritekit/internal/ui/style"
)

// Reporter implements ports.Reporter.
// Per-file progress goes to stdout, summaries go to stderr.
type Reporter struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu sync.Mutex
}

// NewReporter creates a new Reporter writing with the given colour profile.
func NewReporter(stdout, stderr io.Writer, profile termenv.Profile) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Reporter{
		stdout: output.NewWithProfile(stdout, profile),
		stderr: output.NewWithProfile(stderr, profile),
	}
}

// OnQuantized prints "<path>: <before> -> <after>".
func (r *Reporter) OnQuantized(path string, before, after int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	arrow := r.stdout.String(style.Arrow).Foreground(r.stdout.Color(string(style.Slate))).String()
	_, _ = fmt.Fprintf(r.stdout, "%s: %d %s %d\n", path, before, arrow, after)
}

// OnQuantComplete prints a summary when at least one file was processed.
func (r *Reporter) OnQuantComplete(stats domain.QuantStats) {
	if stats.Processed == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.stderr.String(style.Check).Foreground(r.stderr.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s quantized %d file(s), %d unchanged, saved %d bytes in %s\n",
		check, stats.Processed, stats.Skipped, stats.Saved(), stats.Duration.Round(time.Millisecond))
}

// OnArtifact prints whether a generated file was rewritten.
func (r *Reporter) OnArtifact(path string, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !changed {
		msg := r.stderr.String(path + " unchanged").Faint().String()
		_, _ = fmt.Fprintln(r.stderr, msg)
		return
	}

	check := r.stderr.String(style.Check).Foreground(r.stderr.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s wrote %s\n", check, path)
}
