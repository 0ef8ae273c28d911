// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// ToolRunner defines the interface for invoking external command line tools.
//
//go:generate mockgen -source=tool_runner.go -destination=mocks/mock_tool_runner.go -package=mocks
type ToolRunner interface {
	// Run executes argv synchronously and writes the tool's standard output to stdout.
	//
	// It returns an error if the tool cannot be started or exits with a non-zero status.
	Run(ctx context.Context, argv []string, stdout io.Writer) error
}
