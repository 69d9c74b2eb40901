package ports

import (
	"context"
	"io"

	"go.trai.ch/crab/internal/core/domain"
)

// CommandRunner is the narrow capability interface for invoking external
// build tools. Keeping subprocess spawning behind this interface lets the
// pipeline be tested against a fake toolchain.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Execute runs the command to completion, streaming its output to the
	// given writers. On a non-zero exit the returned error carries the exit
	// code and a bounded tail of the command's stderr as metadata.
	//
	// Interactive runners may execute the command under a pty, in which case
	// stdout and stderr are merged into the stdout writer.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error

	// Capture runs the command and returns its standard output, for tools
	// whose output is parsed rather than displayed.
	Capture(ctx context.Context, cmd *domain.Command) ([]byte, error)

	// LookPath reports the absolute path of a tool on the current PATH.
	LookPath(tool string) (string, error)
}
