package cli

import (
	"errors"

	"github.com/katalvlaran/cratefit/munkres"
	"github.com/katalvlaran/cratefit/packing"
	"github.com/katalvlaran/cratefit/report"
	"github.com/katalvlaran/cratefit/search"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1 // capacity, convergence or I/O failure
	ExitInput     = 2 // malformed input, flags or config
	ExitInvariant = 3 // broken solver invariant
)

// ExitCode maps an error returned by a command pipeline to its exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, munkres.ErrInvariant):
		return ExitInvariant
	case errors.Is(err, packing.ErrInvalidDimensions),
		errors.Is(err, packing.ErrInvalidCrateEdge),
		errors.Is(err, packing.ErrInvalidBoxEdge),
		errors.Is(err, search.ErrDimensions),
		errors.Is(err, report.ErrFormat),
		errors.Is(err, ErrConfig),
		errors.Is(err, ErrUsage):
		return ExitInput
	default:
		return ExitFailure
	}
}
