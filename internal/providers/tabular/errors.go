package tabular

import (
	"io/fs"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

// NotFoundError reports a missing input file. It matches fs.ErrNotExist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "File not found: " + e.Path
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// valueError reuses the numeric core's value kind so callers map parse
// and argument failures the same way.
func valueError(op, format string, args ...interface{}) error {
	return common.ValueError(op, format, args...)
}
