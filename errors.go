package simplecanvas

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *OpError) by drawing operations and
// smoke steps. Use errors.Is to tell them apart.
var (
	// ErrInvalidArgument reports a missing, non-finite or out-of-range
	// parameter, or a color string that does not parse.
	ErrInvalidArgument = errors.New("simplecanvas: invalid argument")

	// ErrUnknownSurface reports a surface handle that is not registered.
	ErrUnknownSurface = errors.New("simplecanvas: unknown surface")
)

// OpError describes a rejected operation. Rejected operations never draw
// and never mutate emitter state.
type OpError struct {
	Op     string // operation name, e.g. "drawDoor"
	Err    error  // ErrInvalidArgument or ErrUnknownSurface
	Detail string // human readable reason
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *OpError) Unwrap() error { return e.Err }

// reject logs the failure at Warn and returns it as an *OpError.
func reject(op string, kind error, detail string) error {
	err := &OpError{Op: op, Err: kind, Detail: detail}
	Logger().Warn("simplecanvas: sanity check failed", "op", op, "err", kind, "detail", detail)
	return err
}

func invalid(op, format string, args ...any) error {
	return reject(op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}
