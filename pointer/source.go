package pointer

import (
	"context"
	"errors"
)

// ErrNoPointerDevice indicates that no relative pointer device could be
// found or opened on this system.
var ErrNoPointerDevice = errors.New("pointer: no relative pointer device found")

// Source delivers pointer motion to a Tracker. Implementations read from a
// device until the context ends or the device fails.
type Source interface {
	// Run blocks, applying motion to the tracker as it arrives. It returns
	// nil once ctx is done; any other return is a device failure.
	Run(ctx context.Context, t *Tracker) error

	// String names the underlying device for logs.
	String() string
}
