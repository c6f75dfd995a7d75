package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for canvas operations.
var (
	// ErrBadShape indicates non-positive dimensions or a value slice of the wrong length.
	ErrBadShape = errors.New("canvas: invalid shape")

	// ErrOutOfRange indicates an (x, y) outside the canvas.
	ErrOutOfRange = errors.New("canvas: coordinate out of range")

	// ErrUnknownPolicy indicates an unrecognised clamp policy name.
	ErrUnknownPolicy = errors.New("canvas: unknown clamp policy")
)

// ClampPolicy selects the floor applied when ink is subtracted.
type ClampPolicy int

const (
	// Unclamped lets residual values go negative.
	Unclamped ClampPolicy = iota

	// ClampZero floors residual values at zero.
	ClampZero
)

// String returns the policy name used in configuration files and flags.
func (p ClampPolicy) String() string {
	switch p {
	case Unclamped:
		return "unclamped"
	case ClampZero:
		return "clamp-zero"
	default:
		return fmt.Sprintf("ClampPolicy(%d)", int(p))
	}
}

// Valid reports whether p is a known policy.
func (p ClampPolicy) Valid() bool {
	return p == Unclamped || p == ClampZero
}

// ParseClampPolicy maps a policy name back to its value.
func ParseClampPolicy(s string) (ClampPolicy, error) {
	switch s {
	case "unclamped", "":
		return Unclamped, nil
	case "clamp-zero", "clamped":
		return ClampZero, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
