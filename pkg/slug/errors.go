package slug

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every error caused by a bad call site.
// Callers should fix the arguments rather than retry.
var ErrInvalidArgument = errors.New("slug: invalid argument")

// Argument errors, all matching ErrInvalidArgument with errors.Is.
var (
	ErrInvalidSeparator = fmt.Errorf("%w: separator must be non-empty ASCII", ErrInvalidArgument)
	ErrInvalidCase      = fmt.Errorf("%w: unknown case mode", ErrInvalidArgument)
	ErrInvalidLength    = fmt.Errorf("%w: length must not be negative", ErrInvalidArgument)
)

// Allocation errors.
var (
	ErrNilStore     = errors.New("slug: allocator requires a store")
	ErrEmptySlug    = errors.New("slug: input produces an empty slug")
	ErrNoUniqueSlug = errors.New("slug: no unique slug within attempt limit")
)
