// Package pairtable defines sentinel errors for the site-pair containers of
// github.com/katalvlaran/prism.
package pairtable

import "errors"

// Sentinel errors for pair-container construction and access. All are
// returned, never panicked, and matched with errors.Is.
var (
	// ErrBadShape indicates non-positive site count or grid length.
	ErrBadShape = errors.New("pairtable: shape dimensions must be > 0")
	// ErrOutOfRange indicates a site index outside [0, n).
	ErrOutOfRange = errors.New("pairtable: site index out of range")
	// ErrLengthMismatch indicates a pair function whose length differs from the grid length.
	ErrLengthMismatch = errors.New("pairtable: pair function length mismatch")
	// ErrNoSites indicates a PairTable constructed with no site labels.
	ErrNoSites = errors.New("pairtable: at least one site type required")
	// ErrDuplicateSite indicates a repeated site label at construction.
	ErrDuplicateSite = errors.New("pairtable: duplicate site type")
	// ErrUnknownSite indicates a site label not registered at construction.
	ErrUnknownSite = errors.New("pairtable: unknown site type")
	// ErrPairUnset indicates a read of (or completeness check over) a pair
	// that was never assigned.
	ErrPairUnset = errors.New("pairtable: pair not set")
)
