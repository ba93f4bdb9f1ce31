// Package version provides an immutable semantic-version value with three
// components (major, minor, patch), deterministic parsing, a total ordering
// over a single scalar encoding, pure bump operations, and an inclusive
// range-membership test with tri-state results.
//
// Values are never mutated after construction, so they are safe to share
// across goroutines without coordination.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version represents a semantic version with major, minor, and patch
// components. The zero value is 0.0.0.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// Sentinel errors returned by Parse. Use errors.Is to test for them.
var (
	// ErrEmpty is returned when the input is empty or all whitespace.
	ErrEmpty = errors.New("empty version string")

	// ErrMalformed is returned when the input does not have exactly three
	// dot-separated segments.
	ErrMalformed = errors.New("malformed version string")

	// ErrInvalidComponent is wrapped by ComponentError when a segment is not
	// a base-10 unsigned 32-bit integer.
	ErrInvalidComponent = errors.New("invalid version component")
)

// ComponentError reports which component of a version string failed to parse.
type ComponentError struct {
	Component Component
	Segment   string
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("invalid %s component %q", e.Component, e.Segment)
}

// Unwrap makes errors.Is(err, ErrInvalidComponent) work.
func (e *ComponentError) Unwrap() error {
	return ErrInvalidComponent
}

// Zero returns the zero version (0.0.0).
func Zero() Version {
	return Version{}
}

// Parse parses a version string in the format "major.minor.patch". Each
// segment must be a base-10 unsigned integer representable in 32 bits.
// Whitespace around the input and around each segment is ignored. There is
// no support for a "v" prefix, signs, or pre-release/build suffixes.
//
// Parsing is literal: the returned Version carries exactly the parsed
// components, and is never coerced to a default on failure.
func Parse(s string) (Version, error) {
	if strings.TrimSpace(s) == "" {
		return Version{}, ErrEmpty
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q has %d segments, want 3", ErrMalformed, s, len(parts))
	}

	var components [3]uint32
	for i, part := range parts {
		seg := strings.TrimSpace(part)
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return Version{}, &ComponentError{Component: componentBySignificance[i], Segment: seg}
		}
		components[i] = uint32(n)
	}

	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures and
// compile-time-known version literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version: MustParse(%q): %v", s, err))
	}
	return v
}

// String returns the version in canonical "major.minor.patch" form. The
// output of String round-trips through Parse.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Scalar returns the single-integer encoding of the version:
//
//	major*1_000_000 + minor*1_000 + patch
//
// The scalar drives equality, ordering, and hashing. It only encodes the
// triple uniquely while every component stays below 1000; larger components
// can alias to the same scalar. This is an accepted limit of the encoding.
func (v Version) Scalar() uint64 {
	return uint64(v.Major)*1_000_000 + uint64(v.Minor)*1_000 + uint64(v.Patch)
}
