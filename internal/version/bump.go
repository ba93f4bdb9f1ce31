package version

import "fmt"

// Component identifies one of the three version components, ordered by
// significance: Major > Minor > Patch.
type Component int

const (
	Patch Component = iota
	Minor
	Major
)

// componentBySignificance maps a segment index in "major.minor.patch" order
// to its Component.
var componentBySignificance = [3]Component{Major, Minor, Patch}

// String returns the lower-case component name.
func (c Component) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return fmt.Sprintf("component(%d)", int(c))
	}
}

// ParseComponent parses a component name ("major", "minor", or "patch").
func ParseComponent(s string) (Component, error) {
	switch s {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	default:
		return 0, fmt.Errorf("unknown version component %q (want major, minor, or patch)", s)
	}
}

// Bump returns a new Version with the given component incremented and every
// lower-significance component reset to zero. The receiver is never
// modified; the invariant is enforced by construction, not by validation.
//
//	Bump(Major): major+1, minor=0, patch=0
//	Bump(Minor): minor+1, patch=0
//	Bump(Patch): patch+1
//
// An unknown component leaves the version unchanged.
func (v Version) Bump(c Component) Version {
	switch c {
	case Major:
		return Version{Major: v.Major + 1}
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
