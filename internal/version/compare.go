package version

import "cmp"

// Compare returns -1, 0, or +1 when v orders before, equal to, or after o.
// The ordering is ascending by scalar value; all relational predicates are
// derived from this single definition.
func (v Version) Compare(o Version) int {
	return cmp.Compare(v.Scalar(), o.Scalar())
}

// Equal reports whether v and o have equal scalar values. For components
// within [0, 999] this coincides with component-wise equality.
func (v Version) Equal(o Version) bool {
	return v.Scalar() == o.Scalar()
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// LessOrEqual reports whether v orders before or equal to o.
func (v Version) LessOrEqual(o Version) bool {
	return v.Compare(o) <= 0
}

// Greater reports whether v orders strictly after o.
func (v Version) Greater(o Version) bool {
	return v.Compare(o) > 0
}

// GreaterOrEqual reports whether v orders after or equal to o.
func (v Version) GreaterOrEqual(o Version) bool {
	return v.Compare(o) >= 0
}

// Compare is the nil-aware three-way comparison over optional versions.
// The rule, applied uniformly to every derived predicate: nil equals nil,
// and nil orders before any present version; two present versions order by
// scalar value.
func Compare(a, b *Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
