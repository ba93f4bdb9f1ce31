// Package change records version changes. A change classifies a free-form
// description into the version component it should bump, applies the bump,
// and hands the caller an audit entry. Entries live only in memory and only
// for as long as the caller keeps them; nothing here persists anything.
package change

import (
	"regexp"
	"strings"
	"time"

	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// Entry is the caller-owned audit record of a single applied change.
type Entry struct {
	From      version.Version
	To        version.Version
	Component version.Component
	Note      string
	At        time.Time
}

// descriptionRegex matches conventional-commit style descriptions:
// type(scope)!: text, type(scope): text, type!: text, type: text
var descriptionRegex = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?(!)?\s*:\s*(.*)$`)

// Classify maps a conventional-commit style description to the version
// component it should bump:
//
//	feat  -> minor
//	fix   -> patch
//	either with "!" or a BREAKING CHANGE footer in the body -> major
//
// Any other description does not warrant a bump and returns ok=false.
func Classify(subject, body string) (c version.Component, ok bool) {
	matches := descriptionRegex.FindStringSubmatch(subject)
	if matches == nil {
		return 0, false
	}

	kind := matches[1]
	if kind != "feat" && kind != "fix" {
		return 0, false
	}

	breaking := matches[3] == "!" || containsBreakingChange(body)
	switch {
	case breaking:
		return version.Major, true
	case kind == "feat":
		return version.Minor, true
	default:
		return version.Patch, true
	}
}

// containsBreakingChange checks the body for a breaking change footer.
func containsBreakingChange(body string) bool {
	bodyUpper := strings.ToUpper(body)
	return strings.Contains(bodyUpper, "BREAKING CHANGE:") ||
		strings.Contains(bodyUpper, "BREAKING-CHANGE:")
}

// Apply bumps v by the given component and returns the new version together
// with an audit entry carrying the optional note. The input version is not
// modified.
func Apply(v version.Version, c version.Component, note string) (version.Version, Entry) {
	next := v.Bump(c)
	return next, Entry{
		From:      v,
		To:        next,
		Component: c,
		Note:      note,
		At:        time.Now(),
	}
}

// Log is an in-memory, caller-constructed sequence of change entries.
type Log struct {
	entries []Entry
}

// Record applies a change against the log's latest version (or the given
// version for the first entry) and appends the resulting entry.
func (l *Log) Record(v version.Version, c version.Component, note string) version.Version {
	if len(l.entries) > 0 {
		v = l.entries[len(l.entries)-1].To
	}
	next, entry := Apply(v, c, note)
	l.entries = append(l.entries, entry)
	return next
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Latest returns the version produced by the most recent entry, or the zero
// version when nothing has been recorded.
func (l *Log) Latest() version.Version {
	if len(l.entries) == 0 {
		return version.Zero()
	}
	return l.entries[len(l.entries)-1].To
}
