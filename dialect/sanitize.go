package dialect

import (
	"regexp"
	"strings"
)

// Identifiers are interpolated into DDL text directly; query parameters do
// not apply to object names, so this allow-list is the injection barrier.
var (
	unsafeChars = regexp.MustCompile(`[^\w/.-]`)
	safeName    = regexp.MustCompile(`^[\w/.-]+$`)
)

// genericMaxIdentifier applies when no dialect is selected.
const genericMaxIdentifier = 64

// MaxNameLength is the upper bound for project-level names (project,
// database, source system, layers).
const MaxNameLength = 128

// Sanitize strips quoting characters and whitespace from an identifier,
// removes everything outside [A-Za-z0-9_/.-] and truncates the result to
// the dialect's identifier limit. It never fails; callers decide whether
// an empty result is an error.
func Sanitize(raw string, kind Kind) string {
	clean := Filter(raw)

	max := genericMaxIdentifier
	if p, ok := Get(string(kind)); ok {
		max = p.MaxIdentifier
	}
	if len(clean) > max {
		clean = clean[:max]
	}
	return clean
}

// Filter applies the quote-strip and character allow-list of Sanitize
// without the length truncation.
func Filter(raw string) string {
	stripped := strings.Trim(raw, "\"`[] \t\n\r")
	return unsafeChars.ReplaceAllString(stripped, "")
}

// Quote sanitizes an identifier and wraps it in the dialect's quote pair.
// Unknown dialects get the bare sanitized name.
func Quote(name string, kind Kind) string {
	p, ok := Get(string(kind))
	if !ok {
		return Sanitize(name, kind)
	}
	return p.Quote(name)
}

// EscapeLiteral turns a raw value into a single-quoted SQL string literal.
// The value passes through the identifier allow-list first: literals
// embedded in generated DDL (source-system labels, table names) are
// restricted to the identifier-safe character set, not full string syntax.
func EscapeLiteral(raw string, kind Kind) string {
	clean := unsafeChars.ReplaceAllString(strings.TrimSpace(raw), "")
	escaped := strings.ReplaceAll(clean, "'", "''")
	if kind == Postgres {
		// Generated text may pass through format-style interpolation later.
		escaped = strings.ReplaceAll(escaped, "%", "%%")
	}
	return "'" + escaped + "'"
}

// SafeName reports whether a project-level name is made only of word
// characters, slashes, periods and hyphens, within the length bound.
func SafeName(name string) bool {
	return len(name) <= MaxNameLength && safeName.MatchString(name)
}
