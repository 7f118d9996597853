package citation

import "strings"

// Style identifies a citation style. Values are lower case.
type Style string

// Supported styles.
const (
	StyleAPA Style = "apa"
	StyleMLA Style = "mla"
)

// DefaultStyle is assumed when a caller does not name a style.
const DefaultStyle = StyleAPA

// ParseStyle normalizes a caller-supplied style identifier.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStyle(s string) Style {
	return Style(strings.ToLower(strings.TrimSpace(s)))
}

// String implements fmt.Stringer.
func (s Style) String() string {
	return string(s)
}
