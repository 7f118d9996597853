package citation

import (
	"regexp"
	"strings"
)

// Match is a rule's verdict on one citation.
type Match struct {
	OK     bool
	Fields Fields
}

// Rule describes what "structurally correct" means for one style.
// Implementations must be safe for concurrent use and must not panic on any
// input string.
type Rule interface {
	// Style returns the identifier the rule is registered under.
	Style() Style

	// Version identifies the revision of the rule's policy.
	Version() string

	// Match evaluates the citation against the rule.
	Match(citation string) Match

	// Issue is the message reported when Match fails.
	Issue() string
}

// patternRule is a Rule backed by a single left-anchored regular expression.
// regexp is RE2-based, so matching stays linear in the input length.
type patternRule struct {
	style   Style
	version string
	issue   string
	pattern *regexp.Regexp
	extract func(groups []string) Fields
}

func (r *patternRule) Style() Style    { return r.style }
func (r *patternRule) Version() string { return r.version }
func (r *patternRule) Issue() string   { return r.issue }

func (r *patternRule) Match(citation string) Match {
	groups := r.pattern.FindStringSubmatch(citation)
	if groups == nil {
		return Match{}
	}
	return Match{OK: true, Fields: r.extract(groups)}
}

// apaPattern: author segment, "(YYYY).", then at least one more character.
// The first parenthesized four-digit group wins, even if it is a page or
// volume number rather than the publication year. \d is ASCII-only, so
// years written in other scripts' digits do not match.
var apaPattern = regexp.MustCompile(`^([^(]+)\((\d{4})\)\.(.+)`)

// mlaPattern: a leading segment terminated by a period, then anything.
var mlaPattern = regexp.MustCompile(`^([^.]+)\.(.+)`)

// APA returns the rule for "Author, A. (Year). Title." citations.
func APA() Rule {
	return &patternRule{
		style:   StyleAPA,
		version: "1",
		issue:   IssueAPAFormat,
		pattern: apaPattern,
		extract: func(g []string) Fields {
			return Fields{
				Author: strings.TrimSpace(g[1]),
				Year:   g[2],
				Title:  firstSentence(g[3]),
			}
		},
	}
}

// MLA returns the rule for "Author. Title. ..." citations. Only the leading
// period-terminated segment is checked; the full MLA grammar is not encoded.
func MLA() Rule {
	return &patternRule{
		style:   StyleMLA,
		version: "1",
		issue:   IssueMLAFormat,
		pattern: mlaPattern,
		extract: func(g []string) Fields {
			return Fields{
				Author: strings.TrimSpace(g[1]),
				Title:  firstSentence(g[2]),
			}
		},
	}
}

// firstSentence returns s up to its first period, trimmed.
func firstSentence(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
