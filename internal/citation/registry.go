package citation

import "sort"

// Registry maps style identifiers to rules. A Registry is immutable after
// construction and safe for concurrent use.
type Registry struct {
	rules map[Style]Rule
}

// NewRegistry builds a registry from the given rules. A later rule replaces
// an earlier one registered under the same style.
func NewRegistry(rules ...Rule) *Registry {
	m := make(map[Style]Rule, len(rules))
	for _, r := range rules {
		if r == nil {
			continue
		}
		m[ParseStyle(string(r.Style()))] = r
	}
	return &Registry{rules: m}
}

var defaultRegistry = NewRegistry(APA(), MLA())

// DefaultRegistry returns the registry holding the built-in styles.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the rule for a style, matching case-insensitively.
func (r *Registry) Lookup(style string) (Rule, bool) {
	rule, ok := r.rules[ParseStyle(style)]
	return rule, ok
}

// Styles returns the registered styles in sorted order.
func (r *Registry) Styles() []Style {
	styles := make([]Style, 0, len(r.rules))
	for s := range r.rules {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}

// Report is a Result together with what the rule could extract.
type Report struct {
	Result
	Style   Style   `json:"style"`
	Version string  `json:"version,omitempty"`
	Fields  *Fields `json:"fields,omitempty"`
}

// Check validates a citation and also returns the extracted fields.
func (r *Registry) Check(citation, style string) Report {
	s := ParseStyle(style)
	rule, ok := r.rules[s]
	if !ok {
		return Report{Result: unsupported(), Style: s}
	}

	m := rule.Match(citation)
	rep := Report{
		Result:  resultFor(m, rule.Issue()),
		Style:   s,
		Version: rule.Version(),
	}
	if m.OK {
		fields := m.Fields
		rep.Fields = &fields
	}
	return rep
}

// Validate judges the structural conformance of citation against style.
// Unknown styles yield the "Unsupported format" result.
func (r *Registry) Validate(citation, style string) Result {
	return r.Check(citation, style).Result
}

// Validate checks citation against style using the built-in registry.
func Validate(citation, style string) Result {
	return defaultRegistry.Validate(citation, style)
}

// Check is Validate plus extracted fields, using the built-in registry.
func Check(citation, style string) Report {
	return defaultRegistry.Check(citation, style)
}
