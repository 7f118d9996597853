package citation

// Issue messages reported by the built-in rules.
const (
	IssueUnsupportedFormat = "Unsupported format"
	IssueAPAFormat         = "Does not match APA format"
	IssueMLAFormat         = "Does not match MLA format"
)

// Fields holds the elements a rule could locate in a citation.
// Empty strings mean the element was not identified.
type Fields struct {
	Author string `json:"author,omitempty"`
	Year   string `json:"year,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Result is the verdict for a single citation.
//
// Issues is empty exactly when FormatCorrect is true. HasRequiredFields
// currently mirrors FormatCorrect.
type Result struct {
	FormatCorrect     bool     `json:"formatCorrect"`
	HasRequiredFields bool     `json:"hasRequiredFields"`
	Issues            []string `json:"issues"`
}

// unsupported is the fixed result for styles that are not registered.
func unsupported() Result {
	return Result{
		FormatCorrect:     false,
		HasRequiredFields: false,
		Issues:            []string{IssueUnsupportedFormat},
	}
}

// resultFor shapes a rule's match into a Result.
func resultFor(m Match, issue string) Result {
	if m.OK {
		return Result{
			FormatCorrect:     true,
			HasRequiredFields: true,
			Issues:            []string{},
		}
	}
	return Result{
		FormatCorrect:     false,
		HasRequiredFields: false,
		Issues:            []string{issue},
	}
}
