package complexity

// Metrics holds the structural counts and composite score for one document.
type Metrics struct {
	// Path is the repo-relative document path
	Path string `json:"path"`
	// LineCount is the total number of lines
	LineCount int `json:"lineCount"`
	// FunctionLikeBlockCount counts fenced blocks containing a function
	// definition
	FunctionLikeBlockCount int `json:"functionLikeBlockCount"`
	// SectionHeaderCount counts markdown section headers (levels 1-3)
	SectionHeaderCount int `json:"sectionHeaderCount"`
	// ImportLikeStatementCount counts import-style statements
	ImportLikeStatementCount int `json:"importLikeStatementCount"`
	// ComplexityScore is the weighted composite, 0-100
	ComplexityScore float64 `json:"complexityScore"`
}

// NeedsRefactoring reports whether any single refactoring trigger fires:
// more than 500 lines, a score above 70, or more than 30 function-like
// blocks.
func (m Metrics) NeedsRefactoring() bool {
	return m.LineCount > 500 ||
		m.ComplexityScore > 70 ||
		m.FunctionLikeBlockCount > 30
}
