package redundancy

// Fragment is one delimited code block extracted from a document.
type Fragment struct {
	// SourceDocument is the repo-relative path of the owning document
	SourceDocument string `json:"sourceDocument"`
	// Content is the raw text inside the fence
	Content string `json:"-"`
	// StartLine is the 1-based line of the opening fence
	StartLine int `json:"startLine"`
	// EndLine is the 1-based last line of the fragment content
	EndLine int `json:"endLine"`
	// ContentHash is the hex-encoded sha256 of the exact content bytes
	ContentHash string `json:"contentHash"`
}

// LineCount returns the number of lines in the fragment content.
func (f Fragment) LineCount() int {
	n := 1
	for _, r := range f.Content {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Location describes one cluster member for the report.
type Location struct {
	File  string `json:"file"`
	Lines string `json:"lines"`
	Size  int    `json:"size"`
}

// ClusterSummary is one redundancy cluster in the report.
type ClusterSummary struct {
	ClusterID             int        `json:"clusterId"`
	BlockCount            int        `json:"blockCount"`
	Locations             []Location `json:"locations"`
	PotentialSavingsLines int        `json:"potentialSavingsLines"`
	Recommendation        string     `json:"recommendation"`
}

// Report is the redundancy analysis result.
type Report struct {
	TotalClusters        int              `json:"totalClusters"`
	TotalDuplicateBlocks int              `json:"totalDuplicateBlocks"`
	Clusters             []ClusterSummary `json:"clusters"`
}
