package impact

// Severity classifies the failure impact of a component.
type Severity string

const (
	SeverityLow          Severity = "LOW"
	SeverityModerate     Severity = "MODERATE"
	SeveritySevere       Severity = "SEVERE"
	SeverityCatastrophic Severity = "CATASTROPHIC"
)

var severityRank = map[Severity]int{
	SeverityLow:          0,
	SeverityModerate:     1,
	SeveritySevere:       2,
	SeverityCatastrophic: 3,
}

// Rank returns the ordering position of the severity (LOW < MODERATE <
// SEVERE < CATASTROPHIC).
func (s Severity) Rank() int {
	return severityRank[s]
}

// FailureImpact describes what happens when a component fails.
type FailureImpact struct {
	// DirectImpact is the count of direct dependents
	DirectImpact int `json:"directImpact"`
	// TotalImpact counts all transitively reachable dependents, excluding
	// the component itself
	TotalImpact int `json:"totalImpact"`
	// Severity is the classified failure severity
	Severity Severity `json:"severity"`
}

// ComponentImpact is one per-component entry in the impact report.
type ComponentImpact struct {
	Path                 string        `json:"path"`
	Importance           string        `json:"importance"`
	CriticalityScore     float64       `json:"criticalityScore"`
	BlastRadius          int           `json:"blastRadius"`
	DirectDependents     []string      `json:"directDependents"`
	ExternalDependencies []string      `json:"externalDependencies"`
	FailureImpact        FailureImpact `json:"failureImpact"`
}

// PointOfFailure flags a critical, high fan-in component.
type PointOfFailure struct {
	Component  string `json:"component"`
	Reason     string `json:"reason"`
	Mitigation string `json:"mitigation"`
}

// CriticalPath is one traced dependency chain.
type CriticalPath struct {
	Chain  []string `json:"chain"`
	Length int      `json:"length"`
	Risk   string   `json:"risk"`
}

// Report is the full dependency impact analysis result.
type Report struct {
	CriticalPaths         []CriticalPath   `json:"criticalPaths"`
	SinglePointsOfFailure []PointOfFailure `json:"singlePointsOfFailure"`
	Components            []ComponentImpact `json:"components"`
}
