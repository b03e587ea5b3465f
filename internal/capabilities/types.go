package capabilities

// Capability is an opportunity discovered by pattern analysis over the
// component manifest.
type Capability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Confidence is 0-100
	Confidence float64 `json:"confidence"`
	// Evidence lists the observations supporting the inference
	Evidence []string `json:"evidence"`
	// EnabledBy lists the component paths that make it possible
	EnabledBy []string `json:"enabledBy"`
	// PotentialValue describes the expected payoff
	PotentialValue string `json:"potentialValue"`
	// ImplementationEffort is low, medium, or high
	ImplementationEffort string `json:"implementationEffort"`
}
