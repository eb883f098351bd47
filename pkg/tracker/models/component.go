package models

// ComponentKind distinguishes how a component entered the stack.
type ComponentKind string

const (
	ComponentInfrastructure ComponentKind = "infrastructure"
	ComponentApplication    ComponentKind = "application"
	ComponentDependency     ComponentKind = "dependency"
)

// ResourceTier marks resource escalation derived from formula complexity.
type ResourceTier string

const (
	TierStandard ResourceTier = "standard"
	TierHigh     ResourceTier = "high"
)

// Component is one deployable unit in a synthesized stack.
// Name is unique across the component set of a stack.
type Component struct {
	Name     string        `json:"name"`
	Kind     ComponentKind `json:"type"`
	Category string        `json:"category"`
	Required bool          `json:"required"`
	Version  string        `json:"version"`
	Replicas int           `json:"replicas"`
	// Resources is empty when no escalation signal was seen.
	Resources ResourceTier `json:"resources,omitempty"`
}

// RequirementAnalysis is the intermediate result of analyzing classified
// formulas before component generation. Slices preserve first-seen order so
// downstream output is deterministic.
type RequirementAnalysis struct {
	// FormulaTypes counts formulas per kind label.
	FormulaTypes map[string]int `json:"formula_types"`
	// ComplexityLevels counts formulas per complexity tier.
	ComplexityLevels map[Complexity]int `json:"complexity_levels"`
	// RequiredServices lists mapped application component names,
	// first-encountered order, deduplicated.
	RequiredServices []string `json:"required_services"`
	// DataDependencies lists all referenced cells and ranges,
	// first-seen order, deduplicated.
	DataDependencies []string `json:"data_dependencies"`
	// ProcessingRequirements maps component name to the highest resource
	// tier any contributing formula demanded.
	ProcessingRequirements map[string]ResourceTier `json:"processing_requirements"`
}
