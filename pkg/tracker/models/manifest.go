package models

import "time"

// StackMetadata carries counts and breakdowns for observability.
type StackMetadata struct {
	TotalFormulas       int                  `json:"total_formulas"`
	UniqueFormulaTypes  int                  `json:"unique_formula_types"`
	ComplexityBreakdown map[Complexity]int   `json:"complexity_breakdown"`
	SheetsProcessed     int                  `json:"sheets_processed"`
	Analysis            *RequirementAnalysis `json:"analysis,omitempty"`
}

// StackManifest is the complete output of one synthesis request.
// A manifest is produced fresh per request and is not mutated after return.
type StackManifest struct {
	// ID uniquely identifies this synthesis run.
	ID string `json:"id"`
	// Success is false when validation short-circuited or synthesis failed.
	Success bool `json:"success"`
	// Error holds the failure message when Success is false.
	Error string `json:"error,omitempty"`
	// StackVersion is derived from ProductVersion (stack-MAJOR.MINOR.PATCH...).
	StackVersion string `json:"stack_version"`
	// ProductVersion is the input version string, unmodified.
	ProductVersion string `json:"product_version"`
	// Environment is the target environment label.
	Environment string `json:"environment"`
	// GeneratedAt is the synthesis timestamp.
	GeneratedAt time.Time `json:"generated_at"`
	// Validation is present when formula validation was requested.
	Validation *ValidationOutcome `json:"validation,omitempty"`
	// Components is the deduplicated ordered component set.
	Components []Component `json:"components"`
	// Configuration is the derived configuration, nil on failure.
	Configuration *StackConfiguration `json:"configuration,omitempty"`
	// Metadata is nil when synthesis did not complete.
	Metadata *StackMetadata `json:"metadata,omitempty"`
}
