// Package models defines data structures for formula analysis and stack synthesis.
package models

// Complexity is the coarse structural complexity tier of a formula.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
	// ComplexityUnknown marks records that degraded during analysis.
	ComplexityUnknown Complexity = "unknown"
)

// KindUnknown is the sentinel kind for formulas no pattern recognizes.
const KindUnknown = "UNKNOWN"

// FormulaRecord describes one formula-bearing cell.
type FormulaRecord struct {
	// Sheet is the name of the sheet the cell belongs to.
	Sheet string `json:"sheet"`
	// Cell is the column-row address, e.g. "B5".
	Cell string `json:"cell"`
	// Formula is the original formula text, including the leading "=".
	Formula string `json:"formula"`
	// CleanFormula is the formula text with the leading "=" stripped.
	CleanFormula string `json:"clean_formula"`
	// Kind is the classification label, never empty.
	Kind string `json:"formula_type"`
	// References lists extracted cell and range tokens, deduplicated,
	// first-seen order.
	References []string `json:"references"`
	// Complexity is the scored complexity tier.
	Complexity Complexity `json:"complexity"`
	// Description is a human-readable summary.
	Description string `json:"description"`
}
