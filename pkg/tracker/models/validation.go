package models

// ValidationIssue locates a structural problem in one formula.
type ValidationIssue struct {
	// Sheet is the sheet name the formula lives on.
	Sheet string `json:"sheet"`
	// Cell is the column-row address.
	Cell string `json:"cell"`
	// Reason states why the formula failed or warned.
	Reason string `json:"reason"`
}

// ValidationOutcome aggregates structural validation over a batch of formulas.
type ValidationOutcome struct {
	// ValidCount is the number of formulas passing all structural checks.
	ValidCount int `json:"valid_count"`
	// InvalidCount is the number of formulas failing a structural check.
	InvalidCount int `json:"invalid_count"`
	// Errors lists failing formulas in input order.
	Errors []ValidationIssue `json:"errors"`
	// Warnings lists recoverable issues; the formula still counts as valid.
	Warnings []ValidationIssue `json:"warnings"`
}
