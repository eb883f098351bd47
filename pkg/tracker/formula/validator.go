package formula

import (
	"strings"

	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

// errRefMarker is the propagated spreadsheet error sentinel. Its presence is
// recoverable: the formula stays valid but a warning is recorded.
const errRefMarker = "#REF!"

// Validate checks structural well-formedness of the raw formula text of each
// record. It partitions the batch into valid and invalid counts with per-cell
// reasons, in input order. Records are not mutated or discarded; the caller
// decides whether an invalid count halts synthesis.
func Validate(records []models.FormulaRecord) *models.ValidationOutcome {
	outcome := &models.ValidationOutcome{
		Errors:   []models.ValidationIssue{},
		Warnings: []models.ValidationIssue{},
	}

	invalid := func(rec models.FormulaRecord, reason string) {
		outcome.Errors = append(outcome.Errors, models.ValidationIssue{
			Sheet:  rec.Sheet,
			Cell:   rec.Cell,
			Reason: reason,
		})
		outcome.InvalidCount++
	}

	for _, rec := range records {
		raw := rec.Formula

		if !strings.HasPrefix(raw, "=") {
			invalid(rec, "formula doesn't start with '='")
			continue
		}
		if strings.Count(raw, "(") != strings.Count(raw, ")") {
			invalid(rec, "unmatched parentheses")
			continue
		}
		if len(strings.TrimSpace(raw)) <= 1 {
			invalid(rec, "empty formula")
			continue
		}
		if strings.Contains(raw, errRefMarker) {
			outcome.Warnings = append(outcome.Warnings, models.ValidationIssue{
				Sheet:  rec.Sheet,
				Cell:   rec.Cell,
				Reason: "contains " + errRefMarker + " error",
			})
		}
		outcome.ValidCount++
	}

	return outcome
}
