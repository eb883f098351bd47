package formula

import "github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"

// Statistics summarizes a batch of classified formulas.
type Statistics struct {
	TotalFormulas          int                       `json:"total_formulas"`
	Sheets                 int                       `json:"sheets"`
	FormulaTypes           map[string]int            `json:"formula_types"`
	ComplexityDistribution map[models.Complexity]int `json:"complexity_distribution"`
	AverageReferences      float64                   `json:"average_references"`
	// MostComplex is the longest formula among the high-complexity ones,
	// nil when none scored high.
	MostComplex *models.FormulaRecord `json:"most_complex_formula,omitempty"`
}

// Summarize computes batch statistics. An empty batch yields nil.
func Summarize(records []models.FormulaRecord) *Statistics {
	if len(records) == 0 {
		return nil
	}

	stats := &Statistics{
		TotalFormulas: len(records),
		FormulaTypes:  make(map[string]int),
		ComplexityDistribution: map[models.Complexity]int{
			models.ComplexityLow:     0,
			models.ComplexityMedium:  0,
			models.ComplexityHigh:    0,
			models.ComplexityUnknown: 0,
		},
	}

	sheets := make(map[string]struct{})
	totalRefs := 0
	for i, rec := range records {
		sheets[rec.Sheet] = struct{}{}
		stats.FormulaTypes[rec.Kind]++
		if _, ok := stats.ComplexityDistribution[rec.Complexity]; ok {
			stats.ComplexityDistribution[rec.Complexity]++
		}
		totalRefs += len(rec.References)

		if rec.Complexity == models.ComplexityHigh {
			if stats.MostComplex == nil || len(rec.Formula) > len(stats.MostComplex.Formula) {
				stats.MostComplex = &records[i]
			}
		}
	}

	stats.Sheets = len(sheets)
	stats.AverageReferences = float64(totalRefs) / float64(len(records))
	return stats
}
