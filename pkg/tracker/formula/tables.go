// Package formula classifies spreadsheet formula text by lexical pattern.
package formula

import "regexp"

// KindCustom marks the catch-all table entry. When it matches, the classifier
// extracts the leading identifier and surfaces it as the kind label instead.
const KindCustom = "CUSTOM"

// KindPattern pairs a kind label with the pattern that recognizes it.
type KindPattern struct {
	Kind    string
	Pattern *regexp.Regexp
}

// Tables holds the classification lookup data. Pattern order is a contract:
// the first matching entry wins, so a formula containing both IF( and SUM(
// classifies as IF. Construct once and pass by reference; never mutate.
type Tables struct {
	// Patterns is evaluated in declared order against uppercased text.
	Patterns []KindPattern
	// Descriptions maps kind label to a summary sentence.
	Descriptions map[string]string
}

// DefaultTables returns the standard classification tables.
func DefaultTables() *Tables {
	return &Tables{
		Patterns: []KindPattern{
			{"VLOOKUP", regexp.MustCompile(`VLOOKUP\s*\(`)},
			{"HLOOKUP", regexp.MustCompile(`HLOOKUP\s*\(`)},
			{"INDEX", regexp.MustCompile(`INDEX\s*\(`)},
			{"MATCH", regexp.MustCompile(`MATCH\s*\(`)},
			{"IF", regexp.MustCompile(`IF\s*\(`)},
			{"SUMIF", regexp.MustCompile(`SUMIF\s*\(`)},
			{"COUNTIF", regexp.MustCompile(`COUNTIF\s*\(`)},
			{"CONCATENATE", regexp.MustCompile(`CONCATENATE\s*\(`)},
			{"SUM", regexp.MustCompile(`SUM\s*\(`)},
			{"AVERAGE", regexp.MustCompile(`AVERAGE\s*\(`)},
			{"MAX", regexp.MustCompile(`MAX\s*\(`)},
			{"MIN", regexp.MustCompile(`MIN\s*\(`)},
			{"ROUND", regexp.MustCompile(`ROUND\s*\(`)},
			{"TODAY", regexp.MustCompile(`TODAY\s*\(`)},
			{"NOW", regexp.MustCompile(`NOW\s*\(`)},
			{"DATE", regexp.MustCompile(`DATE\s*\(`)},
			{"INDIRECT", regexp.MustCompile(`INDIRECT\s*\(`)},
			{"OFFSET", regexp.MustCompile(`OFFSET\s*\(`)},
			{"CHOOSE", regexp.MustCompile(`CHOOSE\s*\(`)},
			{"SWITCH", regexp.MustCompile(`SWITCH\s*\(`)},
			{"TEXTJOIN", regexp.MustCompile(`TEXTJOIN\s*\(`)},
			{"FILTER", regexp.MustCompile(`FILTER\s*\(`)},
			{"UNIQUE", regexp.MustCompile(`UNIQUE\s*\(`)},
			{"SORT", regexp.MustCompile(`SORT\s*\(`)},
			{KindCustom, regexp.MustCompile(`[A-Z_][A-Z0-9_]*\s*\(`)},
		},
		Descriptions: map[string]string{
			"VLOOKUP":     "Vertical lookup function to find values in a table",
			"HLOOKUP":     "Horizontal lookup function to find values in a table",
			"INDEX":       "Returns a value from a specific position in a range",
			"MATCH":       "Finds the position of a value in a range",
			"IF":          "Conditional logic function",
			"SUMIF":       "Conditional sum function",
			"COUNTIF":     "Conditional count function",
			"CONCATENATE": "Text concatenation function",
			"SUM":         "Summation function",
			"AVERAGE":     "Average calculation function",
			"MAX":         "Maximum value function",
			"MIN":         "Minimum value function",
			"ROUND":       "Number rounding function",
			"TODAY":       "Current date function",
			"NOW":         "Current date and time function",
			"DATE":        "Date construction function",
			"INDIRECT":    "Indirect reference function",
			"OFFSET":      "Dynamic reference function",
			"CHOOSE":      "Value selection function",
			"SWITCH":      "Multi-condition selection function",
			"TEXTJOIN":    "Text joining function with delimiter",
			"FILTER":      "Dynamic array filtering function",
			"UNIQUE":      "Returns unique values from a range",
			"SORT":        "Sorts data in a range",
			"ARITHMETIC":  "Mathematical calculation",
			"REFERENCE":   "Simple cell reference",
		},
	}
}
