package formula

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

var (
	customNamePattern = regexp.MustCompile(`([A-Z_][A-Z0-9_]*)\s*\(`)
	funcCallPattern   = regexp.MustCompile(`\w+\s*\(`)
	bareRefPattern    = regexp.MustCompile(`^[A-Z]+[0-9]+$`)
)

const arithmeticOps = "+-*/^"

// Classifier assigns kind, complexity, references and a description to
// formula text. It is safe for concurrent use; classification is a pure
// function of the input text and the injected tables.
type Classifier struct {
	tables *Tables
}

// NewClassifier returns a classifier backed by the given tables.
// A nil tables argument selects DefaultTables.
func NewClassifier(tables *Tables) *Classifier {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Classifier{tables: tables}
}

// Analyze builds the FormulaRecord for one formula-bearing cell. It never
// fails outward: any internal error degrades to a record with kind UNKNOWN
// and a diagnostic description, and the error is returned alongside for
// logging. The record is always usable.
func (c *Classifier) Analyze(sheet, cell, raw string) (rec models.FormulaRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analyzing formula at %s!%s: %v", sheet, cell, r)
			rec = c.degraded(sheet, cell, raw, err)
		}
	}()

	if raw == "" {
		err = fmt.Errorf("analyzing formula at %s!%s: empty cell text", sheet, cell)
		return c.degraded(sheet, cell, raw, err), err
	}

	clean := strings.TrimPrefix(raw, "=")
	kind := c.identifyKind(clean)
	refs := ExtractReferences(clean)

	return models.FormulaRecord{
		Sheet:        sheet,
		Cell:         cell,
		Formula:      raw,
		CleanFormula: clean,
		Kind:         kind,
		References:   refs,
		Complexity:   assessComplexity(clean, len(refs)),
		Description:  c.describe(kind, len(refs)),
	}, nil
}

// identifyKind walks the pattern table in declared order and returns the
// first match. The CUSTOM entry surfaces the actual leading identifier.
// Fallbacks: arithmetic operators, bare reference shape, UNKNOWN.
func (c *Classifier) identifyKind(clean string) string {
	upper := strings.ToUpper(clean)

	for _, kp := range c.tables.Patterns {
		if !kp.Pattern.MatchString(upper) {
			continue
		}
		if kp.Kind == KindCustom {
			if m := customNamePattern.FindStringSubmatch(upper); m != nil {
				return m[1]
			}
		}
		return kp.Kind
	}

	if strings.ContainsAny(clean, arithmeticOps) {
		return "ARITHMETIC"
	}
	if bareRefPattern.MatchString(strings.ReplaceAll(clean, "$", "")) {
		return "REFERENCE"
	}
	return models.KindUnknown
}

// assessComplexity scores 2 points per function-call opening, 1 per distinct
// reference, and 1 per 50 characters of text. Thresholds: <=3 low, <=8
// medium, else high. The weights are a compatibility contract.
func assessComplexity(clean string, refCount int) models.Complexity {
	score := 2*len(funcCallPattern.FindAllString(clean, -1)) +
		refCount +
		len(clean)/50

	switch {
	case score <= 3:
		return models.ComplexityLow
	case score <= 8:
		return models.ComplexityMedium
	default:
		return models.ComplexityHigh
	}
}

func (c *Classifier) describe(kind string, refCount int) string {
	desc, ok := c.tables.Descriptions[kind]
	if !ok {
		desc = "Custom or complex formula"
	}
	switch {
	case refCount == 1:
		desc += " (references 1 cell)"
	case refCount > 1:
		desc += fmt.Sprintf(" (references %d cells)", refCount)
	}
	return desc
}

func (c *Classifier) degraded(sheet, cell, raw string, cause error) models.FormulaRecord {
	return models.FormulaRecord{
		Sheet:        sheet,
		Cell:         cell,
		Formula:      raw,
		CleanFormula: strings.TrimPrefix(raw, "="),
		Kind:         models.KindUnknown,
		References:   []string{},
		Complexity:   models.ComplexityUnknown,
		Description:  fmt.Sprintf("Error analyzing formula: %v", cause),
	}
}
