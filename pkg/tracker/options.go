// Package tracker analyzes spreadsheet formulas and synthesizes release
// stacks from them.
package tracker

import (
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/formula"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/workbook"
)

// Options configures workbook analysis.
type Options struct {
	// TargetSheets lists the sheets scanned for formulas.
	// If nil, defaults to the standard release-tracking sheets.
	TargetSheets []string
	// Tables overrides the classification tables.
	// If nil, defaults to formula.DefaultTables.
	Tables *formula.Tables
	// ScanServices specifies whether to scan cell values for service names.
	// If nil, defaults to true.
	ScanServices *bool
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{}
}

// Sheets returns the effective target sheet list.
func (o Options) Sheets() []string {
	if o.TargetSheets != nil {
		return o.TargetSheets
	}
	return workbook.DefaultTargetSheets()
}

// ShouldScanServices returns whether to scan for service names.
func (o Options) ShouldScanServices() bool {
	if o.ScanServices != nil {
		return *o.ScanServices
	}
	return true
}
