// Package workbook reads release-tracking data out of Excel workbooks.
// Missing sheets and cells are tolerated as empty results on all read paths,
// never raised.
package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/theshubhamgour/ReleaseFormulaTracker/internal/ctxlog"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/formula"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

const (
	// SheetProductPreRelease holds the product pre-release grid.
	SheetProductPreRelease = "product-pre-release"
	// SheetPreReleaseVersion holds the selected version cell.
	SheetPreReleaseVersion = "pre-release-version"
	// SheetReleaseList holds the release version list, one per row from B6.
	SheetReleaseList = "product-pre-release-neewee"

	// VersionCellRef is the cell parameterizing synthesis by release version.
	VersionCellRef = "B5"

	releaseListStartRow = 6
	releaseListMaxRow   = 1000
)

// DefaultTargetSheets returns the sheets scanned for formulas.
func DefaultTargetSheets() []string {
	return []string{SheetProductPreRelease, SheetPreReleaseVersion}
}

// ExtractFormulas walks the target sheets and classifies every
// formula-bearing cell. Per-sheet read failures are recovered: the sheet
// contributes no records and a warning is logged.
func ExtractFormulas(ctx context.Context, f *excelize.File, c *formula.Classifier, sheets []string) []models.FormulaRecord {
	log := ctxlog.FromContext(ctx)
	if len(sheets) == 0 {
		sheets = DefaultTargetSheets()
	}

	var records []models.FormulaRecord
	for _, sheet := range sheets {
		if !hasSheet(f, sheet) {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warn("skipping unreadable sheet", "sheet", sheet, "error", err)
			continue
		}
		for rowIdx, row := range rows {
			for colIdx := range row {
				cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					continue
				}
				raw, err := f.GetCellFormula(sheet, cellName)
				if err != nil || raw == "" {
					continue
				}
				if !strings.HasPrefix(raw, "=") {
					raw = "=" + raw
				}
				rec, err := c.Analyze(sheet, cellName, raw)
				if err != nil {
					log.Warn("formula analysis degraded", "sheet", sheet, "cell", cellName, "error", err)
				}
				records = append(records, rec)
			}
		}
	}
	return records
}

// ReleaseVersions reads the release version list starting at B6 of the
// release list sheet, stopping at the first empty cell. A missing sheet
// yields an empty list.
func ReleaseVersions(f *excelize.File) []string {
	if !hasSheet(f, SheetReleaseList) {
		return nil
	}

	var versions []string
	for row := releaseListStartRow; row <= releaseListMaxRow; row++ {
		value, err := f.GetCellValue(SheetReleaseList, fmt.Sprintf("B%d", row))
		if err != nil {
			break
		}
		value = strings.TrimSpace(value)
		if value == "" {
			break
		}
		versions = append(versions, value)
	}
	return versions
}

// SelectedVersion reads the version cell. A missing sheet yields "".
func SelectedVersion(f *excelize.File) string {
	if !hasSheet(f, SheetPreReleaseVersion) {
		return ""
	}
	value, err := f.GetCellValue(SheetPreReleaseVersion, VersionCellRef)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// SetSelectedVersion writes the version cell. Unlike the read paths, writing
// into a workbook without the version sheet is reported as an error.
func SetSelectedVersion(f *excelize.File, version string) error {
	if !hasSheet(f, SheetPreReleaseVersion) {
		return fmt.Errorf("sheet %q not found in workbook", SheetPreReleaseVersion)
	}
	return f.SetCellValue(SheetPreReleaseVersion, VersionCellRef, version)
}

// VersionCellInfo describes the version cell's content.
type VersionCellInfo struct {
	Sheet string `json:"sheet"`
	Cell  string `json:"cell"`
	// Value is the cell value when the cell holds no formula.
	Value string `json:"value,omitempty"`
	// Record is set when the cell holds a formula.
	Record *models.FormulaRecord `json:"record,omitempty"`
}

// InspectVersionCell classifies the formula in the version cell, or reports
// its plain value. A missing sheet yields nil.
func InspectVersionCell(f *excelize.File, c *formula.Classifier) *VersionCellInfo {
	if !hasSheet(f, SheetPreReleaseVersion) {
		return nil
	}

	info := &VersionCellInfo{Sheet: SheetPreReleaseVersion, Cell: VersionCellRef}
	raw, err := f.GetCellFormula(SheetPreReleaseVersion, VersionCellRef)
	if err == nil && raw != "" {
		if !strings.HasPrefix(raw, "=") {
			raw = "=" + raw
		}
		rec, _ := c.Analyze(SheetPreReleaseVersion, VersionCellRef, raw)
		info.Record = &rec
		return info
	}

	info.Value, _ = f.GetCellValue(SheetPreReleaseVersion, VersionCellRef)
	return info
}

// ServiceName locates a service-like cell value.
type ServiceName struct {
	Name  string `json:"service_name"`
	Sheet string `json:"sheet"`
	Cell  string `json:"cell"`
}

// serviceScanMaxRows bounds the per-sheet service name scan.
const serviceScanMaxRows = 100

// knownServices are substrings that always qualify as service names.
var knownServices = []string{
	"studio-backend",
	"studio-ui",
	"bodhee-core",
	"file-upload-connector",
	"bodhee-security",
	"bxs-masterdata",
	"bxs-masterdata-management",
}

// ScanServiceNames collects cell values that look like service names from
// the target sheets, deduplicated by name, first-seen order.
func ScanServiceNames(f *excelize.File, sheets []string) []ServiceName {
	if len(sheets) == 0 {
		sheets = DefaultTargetSheets()
	}

	var services []ServiceName
	seen := make(map[string]struct{})
	for _, sheet := range sheets {
		if !hasSheet(f, sheet) {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for rowIdx, row := range rows {
			if rowIdx >= serviceScanMaxRows {
				break
			}
			for colIdx, value := range row {
				value = strings.TrimSpace(value)
				if !isServiceName(value) {
					continue
				}
				if _, ok := seen[value]; ok {
					continue
				}
				seen[value] = struct{}{}
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				services = append(services, ServiceName{Name: value, Sheet: sheet, Cell: cellName})
			}
		}
	}
	return services
}

// isServiceName reports whether text has a service-like shape: a known
// service substring, or at least two multi-character parts joined by
// hyphens or underscores.
func isServiceName(text string) bool {
	if len(text) < 3 {
		return false
	}
	lower := strings.ToLower(text)
	for _, known := range knownServices {
		if strings.Contains(lower, known) {
			return true
		}
	}
	if !strings.ContainsAny(text, "-_") {
		return false
	}
	parts := strings.Split(strings.ReplaceAll(text, "_", "-"), "-")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if len(part) <= 1 {
			return false
		}
	}
	return true
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}
