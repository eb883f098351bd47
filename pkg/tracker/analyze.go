package tracker

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/theshubhamgour/ReleaseFormulaTracker/internal/ctxlog"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/formula"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/workbook"
)

// Analysis is the complete result of analyzing one workbook.
type Analysis struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Formulas are the classified formula-bearing cells of the target sheets.
	Formulas []models.FormulaRecord `json:"formulas"`
	// Statistics summarizes the formula batch, nil when no formulas found.
	Statistics *formula.Statistics `json:"statistics,omitempty"`
	// ReleaseVersions lists the selectable release versions.
	ReleaseVersions []string `json:"release_versions"`
	// SelectedVersion is the current version cell value.
	SelectedVersion string `json:"selected_version,omitempty"`
	// VersionCell describes the version cell content, nil when absent.
	VersionCell *workbook.VersionCellInfo `json:"version_cell,omitempty"`
	// Services lists detected service names, empty unless scanning enabled.
	Services []workbook.ServiceName `json:"services,omitempty"`
}

// Analyze opens an Excel workbook and extracts classified formulas, release
// versions and service names from it.
func Analyze(ctx context.Context, path string, opts Options) (*Analysis, error) {
	log := ctxlog.FromContext(ctx)

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, NewAnalysisError(filepath.Base(path), "open", err)
	}
	defer f.Close()

	analysis := AnalyzeWorkbook(ctx, f, opts)
	analysis.BookName = filepath.Base(path)

	log.Debug("workbook analyzed",
		"book", analysis.BookName,
		"formulas", len(analysis.Formulas),
		"versions", len(analysis.ReleaseVersions))
	return analysis, nil
}

// AnalyzeWorkbook runs the analysis over an already-open workbook.
func AnalyzeWorkbook(ctx context.Context, f *excelize.File, opts Options) *Analysis {
	classifier := formula.NewClassifier(opts.Tables)
	sheets := opts.Sheets()

	records := workbook.ExtractFormulas(ctx, f, classifier, sheets)

	analysis := &Analysis{
		Formulas:        records,
		Statistics:      formula.Summarize(records),
		ReleaseVersions: workbook.ReleaseVersions(f),
		SelectedVersion: workbook.SelectedVersion(f),
		VersionCell:     workbook.InspectVersionCell(f, classifier),
	}
	if opts.ShouldScanServices() {
		analysis.Services = workbook.ScanServiceNames(f, sheets)
	}
	return analysis
}
