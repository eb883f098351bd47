package workbook

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/formula"
)

// buildWorkbook saves a fixture workbook and reopens it, so reads go through
// the same path production does.
func buildWorkbook(t *testing.T, build func(f *excelize.File)) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	build(f)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractFormulas(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetProductPreRelease)
		f.SetCellValue(SheetProductPreRelease, "A1", "release")
		f.SetCellFormula(SheetProductPreRelease, "B2", "=SUM(C1:C5)")
		f.SetCellFormula(SheetProductPreRelease, "C3", "=VLOOKUP(A1,D1:E9,2,FALSE)")

		f.NewSheet(SheetPreReleaseVersion)
		f.SetCellFormula(SheetPreReleaseVersion, "B5", "=TODAY()")
	})

	records := ExtractFormulas(context.Background(), f, formula.NewClassifier(nil), nil)

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	kinds := make(map[string]string)
	for _, rec := range records {
		kinds[rec.Sheet+"!"+rec.Cell] = rec.Kind
		if !strings.HasPrefix(rec.Formula, "=") {
			t.Errorf("raw formula %q missing leading =", rec.Formula)
		}
	}
	if kinds[SheetProductPreRelease+"!B2"] != "SUM" {
		t.Errorf("B2 kind = %q, expected SUM", kinds[SheetProductPreRelease+"!B2"])
	}
	if kinds[SheetProductPreRelease+"!C3"] != "VLOOKUP" {
		t.Errorf("C3 kind = %q, expected VLOOKUP", kinds[SheetProductPreRelease+"!C3"])
	}
	if kinds[SheetPreReleaseVersion+"!B5"] != "TODAY" {
		t.Errorf("B5 kind = %q, expected TODAY", kinds[SheetPreReleaseVersion+"!B5"])
	}
}

func TestExtractFormulasIgnoresOtherSheets(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellFormula("Sheet1", "A1", "=SUM(B1:B5)")
	})

	records := ExtractFormulas(context.Background(), f, formula.NewClassifier(nil), nil)
	if len(records) != 0 {
		t.Errorf("Expected 0 records from non-target sheets, got %d", len(records))
	}
}

func TestReleaseVersions(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetReleaseList)
		f.SetCellValue(SheetReleaseList, "B5", "versions")
		f.SetCellValue(SheetReleaseList, "B6", "v1.0.0")
		f.SetCellValue(SheetReleaseList, "B7", " v1.1.0 ")
		f.SetCellValue(SheetReleaseList, "B9", "v2.0.0") // after a gap, ignored
	})

	versions := ReleaseVersions(f)
	expected := []string{"v1.0.0", "v1.1.0"}
	if len(versions) != len(expected) {
		t.Fatalf("ReleaseVersions = %v, expected %v", versions, expected)
	}
	for i := range expected {
		if versions[i] != expected[i] {
			t.Errorf("versions[%d] = %q, expected %q", i, versions[i], expected[i])
		}
	}
}

func TestReleaseVersionsMissingSheet(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {})

	if versions := ReleaseVersions(f); len(versions) != 0 {
		t.Errorf("Expected no versions without the release sheet, got %v", versions)
	}
}

func TestSelectedVersionRoundTrip(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetPreReleaseVersion)
	})

	if err := SetSelectedVersion(f, "v3.1.4"); err != nil {
		t.Fatalf("SetSelectedVersion failed: %v", err)
	}
	if got := SelectedVersion(f); got != "v3.1.4" {
		t.Errorf("SelectedVersion = %q, expected v3.1.4", got)
	}
}

func TestSetSelectedVersionMissingSheet(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {})

	if err := SetSelectedVersion(f, "v1.0.0"); err == nil {
		t.Error("Expected error writing version into workbook without the version sheet")
	}
	if got := SelectedVersion(f); got != "" {
		t.Errorf("SelectedVersion = %q, expected empty", got)
	}
}

func TestInspectVersionCell(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetPreReleaseVersion)
		f.SetCellFormula(SheetPreReleaseVersion, "B5", "=INDEX(A1:A9,3)")
	})

	info := InspectVersionCell(f, formula.NewClassifier(nil))
	if info == nil {
		t.Fatal("InspectVersionCell returned nil")
	}
	if info.Record == nil || info.Record.Kind != "INDEX" {
		t.Errorf("unexpected record: %+v", info.Record)
	}
}

func TestInspectVersionCellValueOnly(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetPreReleaseVersion)
		f.SetCellValue(SheetPreReleaseVersion, "B5", "v1.0.0")
	})

	info := InspectVersionCell(f, formula.NewClassifier(nil))
	if info == nil {
		t.Fatal("InspectVersionCell returned nil")
	}
	if info.Record != nil {
		t.Errorf("expected no formula record, got %+v", info.Record)
	}
	if info.Value != "v1.0.0" {
		t.Errorf("Value = %q, expected v1.0.0", info.Value)
	}
}

func TestScanServiceNames(t *testing.T) {
	f := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet(SheetProductPreRelease)
		f.SetCellValue(SheetProductPreRelease, "A1", "studio-backend")
		f.SetCellValue(SheetProductPreRelease, "A2", "file-upload-connector")
		f.SetCellValue(SheetProductPreRelease, "A3", "plain")

		f.NewSheet(SheetPreReleaseVersion)
		f.SetCellValue(SheetPreReleaseVersion, "B1", "studio-backend") // duplicate
		f.SetCellValue(SheetPreReleaseVersion, "B2", "api-gateway")
	})

	services := ScanServiceNames(f, nil)

	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	expected := []string{"studio-backend", "file-upload-connector", "api-gateway"}
	if len(names) != len(expected) {
		t.Fatalf("ScanServiceNames = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("names[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestIsServiceName(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"studio-backend", true},
		{"BXS-Masterdata", true},
		{"api-gateway", true},
		{"worker_pool", true},
		{"x-y", false}, // single-character parts
		{"ab", false},  // too short
		{"plain", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := isServiceName(tt.text); result != tt.expected {
			t.Errorf("isServiceName(%q) = %v, expected %v", tt.text, result, tt.expected)
		}
	}
}
