package tracker

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// AnalysisError represents an error while analyzing a workbook.
type AnalysisError struct {
	BookName string
	Stage    string // "open", "formulas", "versions", "services"
	Err      error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in workbook %q (%s): %v", e.BookName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(bookName, stage string, err error) *AnalysisError {
	return &AnalysisError{
		BookName: bookName,
		Stage:    stage,
		Err:      err,
	}
}
