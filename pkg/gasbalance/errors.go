package gasbalance

import (
	"errors"
	"fmt"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/parser"
)

// ErrSourceNotFound indicates no workbook could be located.
var ErrSourceNotFound = errors.New("source workbook not found")

// Errors surfaced by the parser, re-exported for callers of Load.
var (
	ErrSheetNotFound     = parser.ErrSheetNotFound
	ErrEmptyTable        = parser.ErrEmptyTable
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrEncrypted         = parser.ErrEncrypted
)

// Stage names the loading step that failed.
type Stage string

const (
	StageOpen   Stage = "open"
	StageSelect Stage = "select"
	StageRead   Stage = "read"
	StageClean  Stage = "clean"
)

// LoadError reports a workbook that was found but could not be turned into
// a dataset.
type LoadError struct {
	Path  string
	Sheet string // empty when the failure is not tied to a sheet
	Stage Stage
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("load %s (%s): %v", e.Path, e.Stage, e.Err)
	}
	return fmt.Sprintf("load %s sheet %q (%s): %v", e.Path, e.Sheet, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, stage Stage, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
