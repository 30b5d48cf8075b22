// Package gasbalance loads European gasoline demand and supply workbooks
// into cleaned country by period tables.
package gasbalance

import (
	"io"
	"log/slog"
	"path/filepath"
)

// Candidate is one place Locate looks for a workbook: a directory and a
// file name pattern inside it. Only the last element of Pattern is matched
// as a glob; base, Dir and any leading elements of Pattern are literal.
type Candidate struct {
	Dir     string
	Pattern string
}

// Split returns the literal directory to list under base and the name
// pattern to match its entries against.
func (c Candidate) Split(base string) (dir, pattern string) {
	sub, pattern := filepath.Split(c.Pattern)
	return filepath.Join(base, c.Dir, sub), pattern
}

// SearchDirs are the directories searched, in order.
var SearchDirs = []string{
	"./data",
	"../data",
	".",
	"..",
	"./data/raw",
	"../data/raw",
}

// SearchPatterns are the file patterns tried in every directory, in order.
// Known dataset names come before the catch-all.
var SearchPatterns = []string{
	"clean_gasoline_demand_supply_dataset_for_european_market.xlsx",
	"clean_gasoline_demand_supply_dataset_for_european_market.xls",
	"gasoline_data.xlsx",
	"gasoil_data.xlsx",
	"*.xlsx",
}

// DefaultCandidates returns every directory paired with every pattern,
// directories in the outer loop.
func DefaultCandidates() []Candidate {
	candidates := make([]Candidate, 0, len(SearchDirs)*len(SearchPatterns))
	for _, dir := range SearchDirs {
		for _, pattern := range SearchPatterns {
			candidates = append(candidates, Candidate{Dir: dir, Pattern: pattern})
		}
	}
	return candidates
}

// Options configures loading behavior.
type Options struct {
	// Path is an explicit workbook path. When empty the candidates are searched.
	Path string
	// BaseDir is the directory relative paths resolve against.
	// If empty, the working directory is used.
	BaseDir string
	// Candidates is the ordered search list.
	// If nil, DefaultCandidates is used.
	Candidates []Candidate
	// Password opens encrypted workbooks.
	Password string
	// UsePrintArea limits each sheet to its print area when it has one.
	// By default the whole sheet is read.
	UsePrintArea bool
	// Logger receives diagnostics. If nil, diagnostics are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Candidates: DefaultCandidates(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) candidates() []Candidate {
	if o.Candidates != nil {
		return o.Candidates
	}
	return DefaultCandidates()
}

func (o Options) resolve(path string) string {
	if o.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.BaseDir, path)
}
