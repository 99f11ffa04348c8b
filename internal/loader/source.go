package loader

import "fjacquet/count-dashboard/internal/models"

// Source binds a Loader to a fixed set of input files. Every call to Load reads the
// files again.
type Source struct {
	loader    *Loader
	reference string
	months    []models.MonthFile
}

// NewSource creates a Source over the given reference table and monthly extracts.
func NewSource(l *Loader, referencePath string, months []models.MonthFile) *Source {
	ms := make([]models.MonthFile, len(months))
	copy(ms, months)
	return &Source{loader: l, reference: referencePath, months: ms}
}

// Load runs one load cycle.
func (s *Source) Load() *Result {
	return s.loader.Load(s.reference, s.months)
}

// ReferencePath returns the path of the reference table.
func (s *Source) ReferencePath() string {
	return s.reference
}

// Months returns the monthly extracts read by Load.
func (s *Source) Months() []models.MonthFile {
	out := make([]models.MonthFile, len(s.months))
	copy(out, s.months)
	return out
}
