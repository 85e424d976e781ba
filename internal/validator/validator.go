package validator

import (
	"log"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/reftable"
)

// Validator checks analysis selections against the reference tables.
type Validator struct {
	tables *reftable.Tables
}

// New creates a Validator over tables.
func New(tables *reftable.Tables) *Validator {
	if tables == nil {
		tables = &reftable.Tables{}
	}
	return &Validator{tables: tables}
}

// Validate applies the format rules first, then the per-kind country and
// year-range tables.
func (v *Validator) Validate(kind model.AnalysisKind, country string, startYear, endYear int) model.Outcome {
	switch {
	case kind < 1 || startYear < 0 || endYear < 0 || country == "":
		return model.MalformedInput
	case startYear > endYear:
		return model.StartAfterEnd
	}

	if !v.tables.Countries.Contains(int(kind), country) {
		if v.tables.Countries == nil {
			log.Printf("[WARN] country table empty, rejecting %s for kind %d", country, kind)
		}
		return model.InvalidCountry
	}

	yr, err := v.tables.YearRange(int(kind))
	if err != nil {
		log.Printf("[WARN] %v", err)
		return model.InvalidYearRange
	}
	if !yr.Contains(startYear, endYear) {
		return model.InvalidYearRange
	}
	return model.Success
}

// IsValidViewer reports whether the viewer kind is permitted for the analysis kind.
func (v *Validator) IsValidViewer(kind model.AnalysisKind, viewer model.ViewerKind) bool {
	if viewer == "" || kind < 1 {
		return false
	}
	if v.tables.Viewers == nil {
		log.Printf("[WARN] viewer table empty, rejecting %s for kind %d", viewer, kind)
		return false
	}
	return v.tables.Viewers.Contains(int(kind), string(viewer))
}
