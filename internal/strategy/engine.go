package strategy

import (
	"context"
	"log"

	"IndicatorScope/internal/model"
)

// Source supplies the raw series for an analysis.
type Source interface {
	Collect(ctx context.Context, country string, indicators []string, startYear, endYear int) model.RawFetchResult
}

// ResultSink receives a successfully computed result.
type ResultSink interface {
	StoreResult(result model.AnalysisResult)
}

// Strategy computes one analysis kind from its catalog entry.
type Strategy struct {
	def    Analysis
	source Source
}

// New creates a Strategy for def backed by source.
func New(def Analysis, source Source) *Strategy {
	return &Strategy{def: def, source: source}
}

// Analysis returns the catalog entry the strategy runs.
func (s *Strategy) Analysis() Analysis { return s.def }

// Compute fetches, derives and stores the result. It returns false without
// touching sink when any fetched or derived series is empty.
func (s *Strategy) Compute(ctx context.Context, country string, startYear, endYear int, sink ResultSink) bool {
	raw := s.source.Collect(ctx, country, s.def.Indicators, startYear, endYear)
	if len(raw) != len(s.def.Indicators) || raw.AnyEmpty() {
		log.Printf("[INFO] kind %d: no data for %s %d-%d", s.def.Kind, country, startYear, endYear)
		return false
	}

	result, ok := Derive(s.def, raw)
	if !ok {
		log.Printf("[INFO] kind %d: derived series empty for %s %d-%d", s.def.Kind, country, startYear, endYear)
		return false
	}

	sink.StoreResult(result)
	return true
}

// Derive applies the analysis mode to raw. ok is false when any output
// series would be empty.
func Derive(def Analysis, raw model.RawFetchResult) (model.AnalysisResult, bool) {
	var result model.AnalysisResult
	switch def.Mode {
	case Ratio:
		if len(raw) < 2 {
			return nil, false
		}
		result = model.AnalysisResult{ratio(raw[0], raw[1])}
	case Scale:
		result = filterAll(raw)
		if len(result) > 0 && def.ScaleFactor != 0 {
			last := len(result) - 1
			result[last] = scale(result[last], def.ScaleFactor)
		}
	default:
		result = filterAll(raw)
	}

	if len(result) == 0 {
		return nil, false
	}
	for _, s := range result {
		if len(s) == 0 {
			return nil, false
		}
	}
	return result, true
}

func filterAll(raw model.RawFetchResult) model.AnalysisResult {
	out := make(model.AnalysisResult, len(raw))
	for i, s := range raw {
		out[i] = filterMissing(s)
	}
	return out
}

// filterMissing keeps every point whose value is not the missing marker.
func filterMissing(s model.DataSeries) model.DataSeries {
	out := make(model.DataSeries, 0, len(s))
	for _, p := range s {
		if p.Value != model.MissingValue {
			out = append(out, p)
		}
	}
	return out
}

// ratio walks num in order. The denominator is matched by position when
// the years agree, otherwise by year. Years missing on either side are skipped.
func ratio(num, den model.DataSeries) model.DataSeries {
	out := make(model.DataSeries, 0, len(num))
	for i, p := range num {
		var d float64
		var found bool
		if i < len(den) && den[i].Year == p.Year {
			d, found = den[i].Value, true
		} else {
			d, found = den.Lookup(p.Year)
		}
		if !found || p.Value == model.MissingValue || d == model.MissingValue {
			continue
		}
		out = append(out, model.DataPoint{Year: p.Year, Value: p.Value / d})
	}
	return out
}

func scale(s model.DataSeries, factor float64) model.DataSeries {
	out := make(model.DataSeries, len(s))
	for i, p := range s {
		out[i] = model.DataPoint{Year: p.Year, Value: p.Value / factor}
	}
	return out
}
