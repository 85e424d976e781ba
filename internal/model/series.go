package model

// DataPoint is a single yearly observation.
type DataPoint struct {
	Year  int
	Value float64
}

// DataSeries holds observations in the order the source returned them.
type DataSeries []DataPoint

// RawFetchResult holds one series per requested indicator, in request order.
type RawFetchResult []DataSeries

// AnalysisResult holds the processed series of one analysis run.
type AnalysisResult []DataSeries

// MissingValue marks an absent observation in fetched data.
const MissingValue = 0.0

// Years returns the years of the series in order.
func (s DataSeries) Years() []int {
	years := make([]int, len(s))
	for i, p := range s {
		years[i] = p.Year
	}
	return years
}

// Values returns the values of the series in order.
func (s DataSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Lookup returns the value observed for year, if any.
func (s DataSeries) Lookup(year int) (float64, bool) {
	for _, p := range s {
		if p.Year == year {
			return p.Value, true
		}
	}
	return 0, false
}

// AnyEmpty reports whether any series holds no points.
func (r RawFetchResult) AnyEmpty() bool {
	for _, s := range r {
		if len(s) == 0 {
			return true
		}
	}
	return false
}

// Lengths returns the number of points per series.
func (r AnalysisResult) Lengths() []int {
	lengths := make([]int, len(r))
	for i, s := range r {
		lengths[i] = len(s)
	}
	return lengths
}
