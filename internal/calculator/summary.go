package calculator

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"IndicatorScope/internal/model"
)

// Summary holds descriptive statistics for one series.
type Summary struct {
	Count   int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	MinYear int
	MaxYear int
	First   int
	Last    int
}

// Summarize computes the statistics of s.
func Summarize(s model.DataSeries) (Summary, error) {
	if len(s) == 0 {
		return Summary{}, errors.New("no data points provided")
	}
	values := s.Values()
	sum := Summary{
		Count:   len(s),
		Mean:    stat.Mean(values, nil),
		Min:     floats.Min(values),
		Max:     floats.Max(values),
		MinYear: s[floats.MinIdx(values)].Year,
		MaxYear: s[floats.MaxIdx(values)].Year,
	}
	if len(values) > 1 {
		sum.StdDev = stat.StdDev(values, nil)
	}
	years := s.Years()
	sort.Ints(years)
	sum.First, sum.Last = years[0], years[len(years)-1]
	return sum, nil
}

// Mean returns the average value of s.
func Mean(s model.DataSeries) (float64, error) {
	if len(s) == 0 {
		return 0, errors.New("no data points provided")
	}
	return stat.Mean(s.Values(), nil), nil
}

// Share splits a percentage-valued series into its average and the
// remainder to 100, clamped at zero.
func Share(s model.DataSeries) (avg, rest float64, err error) {
	avg, err = Mean(s)
	if err != nil {
		return 0, 0, err
	}
	rest = 100 - avg
	if rest < 0 {
		rest = 0
	}
	return avg, rest, nil
}

// Years returns the sorted union of the years in every series.
func Years(result model.AnalysisResult) []int {
	seen := make(map[int]bool)
	var years []int
	for _, s := range result {
		for _, p := range s {
			if !seen[p.Year] {
				seen[p.Year] = true
				years = append(years, p.Year)
			}
		}
	}
	sort.Ints(years)
	return years
}
