package collector

import (
	"context"
	"log"

	"IndicatorScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]model.DataSeries // keyed by indicator code
	Calls  []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, _ string, indicator string, startYear, endYear int) (model.DataSeries, error) {
	m.Calls = append(m.Calls, indicator)
	var out model.DataSeries
	for _, p := range m.Series[indicator] {
		if p.Year >= startYear && p.Year <= endYear {
			out = append(out, p)
		}
	}
	return out, nil
}

// Collector orchestrates fetching the series an analysis needs.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches one series per indicator, in order. A failed fetch yields
// an empty series so callers see unavailability the same way as no data.
func (c *Collector) Collect(ctx context.Context, country string, indicators []string, startYear, endYear int) model.RawFetchResult {
	raw := make(model.RawFetchResult, len(indicators))
	for i, code := range indicators {
		series, err := c.Fetcher.FetchSeries(ctx, country, code, startYear, endYear)
		if err != nil {
			log.Printf("[WARN] fetch %s for %s (%d-%d) via %s failed: %v",
				code, country, startYear, endYear, c.Fetcher.Name(), err)
			series = model.DataSeries{}
		}
		if series == nil {
			series = model.DataSeries{}
		}
		raw[i] = series
	}
	return raw
}
