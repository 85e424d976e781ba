package collector

import (
	"context"

	"IndicatorScope/internal/model"
)

// Fetcher defines the interface for fetching indicator series.
type Fetcher interface {
	FetchSeries(ctx context.Context, country, indicator string, startYear, endYear int) (model.DataSeries, error)
	Name() string
}
