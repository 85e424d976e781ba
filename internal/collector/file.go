package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"IndicatorScope/internal/model"
)

// FileFetcher implements Fetcher over API responses saved on disk as
// {Dir}/{country}/{indicator}.json. Used for offline runs and demos.
type FileFetcher struct {
	Dir string
}

// NewFileFetcher creates a fetcher rooted at dir.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

func (f *FileFetcher) Name() string { return "file" }

func (f *FileFetcher) FetchSeries(_ context.Context, country, indicator string, startYear, endYear int) (model.DataSeries, error) {
	path := filepath.Join(f.Dir, country, indicator+".json")
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	all, err := decodeWorldBank(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Saved documents may cover more years than requested.
	series := make(model.DataSeries, 0, len(all))
	for _, p := range all {
		if p.Year >= startYear && p.Year <= endYear {
			series = append(series, p)
		}
	}
	return series, nil
}
