package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
)

func TestSummarize(t *testing.T) {
	s := model.DataSeries{{Year: 2016, Value: 4}, {Year: 2014, Value: 2}, {Year: 2015, Value: 6}}
	sum, err := Summarize(s)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Count)
	assert.InDelta(t, 4.0, sum.Mean, 1e-9)
	assert.InDelta(t, 2.0, sum.StdDev, 1e-9)
	assert.Equal(t, 2.0, sum.Min)
	assert.Equal(t, 2014, sum.MinYear)
	assert.Equal(t, 6.0, sum.Max)
	assert.Equal(t, 2015, sum.MaxYear)
	assert.Equal(t, 2014, sum.First)
	assert.Equal(t, 2016, sum.Last)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
	_, err = Mean(model.DataSeries{})
	assert.Error(t, err)
}

func TestShare(t *testing.T) {
	avg, rest, err := Share(model.DataSeries{{Year: 2015, Value: 30}, {Year: 2016, Value: 40}})
	require.NoError(t, err)
	assert.InDelta(t, 35.0, avg, 1e-9)
	assert.InDelta(t, 65.0, rest, 1e-9)

	_, rest, err = Share(model.DataSeries{{Year: 2015, Value: 140}})
	require.NoError(t, err)
	assert.Zero(t, rest)
}

func TestYears(t *testing.T) {
	r := model.AnalysisResult{
		{{Year: 2016, Value: 1}, {Year: 2014, Value: 1}},
		{{Year: 2015, Value: 1}, {Year: 2016, Value: 1}},
	}
	assert.Equal(t, []int{2014, 2015, 2016}, Years(r))
	assert.Empty(t, Years(nil))
}
