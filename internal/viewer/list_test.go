package viewer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
)

func fixedState(r model.AnalysisResult) StateReader {
	return StateFunc(func() model.AnalysisResult { return r })
}

func TestList_AddRejectsDuplicates(t *testing.T) {
	l := NewList(fixedState(nil))
	assert.True(t, l.Add(model.ViewerLine))
	assert.True(t, l.Add(model.ViewerReport))
	assert.False(t, l.Add(model.ViewerLine))
	assert.False(t, l.Add("radar"))
	assert.Equal(t, []model.ViewerKind{model.ViewerLine, model.ViewerReport}, l.Kinds())
}

func TestList_RemoveAndClear(t *testing.T) {
	l := NewList(fixedState(nil))
	l.Add(model.ViewerLine)
	l.Add(model.ViewerPie)
	l.Add(model.ViewerTime)

	assert.True(t, l.Remove(model.ViewerPie))
	assert.False(t, l.Remove(model.ViewerPie))
	assert.Equal(t, []model.ViewerKind{model.ViewerLine, model.ViewerTime}, l.Kinds())

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Kinds())
}

func TestList_NotifyAllInOrder(t *testing.T) {
	result := model.AnalysisResult{{{Year: 2015, Value: 2}}}
	l := NewList(fixedState(result))
	l.Add(model.ViewerReport)
	l.Add(model.ViewerLine)

	var before []model.ViewerKind
	err := l.DisplayAll(func(v Viewer) error {
		if errors.Is(v.Display(&bytes.Buffer{}), ErrNoData) {
			before = append(before, v.Kind())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []model.ViewerKind{model.ViewerReport, model.ViewerLine}, before)

	params := &model.Parameters{Kind: model.KindEmissionsGDPRatio, Country: "CAN", StartYear: 2015, EndYear: 2016}
	l.NotifyAll(params)

	var order []model.ViewerKind
	err = l.DisplayAll(func(v Viewer) error {
		order = append(order, v.Kind())
		return v.Display(&bytes.Buffer{})
	})
	require.NoError(t, err)
	assert.Equal(t, []model.ViewerKind{model.ViewerReport, model.ViewerLine}, order)
}

func TestList_DisplayAllStopsOnError(t *testing.T) {
	l := NewList(fixedState(nil))
	l.Add(model.ViewerLine)
	l.Add(model.ViewerScatter)
	calls := 0
	err := l.DisplayAll(func(v Viewer) error {
		calls++
		return v.Display(&bytes.Buffer{})
	})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, 1, calls)
}
