package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"IndicatorScope/internal/model"
)

type mockNotifier struct {
	mock.Mock
	seen []model.AnalysisResult
	m    *Model
}

func (n *mockNotifier) NotifyAll(params *model.Parameters) {
	n.Called(params)
	if n.m != nil {
		n.seen = append(n.seen, n.m.State())
	}
}

func TestModel_EmptyBeforeFirstStore(t *testing.T) {
	m := NewModel(&model.Parameters{}, nil)
	assert.NotNil(t, m.State())
	assert.Empty(t, m.State())
}

func TestModel_StoreReplacesThenNotifies(t *testing.T) {
	params := &model.Parameters{Kind: model.KindAverageForest, Country: "CAN", StartYear: 2000, EndYear: 2001}
	n := &mockNotifier{}
	m := NewModel(params, n)
	n.m = m
	n.On("NotifyAll", params).Return()

	first := model.AnalysisResult{{{Year: 2000, Value: 38.7}}}
	second := model.AnalysisResult{{{Year: 2001, Value: 38.6}}}
	m.StoreResult(first)
	m.StoreResult(second)

	n.AssertNumberOfCalls(t, "NotifyAll", 2)
	assert.Equal(t, []model.AnalysisResult{first, second}, n.seen)
	assert.Equal(t, second, m.State())
}
