package viewer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
)

var kind7Result = model.AnalysisResult{
	{{Year: 2016, Value: 4458.2}, {Year: 2015, Value: 4508.7}},
	{{Year: 2016, Value: 4.5}, {Year: 2014, Value: 4.7}},
}

var kind7Params = &model.Parameters{
	Kind: model.KindHealthSpendMortality, Country: "CAN", StartYear: 2014, EndYear: 2016,
}

func display(t *testing.T, kind model.ViewerKind, r model.AnalysisResult, p *model.Parameters) string {
	t.Helper()
	v, err := New(kind, fixedState(r))
	require.NoError(t, err)
	assert.Equal(t, kind, v.Kind())
	v.Update(p)
	var buf bytes.Buffer
	require.NoError(t, v.Display(&buf))
	return buf.String()
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("histogram", fixedState(nil))
	assert.Error(t, err)
}

func TestViewer_NoDataBeforeUpdate(t *testing.T) {
	for _, k := range model.ViewerKinds() {
		v, err := New(k, fixedState(kind7Result))
		require.NoError(t, err)
		assert.ErrorIs(t, v.Display(&bytes.Buffer{}), ErrNoData, k)
	}
}

func TestViewer_EmptyStateStaysNoData(t *testing.T) {
	v, err := New(model.ViewerLine, fixedState(model.AnalysisResult{}))
	require.NoError(t, err)
	v.Update(kind7Params)
	assert.ErrorIs(t, v.Display(&bytes.Buffer{}), ErrNoData)
}

func TestChartViewers_RenderHTML(t *testing.T) {
	for _, k := range []model.ViewerKind{model.ViewerLine, model.ViewerScatter, model.ViewerTime} {
		out := display(t, k, kind7Result, kind7Params)
		assert.Contains(t, out, "<html", k)
		assert.Contains(t, out, "Current Health Expenditure per Capita vs Mortality Rate", k)
		assert.Contains(t, out, "Infant mortality", k)
	}
}

func TestPieViewer_AverageAndRemainder(t *testing.T) {
	p := &model.Parameters{Kind: model.KindAverageForest, Country: "CAN", StartYear: 2015, EndYear: 2016}
	out := display(t, model.ViewerPie, model.AnalysisResult{{{Year: 2015, Value: 30}, {Year: 2016, Value: 40}}}, p)
	assert.Contains(t, out, "Average Forest Area")
	assert.Contains(t, out, "Remainder")
}

func TestReportViewer(t *testing.T) {
	out := display(t, model.ViewerReport, kind7Result, kind7Params)
	assert.Contains(t, out, "Current Health Expenditure per Capita vs Mortality Rate")
	assert.Contains(t, out, "CAN, 2014-2016")
	assert.Contains(t, out, "4458.2")
	assert.Contains(t, out, "Average")
	assert.Contains(t, out, "4483.45")
	body := out[bytes.Index([]byte(out), []byte("Year")):]
	assert.Less(t, bytes.Index([]byte(body), []byte("2016")), bytes.Index([]byte(body), []byte("2015")))
}
