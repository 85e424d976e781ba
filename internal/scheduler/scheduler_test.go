package scheduler

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/viewer"
)

type mockRefresher struct {
	mock.Mock
	viewers []viewer.Viewer
}

func (m *mockRefresher) Refresh(ctx context.Context) model.Outcome {
	return m.Called(ctx).Get(0).(model.Outcome)
}

func (m *mockRefresher) Display(render func(viewer.Viewer) error) error {
	m.Called()
	for _, v := range m.viewers {
		if err := render(v); err != nil {
			return err
		}
	}
	return nil
}

func lineViewer(t *testing.T) viewer.Viewer {
	t.Helper()
	result := model.AnalysisResult{{{Year: 2015, Value: 38.2}}}
	v, err := viewer.New(model.ViewerLine, viewer.StateFunc(func() model.AnalysisResult { return result }))
	require.NoError(t, err)
	v.Update(&model.Parameters{Kind: model.KindAverageForest, Country: "CAN", StartYear: 2015, EndYear: 2015})
	return v
}

func TestRunNow_RendersOnSuccess(t *testing.T) {
	dir := t.TempDir()
	ref := &mockRefresher{viewers: []viewer.Viewer{lineViewer(t)}}
	ref.On("Refresh", mock.Anything).Return(model.Success)
	ref.On("Display").Return()

	s := NewScheduler(context.Background(), ref, &viewer.Renderer{Dir: dir, Out: &bytes.Buffer{}})
	assert.Equal(t, model.Success, s.RunNow())

	_, err := os.Stat(filepath.Join(dir, "line.html"))
	assert.NoError(t, err)
	ref.AssertExpectations(t)
}

func TestRunNow_SkipsRenderOnFailure(t *testing.T) {
	ref := &mockRefresher{}
	ref.On("Refresh", mock.Anything).Return(model.InsufficientData)

	s := NewScheduler(context.Background(), ref, &viewer.Renderer{Dir: t.TempDir(), Out: &bytes.Buffer{}})
	assert.Equal(t, model.InsufficientData, s.RunNow())
	ref.AssertNotCalled(t, "Display")
}

func TestRegister(t *testing.T) {
	s := NewScheduler(context.Background(), &mockRefresher{}, &viewer.Renderer{})
	assert.NoError(t, s.Register("0 */10 * * * *"))
	assert.Error(t, s.Register("every tuesday"))
	assert.Len(t, s.Cron.Entries(), 1)
}
