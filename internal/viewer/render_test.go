package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
)

func TestRenderer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var buf bytes.Buffer
	r := &Renderer{Dir: dir, Out: &buf}

	report, err := New(model.ViewerReport, fixedState(kind7Result))
	require.NoError(t, err)
	report.Update(kind7Params)
	path, err := r.Render(report)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Contains(t, buf.String(), "Average")

	line, err := New(model.ViewerLine, fixedState(kind7Result))
	require.NoError(t, err)
	line.Update(kind7Params)
	path, err = r.Render(line)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "line.html"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestRenderer_NoData(t *testing.T) {
	r := &Renderer{Dir: t.TempDir(), Out: &bytes.Buffer{}}
	v, err := New(model.ViewerTime, fixedState(nil))
	require.NoError(t, err)
	_, err = r.Render(v)
	assert.ErrorIs(t, err, ErrNoData)
}
