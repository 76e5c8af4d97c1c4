package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concordlabs/concord/sample"
)

func TestScatterPlotPNG(t *testing.T) {
	report := testReport(t)
	s, err := sample.New("wheat-grain", testObserved, testPredicted)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, ScatterPlot(s, report.Lines, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestScatterPlotSVG(t *testing.T) {
	report := testReport(t)
	s, err := sample.New("wheat-grain", testObserved, testPredicted)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.svg")
	require.NoError(t, ScatterPlot(s, report.Lines, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestScatterPlotUnknownExtension(t *testing.T) {
	report := testReport(t)
	s, err := sample.New("wheat-grain", testObserved, testPredicted)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.bmp")
	require.Error(t, ScatterPlot(s, report.Lines, path))
}

func TestScatterPlotSubsetOfLines(t *testing.T) {
	s, err := sample.New("wheat-grain", testObserved, testPredicted)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, ScatterPlot(s, nil, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
