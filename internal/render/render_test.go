package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/pathfind"
	"github.com/katalvlaran/algoflow/stepper"
)

func TestFloats(t *testing.T) {
	assert.Equal(t, []float64{1, 2.5, -3}, Floats([]float64{1, 2.5, -3}))
	assert.Equal(t, []float64{4, 0}, Floats([]int{4, 0}))
}

func TestBars_ScalesToWidth(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Width: 10})

	out := r.Bars([]float64{10, 5, 0}, driver.Snapshot{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, 10, strings.Count(lines[0], barGlyph))
	assert.Equal(t, 5, strings.Count(lines[1], barGlyph))
	assert.Equal(t, 1, strings.Count(lines[2], barGlyph), "zero still draws one cell")
}

func TestBars_EqualValuesFillWidth(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Width: 4})

	out := r.Bars([]float64{7, 7}, driver.Snapshot{})
	assert.Equal(t, 8, strings.Count(out, barGlyph))
}

func TestBars_Empty(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{})
	assert.Empty(t, r.Bars(nil, driver.Snapshot{}))
}

func TestBars_NoColorHasNoEscapes(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Width: 5, Color: false})

	out := r.Bars([]float64{3, 1}, driver.Snapshot{CurrentIndices: []int{0}, SortedIndices: []int{1}})
	assert.NotContains(t, out, "\x1b[")
}

func TestBars_ColorHighlights(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Width: 5, Color: true})

	out := r.Bars([]float64{3, 1}, driver.Snapshot{CurrentIndices: []int{0}, SortedIndices: []int{1}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "\x1b[31", "current bar is red")
	assert.Contains(t, lines[1], "\x1b[32", "sorted bar is green")
}

func TestFrame_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Width: 5, Live: true})

	snap := driver.Snapshot{Metrics: stepper.Metrics{Comparisons: 1234, Swaps: 2, StepsTaken: 5, EstimatedTotalSteps: 10}}
	require.NoError(t, r.Frame("Bubble Sort", []float64{2, 1}, snap))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "50.0%")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat(emptyGlyph, progressWidth)+"] 0.0%", ProgressBar(-1))
	assert.Equal(t, "["+strings.Repeat(barGlyph, progressWidth)+"] 100.0%", ProgressBar(2))
	assert.Equal(t, "["+strings.Repeat(barGlyph, 10)+strings.Repeat(emptyGlyph, 10)+"] 50.0%", ProgressBar(0.5))
}

func TestMetricsTable(t *testing.T) {
	out := MetricsTable("Heap Sort", stepper.Metrics{Comparisons: 12345, Swaps: 7, StepsTaken: 3, EstimatedTotalSteps: 6})

	assert.Contains(t, out, "Heap Sort")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "50.0%")
}

func TestCompareTable(t *testing.T) {
	out := CompareTable("n=4", []CompareRow{
		{Name: "bubble", Metrics: stepper.Metrics{Comparisons: 6, Swaps: 4, StepsTaken: 10, EstimatedTotalSteps: 12}},
		{Name: "merge", Metrics: stepper.Metrics{StepsTaken: 3}},
	})

	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "0.83")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "TOTAL: 2 ALGORITHMS")
}

func TestAlgorithmTable(t *testing.T) {
	out := AlgorithmTable(50, []AlgorithmRow{{Name: "quick", Title: "Quick Sort", Estimate: 1234}})

	assert.Contains(t, out, "ESTIMATE (N=50)")
	assert.Contains(t, out, "Quick Sort")
	assert.Contains(t, out, "1,234")
}

func TestGraphFrame(t *testing.T) {
	g, err := pathfind.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	d, err := pathfind.NewDijkstra(g, 0, 2)
	require.NoError(t, err)

	r := New(&bytes.Buffer{}, Options{})

	out := r.GraphFrame(g, d)
	assert.Contains(t, out, "Dijkstra 0 → 2")
	assert.Contains(t, out, "∞")
	assert.NotContains(t, out, "path:", "target not yet discovered")

	_, err = driver.Drain(d, 0)
	require.NoError(t, err)

	out = r.GraphFrame(g, d)
	assert.Contains(t, out, "0 → 1 → 2")
	assert.Contains(t, out, "(cost 3)")
	assert.Contains(t, out, "visited")
}

func TestGraphFrame_Unreachable(t *testing.T) {
	g, err := pathfind.NewGraph(2)
	require.NoError(t, err)

	d, err := pathfind.NewDijkstra(g, 0, 1)
	require.NoError(t, err)

	_, err = driver.Drain(d, 0)
	require.NoError(t, err)

	out := New(&bytes.Buffer{}, Options{}).GraphFrame(g, d)
	assert.Contains(t, out, "path: unreachable")
}
