package report

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/sorting"
	"github.com/katalvlaran/algoflow/stepper"
)

func TestTrace_RecordsDriverTicks(t *testing.T) {
	s, err := sorting.NewBubble([]int{5, 3, 8, 1})
	require.NoError(t, err)

	trace := NewTrace()
	d, err := driver.New(s, driver.WithInterval(time.Millisecond), driver.WithOnTick(trace.Observe))
	require.NoError(t, err)

	require.NoError(t, d.Run(context.Background()))

	samples := trace.Samples()
	require.Len(t, samples, 10)
	last := samples[len(samples)-1]
	assert.Equal(t, 10, last.Steps)
	assert.Equal(t, 6, last.Comparisons)
	assert.Equal(t, 4, last.Swaps)

	trace.Reset()
	assert.Empty(t, trace.Samples())
}

func TestTrace_ConcurrentObserve(t *testing.T) {
	trace := NewTrace()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = trace.Observe(driver.Snapshot{Tick: i})
		}()
	}
	wg.Wait()

	assert.Len(t, trace.Samples(), 8)
}

func TestWriteYAML(t *testing.T) {
	sum := Summary{
		Kind:      "sort",
		Algorithm: "bubble",
		Title:     "Bubble Sort",
		Size:      2,
		Completed: true,
		Elapsed:   1500 * time.Millisecond,
		Metrics:   stepper.Metrics{Comparisons: 1, Swaps: 1, StepsTaken: 2, EstimatedTotalSteps: 2},
		Input:     []int{2, 1},
		Output:    []int{1, 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sum))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "bubble", decoded["algorithm"])
	assert.Equal(t, true, decoded["completed"])
	assert.NotContains(t, decoded, "path", "empty fields are omitted")

	metrics, ok := decoded["metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, metrics["steps_taken"])
}

func TestChart(t *testing.T) {
	_, err := Chart("empty", nil)
	require.ErrorIs(t, err, ErrEmptyTrace)

	samples := []Sample{
		{Tick: 1, Steps: 1, Comparisons: 1},
		{Tick: 2, Steps: 2, Comparisons: 2, Swaps: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, "Bubble Sort", samples))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Bubble Sort")
	assert.Contains(t, html, "Comparisons")
}
