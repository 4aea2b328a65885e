// Package render draws stepping runs in a terminal: colored bar charts for
// sort frames, node tables for path-finding frames and go-pretty metric
// tables for summaries.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/stepper"
)

const (
	barGlyph      = "█"
	emptyGlyph    = "░"
	progressWidth = 20
	clearScreen   = "\033[H\033[2J"
	percentScale  = 100
)

// Number is the set of element types that can be drawn as bars.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Floats converts values to bar heights.
func Floats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}

// Options configure a Renderer.
type Options struct {
	// Width is the length in cells of the tallest bar.
	Width int
	// Color enables ANSI colors.
	Color bool
	// Live clears the screen before each frame.
	Live bool
}

// Renderer writes frames to an output stream.
type Renderer struct {
	w    io.Writer
	opts Options

	active *color.Color
	sorted *color.Color
	plain  *color.Color
	accent *color.Color
}

// New returns a Renderer writing to w. A non-positive width falls back to 40.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 40
	}

	r := &Renderer{
		w:      w,
		opts:   opts,
		active: color.New(color.FgRed, color.Bold),
		sorted: color.New(color.FgGreen),
		plain:  color.New(color.FgWhite),
		accent: color.New(color.FgCyan, color.Bold),
	}

	for _, c := range []*color.Color{r.active, r.sorted, r.plain, r.accent} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Bars draws one horizontal bar per value. Indices under examination are
// highlighted, finalized ones shown as sorted; on completion every bar is.
func (r *Renderer) Bars(values []float64, snap driver.Snapshot) string {
	if len(values) == 0 {
		return ""
	}

	hi := slices.Max(values)
	lo := min(slices.Min(values), 0)
	span := hi - lo

	current := make(map[int]bool, len(snap.CurrentIndices))
	for _, i := range snap.CurrentIndices {
		current[i] = true
	}
	sorted := make(map[int]bool, len(snap.SortedIndices))
	for _, i := range snap.SortedIndices {
		sorted[i] = true
	}

	labelWidth := len(fmt.Sprint(len(values) - 1))

	var b strings.Builder
	for i, v := range values {
		cells := r.opts.Width
		if span > 0 {
			cells = int((v - lo) / span * float64(r.opts.Width))
		}
		cells = max(cells, 1)

		paint := r.plain
		switch {
		case current[i]:
			paint = r.active
		case snap.Completed || sorted[i]:
			paint = r.sorted
		}

		fmt.Fprintf(&b, "%*d %s %g\n", labelWidth, i, paint.Sprint(strings.Repeat(barGlyph, cells)), v)
	}

	return b.String()
}

// Status is the one-line metrics summary shown under every frame.
func (r *Renderer) Status(title string, m stepper.Metrics) string {
	return fmt.Sprintf("%s  comparisons %s  swaps %s  steps %s/%s  %s",
		r.accent.Sprint(title),
		humanize.Comma(int64(m.Comparisons)),
		humanize.Comma(int64(m.Swaps)),
		humanize.Comma(int64(m.StepsTaken)),
		humanize.Comma(int64(m.EstimatedTotalSteps)),
		ProgressBar(m.Progress()),
	)
}

// Frame writes a full sort frame: bars followed by the status line.
func (r *Renderer) Frame(title string, values []float64, snap driver.Snapshot) error {
	var b strings.Builder
	if r.opts.Live {
		b.WriteString(clearScreen)
	}
	b.WriteString(r.Bars(values, snap))
	b.WriteString(r.Status(title, snap.Metrics))
	b.WriteByte('\n')

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}

// Print writes s followed by a newline.
func (r *Renderer) Print(s string) error {
	if _, err := fmt.Fprintln(r.w, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// ProgressBar renders ratio in [0,1] as a fixed-width bar with a percentage.
func ProgressBar(ratio float64) string {
	ratio = max(0, min(ratio, 1))
	filled := int(ratio * progressWidth)

	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat(barGlyph, filled),
		strings.Repeat(emptyGlyph, progressWidth-filled),
		ratio*percentScale)
}
