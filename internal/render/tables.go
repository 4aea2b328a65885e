package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/algoflow/pathfind"
	"github.com/katalvlaran/algoflow/stepper"
)

// CompareRow is one algorithm's final metrics in a side-by-side comparison.
type CompareRow struct {
	Name    string
	Metrics stepper.Metrics
}

// AlgorithmRow describes one entry of the algorithm catalogue.
type AlgorithmRow struct {
	Name     string
	Title    string
	Estimate int
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	if title != "" {
		tbl.SetTitle(title)
	}

	return tbl
}

func comma(v int) string { return humanize.Comma(int64(v)) }

// MetricsTable renders the final counters of one run.
func MetricsTable(title string, m stepper.Metrics) string {
	tbl := newTable(title)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Comparisons", comma(m.Comparisons)},
		{"Swaps", comma(m.Swaps)},
		{"Steps", comma(m.StepsTaken)},
		{"Estimated steps", comma(m.EstimatedTotalSteps)},
		{"Progress", fmt.Sprintf("%.1f%%", m.Progress()*percentScale)},
	})
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	return tbl.Render()
}

// CompareTable renders several runs over the same input side by side.
func CompareTable(title string, rows []CompareRow) string {
	tbl := newTable(title)
	tbl.AppendHeader(table.Row{"Algorithm", "Comparisons", "Swaps", "Steps", "Estimate", "Steps/Estimate"})

	for _, r := range rows {
		ratio := "n/a"
		if r.Metrics.EstimatedTotalSteps > 0 {
			ratio = strconv.FormatFloat(float64(r.Metrics.StepsTaken)/float64(r.Metrics.EstimatedTotalSteps), 'f', 2, 64)
		}
		tbl.AppendRow(table.Row{
			r.Name,
			comma(r.Metrics.Comparisons),
			comma(r.Metrics.Swaps),
			comma(r.Metrics.StepsTaken),
			comma(r.Metrics.EstimatedTotalSteps),
			ratio,
		})
	}

	right := make([]table.ColumnConfig, 0, 5)
	for col := 2; col <= 6; col++ {
		right = append(right, table.ColumnConfig{Number: col, Align: text.AlignRight})
	}
	tbl.SetColumnConfigs(right)
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d algorithms", len(rows))})

	return tbl.Render()
}

// AlgorithmTable renders the catalogue printed by the list command.
func AlgorithmTable(n int, rows []AlgorithmRow) string {
	tbl := newTable("")
	tbl.AppendHeader(table.Row{"Name", "Title", fmt.Sprintf("Estimate (n=%d)", n)})
	for _, r := range rows {
		tbl.AppendRow(table.Row{r.Name, r.Title, comma(r.Estimate)})
	}

	return tbl.Render()
}

// GraphFrame renders the search state of d over g: one row per node with its
// tentative distance, plus the best-known route.
func (r *Renderer) GraphFrame(g *pathfind.Graph, d *pathfind.Dijkstra) string {
	current := make(map[int]bool)
	for _, v := range d.CurrentIndices() {
		current[v] = true
	}
	open := make(map[int]bool)
	for _, v := range d.Frontier() {
		open[v] = true
	}

	tbl := newTable(fmt.Sprintf("Dijkstra %d → %d", d.Source(), d.Target()))
	tbl.AppendHeader(table.Row{"Node", "State", "Distance", "Neighbours"})

	for v := range g.Len() {
		state := "unseen"
		switch {
		case current[v]:
			state = r.active.Sprint("current")
		case d.Visited(v):
			state = r.sorted.Sprint("visited")
		case open[v]:
			state = "frontier"
		}

		dist := "∞"
		if dv, ok := d.Distance(v); ok {
			dist = humanize.Comma(dv)
		}

		edges := g.Neighbors(v)
		parts := make([]string, len(edges))
		for i, e := range edges {
			parts[i] = fmt.Sprintf("%d(%d)", e.To, e.Weight)
		}

		tbl.AppendRow(table.Row{v, state, dist, strings.Join(parts, " ")})
	}

	var b strings.Builder
	if r.opts.Live {
		b.WriteString(clearScreen)
	}
	b.WriteString(tbl.Render())
	b.WriteByte('\n')
	b.WriteString(r.Status("Dijkstra", d.Metrics()))
	b.WriteByte('\n')

	if path := d.Path(); path != nil {
		hops := make([]string, len(path))
		for i, v := range path {
			hops[i] = strconv.Itoa(v)
		}
		b.WriteString("path: " + r.accent.Sprint(strings.Join(hops, " → ")))
		if d.Completed() {
			dv, _ := d.Distance(d.Target())
			fmt.Fprintf(&b, " (cost %s)", humanize.Comma(dv))
		}
		b.WriteByte('\n')
	} else if d.Completed() {
		b.WriteString("path: unreachable\n")
	}

	return b.String()
}
