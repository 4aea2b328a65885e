package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algoflow/stepper"
)

var _ stepper.Stepper = (*Dijkstra)(nil)

// Unreachable is the tentative distance of a node not yet discovered.
const Unreachable = int64(math.MaxInt64)

// Dijkstra is a stepping shortest-path search from source toward target.
type Dijkstra struct {
	g              *Graph
	source, target int

	dist    []int64
	prev    []int
	visited stepper.IndexSet
	pq      nodePQ

	counter stepper.Counter
	current []int
	done    bool
	reached bool
}

// NewDijkstra prepares a search on g. Only the source is on the frontier.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be nodes of g (ErrNodeNotFound).
//
// Construction errors also match stepper.ErrInvalidInput.
func NewDijkstra(g *Graph, source, target int) (*Dijkstra, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", stepper.ErrInvalidInput, ErrNilGraph)
	}
	for _, id := range []int{source, target} {
		if !g.Has(id) {
			return nil, fmt.Errorf("%w: %w: %d", stepper.ErrInvalidInput, ErrNodeNotFound, id)
		}
	}

	n := g.Len()
	d := &Dijkstra{
		g:       g,
		source:  source,
		target:  target,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: stepper.NewIndexSet(n),
		pq:      make(nodePQ, 0, n),
		counter: stepper.NewCounter(n + g.EdgeCount()),
	}
	for i := range d.dist {
		d.dist[i] = Unreachable
		d.prev[i] = -1
	}
	d.dist[source] = 0
	heap.Init(&d.pq)
	heap.Push(&d.pq, &nodeItem{id: source, dist: 0})

	return d, nil
}

// Step finalizes the closest open node and relaxes its edges, or completes
// the run when the target is finalized or nothing is left to explore.
func (d *Dijkstra) Step() {
	d.counter.Tick()
	if d.done {
		return
	}

	u, ok := d.popOpen()
	if !ok {
		d.done = true
		d.current = d.current[:0]
		return
	}

	d.visited.Add(u)
	d.current = append(d.current[:0], u)
	if u == d.target {
		d.reached = true
		d.done = true
		return
	}

	for _, e := range d.g.adj[u] {
		if d.visited.Has(e.To) {
			continue
		}
		d.counter.Compare()
		// Paths whose cost would reach Unreachable are not representable.
		if e.Weight >= Unreachable-d.dist[u] {
			continue
		}
		nd := d.dist[u] + e.Weight
		if nd >= d.dist[e.To] {
			continue
		}
		d.dist[e.To] = nd
		d.prev[e.To] = u
		d.counter.Move()
		heap.Push(&d.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// popOpen discards stale heap entries and returns the closest open node.
func (d *Dijkstra) popOpen() (int, bool) {
	for d.pq.Len() > 0 {
		item := heap.Pop(&d.pq).(*nodeItem)
		if d.visited.Has(item.id) || item.dist > d.dist[item.id] {
			continue
		}

		return item.id, true
	}

	return 0, false
}

// Completed reports whether the search has finished.
func (d *Dijkstra) Completed() bool { return d.done }

// Source returns the start node.
func (d *Dijkstra) Source() int { return d.source }

// Target returns the goal node.
func (d *Dijkstra) Target() int { return d.target }

// Visited reports whether v has been finalized.
func (d *Dijkstra) Visited(v int) bool { return d.visited.Has(v) }

// Reached reports whether the target was finalized.
func (d *Dijkstra) Reached() bool { return d.reached }

// CurrentIndices returns the node finalized by the last Step.
func (d *Dijkstra) CurrentIndices() []int { return slices.Clone(d.current) }

// SortedIndices returns the finalized nodes in ascending order.
func (d *Dijkstra) SortedIndices() []int { return d.visited.Sorted() }

// Metrics returns the run counters.
func (d *Dijkstra) Metrics() stepper.Metrics { return d.counter.Snapshot() }

// Distance returns the tentative (or final) distance of v and whether v has
// been discovered.
func (d *Dijkstra) Distance(v int) (int64, bool) {
	if !d.g.Has(v) || d.dist[v] == Unreachable {
		return Unreachable, false
	}

	return d.dist[v], true
}

// Frontier returns the open nodes (discovered, not finalized) ordered by
// tentative distance, ties broken by node id.
func (d *Dijkstra) Frontier() []int {
	var out []int
	for v, dv := range d.dist {
		if dv != Unreachable && !d.visited.Has(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b int) int {
		if d.dist[a] != d.dist[b] {
			if d.dist[a] < d.dist[b] {
				return -1
			}
			return 1
		}
		return a - b
	})

	return out
}

// Path returns the best-known route from source to target, or nil when the
// target has not been discovered.
func (d *Dijkstra) Path() []int {
	if d.dist[d.target] == Unreachable {
		return nil
	}

	var path []int
	for cur := d.target; cur != -1; cur = d.prev[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// nodeItem is a (node, distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem by distance, then id. Improved
// distances are pushed as new entries; outdated ones are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
