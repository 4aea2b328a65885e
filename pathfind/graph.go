package pathfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and search.
var (
	// ErrTooFewNodes indicates a graph with no nodes was requested.
	ErrTooFewNodes = errors.New("pathfind: graph needs at least one node")

	// ErrNodeNotFound indicates a node index outside [0, n).
	ErrNodeNotFound = errors.New("pathfind: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("pathfind: negative edge weight")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("pathfind: self-loop not allowed")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("pathfind: probability must be in [0,1]")

	// ErrNilGraph indicates a nil *Graph was passed to NewDijkstra.
	ErrNilGraph = errors.New("pathfind: graph is nil")
)

// Node is a graph vertex with a drawing position.
type Node struct {
	ID   int
	X, Y float64
}

// Edge is one direction of an undirected adjacency entry.
type Edge struct {
	To     int
	Weight int64
}

// EdgeRecord describes an undirected edge once, with From < To.
type EdgeRecord struct {
	From, To int
	Weight   int64
}

// Graph is an undirected weighted graph over nodes 0..n−1.
type Graph struct {
	nodes []Node
	adj   [][]Edge
	edges int
}

// NewGraph returns a graph with n isolated nodes at the origin.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}

	g := &Graph{
		nodes: make([]Node, n),
		adj:   make([][]Edge, n),
	}
	for i := range g.nodes {
		g.nodes[i].ID = i
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether id is a valid node index.
func (g *Graph) Has(id int) bool { return id >= 0 && id < len(g.nodes) }

// Node returns node id. The caller must pass a valid index.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// Place sets the drawing position of node id.
func (g *Graph) Place(id int, x, y float64) error {
	if !g.Has(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id].X, g.nodes[id].Y = x, y

	return nil
}

// AddEdge connects u and v with weight w in both directions.
func (g *Graph) AddEdge(u, v int, w int64) error {
	switch {
	case !g.Has(u):
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	case !g.Has(v):
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	case u == v:
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	case w < 0:
		return fmt.Errorf("%w: %d—%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	g.edges++

	return nil
}

// Neighbors returns a copy of the adjacency list of u in insertion order.
func (g *Graph) Neighbors(u int) []Edge {
	if !g.Has(u) {
		return nil
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// Edges returns every undirected edge once, ordered by (From, insertion).
func (g *Graph) Edges() []EdgeRecord {
	out := make([]EdgeRecord, 0, g.edges)
	for u, list := range g.adj {
		for _, e := range list {
			if u < e.To {
				out = append(out, EdgeRecord{From: u, To: e.To, Weight: e.Weight})
			}
		}
	}

	return out
}
