// Package pathfind provides a stepping single-source shortest-path search
// (Dijkstra) over small random weighted graphs, for visualization alongside
// the sorting steppers.
//
// Overview:
//
//   - Graph is an undirected graph over nodes 0..n−1 with non-negative
//     integer weights and a drawing position per node.
//   - Random samples an Erdős–Rényi-like graph: every unordered pair {i, j}
//     is connected independently with probability p, weights drawn uniformly
//     from a range. Trial order is fixed (i asc, j asc), so a seed fully
//     determines the graph.
//   - Dijkstra is a stepper.Stepper. One Step finalizes the closest frontier
//     node and relaxes its edges. The run completes when the target is
//     finalized or the frontier is empty (no path).
//
// Read surface per step:
//
//   - CurrentIndices: the node just finalized.
//   - SortedIndices:  every finalized (visited) node.
//   - Frontier:       open nodes ordered by tentative distance.
//   - Path:           best-known route source→target (nil if none yet).
//
// Metrics map onto the shared contract: Comparisons counts edge relaxations
// attempted, Swaps counts distance improvements, and the estimate is V+E.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over a whole run; a single Step is
//     O(deg(u) log V) plus any stale heap entries it discards.
//   - Space: O(V + E) with lazy decrease-key.
package pathfind
