// Package mcmf implements the flow graph builder, the successive-shortest-
// paths min-cost max-flow solver, and the matching extractor that together
// form the assignment engine's core (spec §4.1-4.3).
//
// The graph is an arena-indexed residual graph: nodes are int handles into
// a slice, and every edge is stored twinned with its reverse edge so a
// unit of flow can be cancelled in O(1). This mirrors the twin-pointer
// residual-graph discipline this module's other flow and shortest-path
// code uses over string-keyed core.Graph vertices, adapted here to
// int-indexed nodes and integer costs: MCMF re-runs Dijkstra to
// convergence once per augmenting path, so avoiding map-keyed vertex
// lookups on the hot path matters far more here than in a single BFS/DFS
// max-flow pass.
package mcmf

// Node is an opaque handle into a Graph's node arena.
type Node int

// edge is one directed arc in the residual graph. Every edge added via
// AddEdge is paired with a reverse edge of initial capacity 0 at index
// Twin in the arena; pushing flow along an edge subtracts from its
// capacity and adds to its twin's, letting the solver cancel flow in O(1).
type edge struct {
	to   Node
	twin int // index of the paired reverse edge in Graph.edges
	cap  int64
	cost int64
}

// Graph is a directed, integer-capacity, integer-cost residual graph built
// fresh for one solver invocation.
type Graph struct {
	// out[v] holds the indices into edges of v's outgoing arcs, in the
	// order they were added. Iteration order over out[v] is the order the
	// matching extractor (§4.3) scans, and that order must be stable
	// across runs for the extractor's output to be deterministic.
	out   [][]int
	edges []edge
}

// NewGraph allocates a Graph with n nodes (numbered 0..n-1) and no edges.
func NewGraph(n int) *Graph {
	return &Graph{out: make([][]int, n)}
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.out) }

// AddNode appends one node to the arena and returns its handle.
func (g *Graph) AddNode() Node {
	g.out = append(g.out, nil)
	return Node(len(g.out) - 1)
}

// AddEdge appends a forward edge from -> to with the given capacity and
// cost, plus its paired reverse edge (capacity 0, cost negated). The
// negated reverse cost is what makes pushing flow back along a reverse
// edge cancel the forward edge's cost in the running total; the solver
// still runs Dijkstra over Johnson-reduced costs, not raw costs, to stay
// correct once negative reverse edges are in the graph. It returns the
// index of the forward edge in the shared arena, a stable handle that can
// be passed to Edge or Residual later.
func (g *Graph) AddEdge(from, to Node, cap, cost int64) int {
	fwd := edge{to: to, twin: len(g.edges) + 1, cap: cap, cost: cost}
	rev := edge{to: from, twin: len(g.edges), cap: 0, cost: -cost}
	idx := len(g.edges)
	g.edges = append(g.edges, fwd, rev)
	g.out[from] = append(g.out[from], idx)
	g.out[to] = append(g.out[to], idx+1)
	return idx
}

// Out returns the arena indices of v's outgoing edges, in insertion order.
func (g *Graph) Out(v Node) []int { return g.out[v] }

// Edge returns a copy of the edge at arena index idx.
func (g *Graph) Edge(idx int) (to Node, cap, cost int64) {
	e := g.edges[idx]
	return e.to, e.cap, e.cost
}

// Residual returns the remaining capacity of the edge at arena index idx.
func (g *Graph) Residual(idx int) int64 { return g.edges[idx].cap }

func (g *Graph) push(idx int, amount int64) {
	g.edges[idx].cap -= amount
	g.edges[g.edges[idx].twin].cap += amount
}
