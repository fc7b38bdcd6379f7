package mcmf

import (
	"container/heap"
	"math"
)

// INF is the sentinel distance for "unreached": half of math.MaxInt32, so
// that dist[u]+cost additions stay far from overflow. Distances are int64,
// and costs and node counts here are small enough that this int32-sized
// sentinel is never reached by a real path.
const INF = math.MaxInt32 / 2

// Result is the outcome of a solver run: the total units of flow pushed
// from source to sink, and the total cost accumulated along the way.
type Result struct {
	Flow int64
	Cost int64
}

// Solve runs successive shortest paths with Johnson-style vertex
// potentials (spec §4.2) from source to sink over g, mutating g's residual
// capacities in place as it pushes flow. It never fails: if sink becomes
// unreachable before max flow is achieved, it returns whatever flow it
// found so far. Feasibility is judged by the caller (the planner), not
// here.
func Solve(g *Graph, source, sink Node) Result {
	n := g.NodeCount()
	potential := make([]int64, n)

	src, snk := int(source), int(sink)

	var result Result
	for {
		dist, prevEdge := shortestReducedPath(g, source, potential)
		if dist[snk] >= INF {
			break
		}

		for v := 0; v < n; v++ {
			if dist[v] < INF {
				potential[v] += dist[v]
			}
		}

		bottleneck := int64(math.MaxInt64)
		for v := snk; v != src; {
			idx := prevEdge[v]
			if cap := g.edges[idx].cap; cap < bottleneck {
				bottleneck = cap
			}
			v = int(g.edges[g.edges[idx].twin].to)
		}

		for v := snk; v != src; {
			idx := prevEdge[v]
			g.push(idx, bottleneck)
			result.Cost += bottleneck * g.edges[idx].cost
			v = int(g.edges[g.edges[idx].twin].to)
		}
		result.Flow += bottleneck
	}

	return result
}

// shortestReducedPath runs one Dijkstra pass over g's residual capacity
// edges using the reduced cost edge.cost + potential[u] - potential[v],
// which is non-negative whenever potential holds prior shortest-distance
// invariants (spec §4.2 step 2). It returns the reduced-cost distance
// from source to every node — not the raw edge-cost distance — and, per
// node, the arena index of the edge used to reach it, for bottleneck/push
// reconstruction. The caller (Solve) folds this reduced distance back
// into potential itself (potential[v] += dist[v]) before the next call;
// that running potential, not this function's return value, is what
// accumulates into a true shortest raw-cost distance across iterations.
func shortestReducedPath(g *Graph, source Node, potential []int64) (dist []int64, prevEdge []int) {
	n := g.NodeCount()
	dist = make([]int64, n)
	prevEdge = make([]int, n)
	settled := make([]bool, n)
	for v := range dist {
		dist[v] = INF
		prevEdge[v] = -1
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, &pqItem{node: int(source), dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.node
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, idx := range g.out[u] {
			e := g.edges[idx]
			if e.cap <= 0 {
				continue
			}
			v := int(e.to)
			if settled[v] {
				continue
			}
			reduced := e.cost + potential[u] - potential[v]
			cand := dist[u] + reduced
			if cand < dist[v] {
				dist[v] = cand
				prevEdge[v] = idx
				heap.Push(&pq, &pqItem{node: v, dist: cand})
			}
		}
	}

	return dist, prevEdge
}

// pqItem is one entry in the Dijkstra priority queue: a node and its
// current best-known reduced distance from source.
type pqItem struct {
	node int
	dist int64
}

// nodePQ is a min-heap of *pqItem ordered by ascending dist, using the
// lazy-decrease-key pattern: stale entries are skipped via the settled
// bitset in shortestReducedPath rather than removed from the heap.
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
