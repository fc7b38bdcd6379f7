package mcmf

import (
	"math"

	"github.com/duskbar/rota/schedule"
)

// Instance is one pool's flow graph together with the bookkeeping Build
// used to lay it out, which ExtractMatching needs to read edges back out
// in the right order (spec §4.1, §4.3).
type Instance struct {
	Graph  *Graph
	Source Node
	Sink   Node

	// Workers are the eligible worker ids for this pool, in build order.
	Workers []int
	// Ring is the active slot ring, in build order.
	Ring []schedule.SlotIndex
	// Missing is the ordered list of unfilled slot-instances for this
	// pool.
	Missing []schedule.SlotInstance

	userAtSlot     []Node      // flat [worker index * len(Ring) + ring index] -> node, or -1 if absent
	missingIndexOf map[Node]int // missing node -> index into Missing
}

func (inst *Instance) userAtSlotNode(workerIdx, ringIdx int) (Node, bool) {
	n := inst.userAtSlot[workerIdx*len(inst.Ring)+ringIdx]
	if n < 0 {
		return 0, false
	}
	return n, true
}

// WorkerSlotForbidden reports whether (workerID, slot) must not receive a
// new assignment: it is in the caller-supplied forbidden set.
type WorkerSlotForbidden func(workerID int, slot schedule.SlotIndex) bool

// Build constructs the layered residual graph described in spec §4.1 for
// one pool (bar or general): source, one node per eligible worker, one
// node per (worker, ring position), one node per missing slot-instance,
// sink.
//
// weight is the per-worker logistic weight (spec §4.1); capacity is the
// eligible worker's remaining weekly cap; forbidden reports whether a
// given (worker, slot) pair is off-limits (pre-existing assignment, or a
// bar-pool placement folded in before the general pool runs).
//
// smoothingFactor multiplies weight before rounding to the nearest
// integer cost, per spec §4.1's "costs as integers" design note.
func Build(
	workers []int,
	ring []schedule.SlotIndex,
	missing []schedule.SlotInstance,
	capacity map[int]int,
	weight map[int]float64,
	forbidden WorkerSlotForbidden,
	smoothingFactor float64,
) *Instance {
	eligibleCount := len(workers)
	ringLen := len(ring)
	missingCount := len(missing)

	n := 2 + eligibleCount + eligibleCount*ringLen + missingCount
	g := NewGraph(n)

	source := Node(0)
	firstWorker := 1
	userStart := firstWorker + eligibleCount
	slotStart := userStart + eligibleCount*ringLen
	sink := Node(slotStart + missingCount)

	inst := &Instance{
		Graph:          g,
		Source:         source,
		Sink:           sink,
		Workers:        workers,
		Ring:           ring,
		Missing:        missing,
		userAtSlot:     make([]Node, eligibleCount*ringLen),
		missingIndexOf: make(map[Node]int, missingCount),
	}
	for i := range inst.userAtSlot {
		inst.userAtSlot[i] = -1
	}

	// source -> worker_i
	for i, workerID := range workers {
		workerNode := Node(firstWorker + i)
		g.AddEdge(source, workerNode, int64(capacity[workerID]), 0)
	}

	// worker_i -> user_at_slot(i, ring position)
	for i := range workers {
		workerNode := Node(firstWorker + i)
		for k := 0; k < ringLen; k++ {
			uasNode := Node(userStart + i*ringLen + k)
			g.AddEdge(workerNode, uasNode, 1, 0)
			inst.userAtSlot[i*ringLen+k] = uasNode
		}
	}

	// missing_k -> sink, and record node->index for the extractor.
	for k := range missing {
		missingNode := Node(slotStart + k)
		inst.missingIndexOf[missingNode] = k
		g.AddEdge(missingNode, sink, 1, 0)
	}

	// user_at_slot(i, s) -> missing_k for every k whose slot matches ring
	// position s's slot index, unless (worker_i, slot) is forbidden.
	for i, workerID := range workers {
		w := weight[workerID]
		for k, ringIdx := range ring {
			uasNode := Node(userStart + i*ringLen + k)
			if forbidden(workerID, ringIdx) {
				continue
			}
			for mk, si := range missing {
				if si.Slot != ringIdx {
					continue
				}
				cost := int64(math.Round(smoothingFactor * w))
				g.AddEdge(uasNode, Node(slotStart+mk), 1, cost)
			}
		}
	}

	return inst
}
