package mcmf

import "github.com/duskbar/rota/schedule"

// Matched is one saturated unit of flow: a worker placed into a missing
// slot-instance.
type Matched struct {
	Slot     schedule.SlotIndex
	Location schedule.Location
	WorkerID int
}

// ExtractMatching scans, for every eligible worker in build order and
// every ring position in build order, the user-at-slot node's outgoing
// edges, and emits an assignment for every edge into a missing-slot node
// left at zero residual capacity (spec §4.3). Emission order follows the
// scan order the Instance was built in: workers outermost, ring positions
// inner. That order carries no semantic weight but must be stable for
// tests that compare a generated manifest byte-for-byte.
func ExtractMatching(inst *Instance) []Matched {
	var out []Matched
	for wi, workerID := range inst.Workers {
		for ri := range inst.Ring {
			node, ok := inst.userAtSlotNode(wi, ri)
			if !ok {
				continue
			}
			for _, edgeIdx := range inst.Graph.Out(node) {
				to, cap, _ := inst.Graph.Edge(edgeIdx)
				if cap != 0 {
					continue
				}
				missingIdx, isMissingEdge := inst.missingIndexOf[to]
				if !isMissingEdge {
					continue
				}
				si := inst.Missing[missingIdx]
				out = append(out, Matched{Slot: si.Slot, Location: si.Location, WorkerID: workerID})
			}
		}
	}
	return out
}
