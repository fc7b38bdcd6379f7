package schedule

import "github.com/duskbar/rota/roster"

// WorkerSlot identifies a (worker id, slot index) pair that is forbidden
// for a new assignment: the worker already holds a shift at that slot
// index, whether from a pre-existing row or from the bar pool's output
// folded in before the general pool runs.
type WorkerSlot struct {
	WorkerID int
	Slot     SlotIndex
}

// DerivedState is the read-only-within-a-run state the coordinator builds
// once from pre-existing assignments and mutates only between the bar and
// general planner invocations (§3, §5).
type DerivedState struct {
	Venue VenueConfig

	// AssignedPositions is the set of slot-instances already filled by
	// pre-existing assignments.
	AssignedPositions map[SlotInstance]struct{}
	// AssignedWorkers is the set of worker ids with >=1 pre-existing
	// assignment; excluded from the eligible pool for this run.
	AssignedWorkers map[int]struct{}
	// WorkerAtSlot is the set of (worker, slot) pairs forbidden for new
	// assignments.
	WorkerAtSlot map[WorkerSlot]struct{}

	// MissingBar and MissingGeneral are the ordered lists of unfilled
	// slot-instances, split by role class and (for bar) the bar
	// time-window rule.
	MissingBar     []SlotInstance
	MissingGeneral []SlotInstance

	// CapacityMap maps eligible worker id to remaining weekly cap,
	// initialized to Venue.WeeklyCap. The coordinator decrements entries
	// here between the bar and general pool runs.
	CapacityMap map[int]int

	// EligibleBar and EligibleGeneral are the eligible workers (no
	// pre-existing assignment this week) split by role class.
	EligibleBar     []roster.Worker
	EligibleGeneral []roster.Worker

	// MaxHistoricalCount is taken over ALL workers, including ineligible
	// ones, per spec §9.
	MaxHistoricalCount int
}

// BuildDerivedState constructs the DerivedState described in spec §3 from
// the full worker roster and the week's pre-existing assignments. It does
// not mutate its inputs.
func BuildDerivedState(venue VenueConfig, workers []roster.Worker, preExisting []Assignment) DerivedState {
	ds := DerivedState{
		Venue:             venue,
		AssignedPositions: make(map[SlotInstance]struct{}, len(preExisting)),
		AssignedWorkers:   make(map[int]struct{}, len(preExisting)),
		WorkerAtSlot:      make(map[WorkerSlot]struct{}, len(preExisting)),
		CapacityMap:       make(map[int]int),
	}

	for _, a := range preExisting {
		ds.AssignedPositions[SlotInstance{Slot: a.Slot, Location: a.Location}] = struct{}{}
		ds.AssignedWorkers[a.WorkerID] = struct{}{}
		ds.WorkerAtSlot[WorkerSlot{WorkerID: a.WorkerID, Slot: a.Slot}] = struct{}{}
	}

	ds.MaxHistoricalCount = roster.MaxHistoricalCount(workers)

	eligible := roster.Exclude(workers, ds.AssignedWorkers)
	ds.EligibleBar, ds.EligibleGeneral = roster.ByClass(eligible)
	for _, w := range eligible {
		ds.CapacityMap[w.ID] = venue.WeeklyCap
	}

	for _, slot := range venue.ActiveRing {
		for _, loc := range venue.GeneralLocations {
			inst := SlotInstance{Slot: slot, Location: loc}
			if _, filled := ds.AssignedPositions[inst]; filled {
				continue
			}
			ds.MissingGeneral = append(ds.MissingGeneral, inst)
		}
		for _, loc := range venue.BarLocations {
			inst := SlotInstance{Slot: slot, Location: loc}
			if _, filled := ds.AssignedPositions[inst]; filled {
				continue
			}
			if !venue.InBarWindow(slot) {
				continue
			}
			ds.MissingBar = append(ds.MissingBar, inst)
		}
	}

	return ds
}

// ReserveBarResults folds the bar pool's generated assignments into the
// shared state before the general pool runs: decrements each worker's
// remaining capacity and marks (worker, slot) as forbidden. Mutates ds in
// place, matching the coordinator's sequential happens-before contract
// (§5).
func (ds *DerivedState) ReserveBarResults(barGenerated []Assignment) {
	for _, a := range barGenerated {
		ds.CapacityMap[a.WorkerID]--
		ds.WorkerAtSlot[WorkerSlot{WorkerID: a.WorkerID, Slot: a.Slot}] = struct{}{}
	}
}
