package planner

import (
	"context"

	"github.com/duskbar/rota/roster"
	"github.com/duskbar/rota/schedule"
)

// Report summarizes one pool's outcome for logging (spec §7's
// infeasibility-is-a-data-condition guidance).
type Report struct {
	Pool            string
	Requested       int
	Filled          int
	Feasible        bool
	Fair            bool
	SmoothingFactor float64
	Gini            float64
	Cost            int64
}

// Shortfall reports how many requested slot-instances this pool's run
// left unfilled.
func (r Report) Shortfall() int { return r.Requested - r.Filled }

// CoordinatorResult is the merged output of one full engine run: the
// complete manifest (pre-existing plus both pools' generated
// assignments) and a report per pool.
type CoordinatorResult struct {
	Manifest schedule.Manifest
	Bar      Report
	General  Report
}

// RunCoordinator builds the derived state from the workforce and
// pre-existing assignments, runs the bar pool first, folds its output
// into the shared capacity/placement state, then runs the general pool,
// per spec §4.6. Bar runs first because bar positions are scarcer and
// must be matched before their capacity is spent on the general pool.
//
// ctx is the outermost entry point's cancellation context (mirrored by
// storage.Store's methods); the smoothing-factor sweep inside Plan holds
// no I/O and completes in well under the tick an operator would use to
// cancel a run, so ctx is threaded through for interface consistency
// with the storage layer rather than checked mid-sweep.
func RunCoordinator(ctx context.Context, venue schedule.VenueConfig, workers []roster.Worker, preExisting []schedule.Assignment) CoordinatorResult {
	ds := schedule.BuildDerivedState(venue, workers, preExisting)

	forbidden := func(workerID int, slot schedule.SlotIndex) bool {
		_, blocked := ds.WorkerAtSlot[schedule.WorkerSlot{WorkerID: workerID, Slot: slot}]
		return blocked
	}

	// workforceHistoricalCounts spans every worker on the roster — assigned
	// or eligible, bar or general — since fairness.Evaluate must judge each
	// pool's proposed matching against the whole workforce's load, not just
	// the pool-local eligible subset (spec §4.4; ground truth's compute_flow
	// passes the same unfiltered counts map into both pools' is_fair call).
	workforceHistoricalCounts := make(map[int]int, len(workers))
	for _, w := range workers {
		workforceHistoricalCounts[w.ID] = w.HistoricalCount
	}

	barResult := Plan(ds.EligibleBar, venue.ActiveRing, ds.MissingBar, ds.CapacityMap, forbidden, ds.MaxHistoricalCount, workforceHistoricalCounts)
	ds.ReserveBarResults(barResult.Generated)

	generalResult := Plan(ds.EligibleGeneral, venue.ActiveRing, ds.MissingGeneral, ds.CapacityMap, forbidden, ds.MaxHistoricalCount, workforceHistoricalCounts)

	manifest := schedule.Manifest{}
	manifest.Assignments = append(manifest.Assignments, preExisting...)
	manifest.Assignments = append(manifest.Assignments, barResult.Generated...)
	manifest.Assignments = append(manifest.Assignments, generalResult.Generated...)

	return CoordinatorResult{
		Manifest: manifest,
		Bar: Report{
			Pool: "bar", Requested: barResult.Requested, Filled: barResult.Filled,
			Feasible: barResult.Feasible, Fair: barResult.Fair,
			SmoothingFactor: barResult.SmoothingFactor, Gini: barResult.Gini, Cost: barResult.Cost,
		},
		General: Report{
			Pool: "general", Requested: generalResult.Requested, Filled: generalResult.Filled,
			Feasible: generalResult.Feasible, Fair: generalResult.Fair,
			SmoothingFactor: generalResult.SmoothingFactor, Gini: generalResult.Gini, Cost: generalResult.Cost,
		},
	}
}
