// Package planner implements the smoothing-factor sweep (spec §4.5) and
// the two-pool bar/general coordinator (spec §4.6) that sit on top of the
// mcmf and fairness packages.
package planner

import (
	"github.com/duskbar/rota/fairness"
	"github.com/duskbar/rota/mcmf"
	"github.com/duskbar/rota/roster"
	"github.com/duskbar/rota/schedule"
	"github.com/duskbar/rota/weights"
)

// smoothingFactors is the fixed 0.0..1.0 step-0.1 sweep from spec §4.5,
// enumerated explicitly rather than accumulated by repeated addition so
// floating-point drift can't skip or duplicate a step.
var smoothingFactors = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// PoolResult is the outcome of one Plan call.
//
// Feasible reports whether some smoothing factor filled every missing
// slot-instance; Fair reports whether the accepted matching also passed
// the Gini gate. When Feasible is false, Generated still holds the best
// (maximum-flow, then minimum-cost) partial matching found across the
// sweep, per spec §7's guidance that infeasibility is a data condition
// whose partial manifest SHOULD still be persisted rather than discarded
// (see DESIGN.md's resolution of the ambiguous-infeasibility open
// question).
type PoolResult struct {
	Generated       []schedule.Assignment
	SmoothingFactor float64
	Flow            int64
	Cost            int64
	Gini            float64
	Fair            bool
	Feasible        bool
	Filled          int
	Requested       int
}

// Plan runs the smoothing-factor sweep for one pool: rebuild the graph,
// solve, and accept the first matching that is both feasible (fills every
// missing slot-instance) and fair (spec §4.4). If no factor is fair, it
// returns the last feasible matching with Fair=false, per the REDESIGN
// FLAG in spec §9. If no factor is even feasible, it returns the best
// partial matching found across the sweep with Feasible=false.
//
// eligible and workforceHistoricalCounts are deliberately different
// populations: eligible (this pool's candidates) feeds the logistic
// weights that shape the flow graph's costs, while
// workforceHistoricalCounts (every worker on the roster, assigned or not,
// either role class) is what fairness.Evaluate measures the projected
// Gini coefficient against. A bar pool with a single eligible worker
// would otherwise compute Gini over a one-element slice and always pass,
// making the fairness gate a no-op for exactly the small pools it most
// needs to catch.
func Plan(
	eligible []roster.Worker,
	ring []schedule.SlotIndex,
	missing []schedule.SlotInstance,
	capacity map[int]int,
	forbidden mcmf.WorkerSlotForbidden,
	maxHistoricalCount int,
	workforceHistoricalCounts map[int]int,
) PoolResult {
	if len(missing) == 0 {
		return PoolResult{Feasible: true, Fair: true}
	}

	workerIDs := make([]int, len(eligible))
	eligibleHistoricalCounts := make(map[int]int, len(eligible))
	for i, w := range eligible {
		workerIDs[i] = w.ID
		eligibleHistoricalCounts[w.ID] = w.HistoricalCount
	}
	weightByWorker := weights.ForWorkers(eligibleHistoricalCounts, maxHistoricalCount)

	var best *PoolResult
	for _, factor := range smoothingFactors {
		inst := mcmf.Build(workerIDs, ring, missing, capacity, weightByWorker, forbidden, factor)
		result := mcmf.Solve(inst.Graph, inst.Source, inst.Sink)

		feasible := result.Flow >= int64(len(missing))

		matched := mcmf.ExtractMatching(inst)
		generatedCounts := make(map[int]int, len(matched))
		assignments := make([]schedule.Assignment, 0, len(matched))
		for _, m := range matched {
			generatedCounts[m.WorkerID]++
			assignments = append(assignments, schedule.Assignment{
				Slot: m.Slot, Location: m.Location, WorkerID: m.WorkerID, Source: schedule.Generated,
			})
		}

		gini, fair := fairness.Evaluate(workforceHistoricalCounts, generatedCounts)
		pr := PoolResult{
			Generated:       assignments,
			SmoothingFactor: factor,
			Flow:            result.Flow,
			Cost:            result.Cost,
			Gini:            gini,
			Fair:            fair,
			Feasible:        feasible,
			Filled:          len(assignments),
			Requested:       len(missing),
		}

		if feasible && fair {
			return pr
		}
		if feasible {
			// A feasible-but-unfair matching becomes the fallback in case
			// no later factor is fair. Every later feasible factor
			// overwrites it here, so the LAST feasible one is kept.
			best = &pr
			continue
		}
		// Infeasible at this factor: only remember it as the fallback
		// partial result if no feasible matching has been seen yet, and
		// it improves on whatever partial result we already have.
		if best == nil || (!best.Feasible && betterPartial(pr, *best)) {
			best = &pr
		}
	}

	if best != nil {
		return *best
	}
	return PoolResult{Requested: len(missing)}
}

// betterPartial orders two infeasible results by higher flow, then lower
// cost, then higher factor (later factors reflect fuller fairness
// consideration even though neither reached full flow).
func betterPartial(a, b PoolResult) bool {
	if a.Flow != b.Flow {
		return a.Flow > b.Flow
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return a.SmoothingFactor > b.SmoothingFactor
}
