package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskbar/rota/planner"
	"github.com/duskbar/rota/roster"
	"github.com/duskbar/rota/schedule"
)

func noneForbidden(int, schedule.SlotIndex) bool { return false }

func historicalCountsOf(workers []roster.Worker) map[int]int {
	counts := make(map[int]int, len(workers))
	for _, w := range workers {
		counts[w.ID] = w.HistoricalCount
	}
	return counts
}

// Scenario C — fairness preference: a heavily-loaded worker loses both
// open slots to a never-worked worker for any smoothing factor > 0. The
// two slots sit at different slot indices, since one worker can hold at
// most one shift per slot index.
func TestPlan_FairnessPreference(t *testing.T) {
	eligible := []roster.Worker{
		{ID: 1, Class: roster.General, HistoricalCount: 100},
		{ID: 2, Class: roster.General, HistoricalCount: 0},
	}
	ring := []schedule.SlotIndex{44, 45}
	missing := []schedule.SlotInstance{
		{Slot: 44, Location: "Front1"},
		{Slot: 45, Location: "Front1"},
	}
	capacity := map[int]int{1: 2, 2: 2}

	result := planner.Plan(eligible, ring, missing, capacity, noneForbidden, 100, historicalCountsOf(eligible))
	require.True(t, result.Feasible)
	for _, a := range result.Generated {
		require.Equal(t, 2, a.WorkerID, "cheaper worker should take every slot")
	}
}

// Scenario B — cap saturation: 3 workers cap 2 each, 8 requested general
// positions collapsed onto 2 slot indices (only 6 are structurally
// reachable given the one-shift-per-slot-index rule and cap 2 each).
func TestPlan_CapSaturation_PartialWhenInfeasible(t *testing.T) {
	eligible := []roster.Worker{
		{ID: 1, Class: roster.General}, {ID: 2, Class: roster.General}, {ID: 3, Class: roster.General},
	}
	ring := []schedule.SlotIndex{44, 45}
	var missing []schedule.SlotInstance
	locs := []schedule.Location{"Front1", "Front2", "Side", "Back"}
	for _, s := range ring {
		for _, l := range locs {
			missing = append(missing, schedule.SlotInstance{Slot: s, Location: l})
		}
	}
	require.Len(t, missing, 8)
	capacity := map[int]int{1: 2, 2: 2, 3: 2}

	result := planner.Plan(eligible, ring, missing, capacity, noneForbidden, 0, historicalCountsOf(eligible))
	require.False(t, result.Feasible)
	require.Equal(t, 6, result.Filled, "3 workers x cap 2, one shift per worker per slot index")
	require.Equal(t, 8, result.Requested)
}

// Scenario E's bar-pool half: one worker, cap 2, four openings across
// four distinct slot indices — infeasible, but the best partial matching
// (2 assignments) should still be returned, not an empty manifest.
func TestPlan_ScarcePool_ReturnsPartial(t *testing.T) {
	eligible := []roster.Worker{{ID: 9, Class: roster.Bar}}
	ring := []schedule.SlotIndex{46, 47, 0, 1}
	missing := []schedule.SlotInstance{
		{Slot: 46, Location: "Bar1"},
		{Slot: 47, Location: "Bar1"},
		{Slot: 0, Location: "Bar1"},
		{Slot: 1, Location: "Bar1"},
	}
	capacity := map[int]int{9: 2}

	result := planner.Plan(eligible, ring, missing, capacity, noneForbidden, 0, historicalCountsOf(eligible))
	require.False(t, result.Feasible)
	require.Equal(t, 2, result.Filled)
	require.Equal(t, 4, result.Requested)
	for _, a := range result.Generated {
		require.Equal(t, 9, a.WorkerID)
	}
}

// Scenario A — trivial feasibility: all-zero-history workforce, no
// pre-existing assignments, enough capacity to cover every general slot.
func TestRunCoordinator_TrivialFeasibility(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	var workers []roster.Worker
	for id := 1; id <= 16; id++ {
		workers = append(workers, roster.Worker{ID: id, Class: roster.General})
	}

	result := planner.RunCoordinator(context.Background(), venue, workers, nil)
	require.True(t, result.General.Feasible)
	require.Equal(t, 30, result.General.Filled) // 6 slots * 5 general roles
	require.Equal(t, 0, result.Bar.Filled)       // no BAR-status workers
	for _, a := range result.Manifest.Generated() {
		require.NotEqual(t, schedule.Location("Bar1"), a.Location)
		require.NotEqual(t, schedule.Location("Bar2"), a.Location)
	}

	counts := map[int]int{}
	for _, a := range result.Manifest.Generated() {
		counts[a.WorkerID]++
	}
	for _, c := range counts {
		require.LessOrEqual(t, c, schedule.DefaultCap)
	}
}

// Scenario D — pre-existing respect: a worker with a pre-existing
// assignment at slot 44 must not receive a generated assignment at slot
// 44 in any location, and that slot-instance must not appear as missing.
func TestRunCoordinator_PreExistingRespect(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	var workers []roster.Worker
	for id := 1; id <= 6; id++ {
		workers = append(workers, roster.Worker{ID: id, Class: roster.General})
	}
	pre := []schedule.Assignment{
		{Slot: 44, Location: "Front1", WorkerID: 7, Source: schedule.PreExisting},
	}
	workers = append(workers, roster.Worker{ID: 7, Class: roster.General})

	result := planner.RunCoordinator(context.Background(), venue, workers, pre)

	for _, a := range result.Manifest.Assignments {
		if a.Slot == 44 && a.Source == schedule.Generated {
			require.NotEqual(t, 7, a.WorkerID)
		}
	}
	frontOneAt44 := 0
	for _, a := range result.Manifest.Assignments {
		if a.Slot == 44 && a.Location == "Front1" {
			frontOneAt44++
		}
	}
	require.Equal(t, 1, frontOneAt44, "pre-existing (44,Front1) must not be duplicated by a generated one")
}

// Scenario E — bar-first reservation, at the coordinator level: the bar
// worker's two assignments must exclude them from the general pool.
func TestRunCoordinator_BarFirstReservation(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	workers := []roster.Worker{{ID: 1, Class: roster.Bar}}
	for id := 2; id <= 10; id++ {
		workers = append(workers, roster.Worker{ID: id, Class: roster.General})
	}

	result := planner.RunCoordinator(context.Background(), venue, workers, nil)
	require.False(t, result.Bar.Feasible)
	require.Equal(t, 2, result.Bar.Filled)

	for _, a := range result.Manifest.Generated() {
		if a.WorkerID == 1 {
			require.True(t, venue.IsBarLocation(a.Location), "bar worker must not appear in a general assignment")
		}
	}
}

func TestPlan_EmptyMissingIsTriviallyFeasible(t *testing.T) {
	result := planner.Plan(nil, nil, nil, map[int]int{}, noneForbidden, 0, map[int]int{})
	require.True(t, result.Feasible)
	require.True(t, result.Fair)
	require.Empty(t, result.Generated)
}
