package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskbar/rota/roster"
	"github.com/duskbar/rota/schedule"
)

func TestBuildDerivedState_NoPreExisting(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	workers := []roster.Worker{
		{ID: 1, Class: roster.General, HistoricalCount: 3},
		{ID: 2, Class: roster.Bar, HistoricalCount: 7},
	}

	ds := schedule.BuildDerivedState(venue, workers, nil)

	require.Len(t, ds.MissingGeneral, 6*5)
	require.Len(t, ds.MissingBar, 4*2) // only 4 of 6 ring slots are in the bar window
	require.Equal(t, 7, ds.MaxHistoricalCount)
	require.Len(t, ds.EligibleGeneral, 1)
	require.Len(t, ds.EligibleBar, 1)
	require.Equal(t, schedule.DefaultCap, ds.CapacityMap[1])
	require.Equal(t, schedule.DefaultCap, ds.CapacityMap[2])
}

func TestBuildDerivedState_PreExistingExcludesWorkerAndPosition(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	workers := []roster.Worker{
		{ID: 1, Class: roster.General},
		{ID: 2, Class: roster.General},
	}
	pre := []schedule.Assignment{
		{Slot: 44, Location: "Front1", WorkerID: 1, Source: schedule.PreExisting},
	}

	ds := schedule.BuildDerivedState(venue, workers, pre)

	require.Len(t, ds.EligibleGeneral, 1)
	require.Equal(t, 2, ds.EligibleGeneral[0].ID)
	require.Len(t, ds.MissingGeneral, 6*5-1)

	_, forbidden := ds.WorkerAtSlot[schedule.WorkerSlot{WorkerID: 1, Slot: 44}]
	require.True(t, forbidden)
	_, capped := ds.CapacityMap[1]
	require.False(t, capped, "a worker with a pre-existing assignment gets no capacity entry")
}

func TestReserveBarResults_DecrementsCapacityAndForbidsSlot(t *testing.T) {
	venue := schedule.DefaultVenueConfig()
	workers := []roster.Worker{{ID: 9, Class: roster.Bar}}
	ds := schedule.BuildDerivedState(venue, workers, nil)
	require.Equal(t, 2, ds.CapacityMap[9])

	ds.ReserveBarResults([]schedule.Assignment{
		{Slot: 46, Location: "Bar1", WorkerID: 9, Source: schedule.Generated},
	})

	require.Equal(t, 1, ds.CapacityMap[9])
	_, forbidden := ds.WorkerAtSlot[schedule.WorkerSlot{WorkerID: 9, Slot: 46}]
	require.True(t, forbidden)
}
