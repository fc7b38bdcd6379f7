package weights_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskbar/rota/weights"
)

func TestLogistic_ZeroCountIsCheap(t *testing.T) {
	// x=0: raw sits just under 1, so weight is small but not exactly zero.
	w := weights.Logistic(0, 100)
	require.InDelta(t, 0.006715, w, 1e-5)
	require.Greater(t, w, 0.0)
}

func TestLogistic_AtMaxCountIsExpensive(t *testing.T) {
	// x=1: crossover has fully passed, so weight jumps into the expensive
	// tier relative to a fresh worker.
	w := weights.Logistic(100, 100)
	require.InDelta(t, 5.006715, w, 1e-5)
}

func TestLogistic_CountAboveMaxHitsFloorClamp(t *testing.T) {
	// x=2: raw underflows below clampFloor, so the result is exactly the
	// floor-clamped value, -ln(1e-3), not whatever the unclamped curve
	// would give.
	w := weights.Logistic(200, 100)
	require.InDelta(t, -math.Log(1e-3), w, 1e-9)
}

func TestLogistic_NonPositiveMaxCountForcesZeroRatio(t *testing.T) {
	// maxCount<=0 forces x=0 regardless of count, so every worker gets the
	// same cheap weight as a fresh worker against any positive maxCount.
	zero := weights.Logistic(0, 10)
	require.Equal(t, zero, weights.Logistic(5, 0))
	require.Equal(t, zero, weights.Logistic(999, -3))
}

func TestLogistic_MonotonicInCount(t *testing.T) {
	// Higher historical count never gets cheaper for a fixed maxCount.
	prev := weights.Logistic(0, 100)
	for _, count := range []int{10, 25, 50, 75, 100, 150} {
		w := weights.Logistic(count, 100)
		require.GreaterOrEqual(t, w, prev)
		prev = w
	}
}

func TestForWorkers_MatchesLogisticPerWorker(t *testing.T) {
	counts := map[int]int{1: 0, 2: 50, 3: 100}
	out := weights.ForWorkers(counts, 100)
	require.Len(t, out, 3)
	for id, c := range counts {
		require.Equal(t, weights.Logistic(c, 100), out[id])
	}
}

func TestForWorkers_EmptyCountsYieldsEmptyMap(t *testing.T) {
	out := weights.ForWorkers(map[int]int{}, 100)
	require.Empty(t, out)
}
