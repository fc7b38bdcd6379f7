// Package fairness implements the Gini-based fairness gate the planner
// sweeps smoothing factors against (spec §4.4).
package fairness

// Threshold returns the size-adjusted Gini tolerance for a workforce of n
// workers with a recorded historical count: min(1.0, 0.20 + 0.30/n). The
// +0.30/n term widens the acceptable band for small workforces, where a
// single additional shift moves the coefficient disproportionately.
//
// Threshold(0) returns 1.0 by convention; callers should treat n==0 as
// vacuously fair rather than calling Threshold, matching Evaluate below.
func Threshold(n int) float64 {
	if n <= 0 {
		return 1.0
	}
	t := 0.20 + 0.30/float64(n)
	if t > 1.0 {
		return 1.0
	}
	return t
}

// Gini computes the Gini coefficient of the values in counts:
// sum_i sum_j |c_i - c_j| / (2 * n^2 * mean(c)).
//
// Returns 0 for an empty slice or when the mean is below 1e-3, since the
// coefficient is undefined (division by ~0) and a workforce with
// essentially no shifts assigned yet has nothing to be unfair about.
func Gini(counts []int) float64 {
	n := len(counts)
	if n == 0 {
		return 0
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(n)
	if mean < 1e-3 {
		return 0
	}

	var diffSum float64
	for _, ci := range counts {
		for _, cj := range counts {
			d := ci - cj
			if d < 0 {
				d = -d
			}
			diffSum += float64(d)
		}
	}

	return diffSum / (2.0 * float64(n) * float64(n) * mean)
}

// Evaluate projects historicalCounts forward by generatedCounts (the
// per-worker tally of assignments this run proposes) and reports the
// resulting Gini coefficient plus whether it is at or below the
// size-adjusted threshold for the number of workers with any recorded
// historical count.
//
// Per spec, N is the count of workers with a recorded historical count —
// not the count of workers who received a new assignment — so a worker
// who has worked before but got nothing this round still contributes to
// N and to the projected distribution.
func Evaluate(historicalCounts map[int]int, generatedCounts map[int]int) (gini float64, fair bool) {
	n := len(historicalCounts)
	if n == 0 {
		return 0, true
	}

	projected := make([]int, 0, n)
	for id, count := range historicalCounts {
		projected = append(projected, count+generatedCounts[id])
	}

	sum := 0
	for _, c := range projected {
		sum += c
	}
	mean := float64(sum) / float64(n)
	if mean < 1e-3 {
		return 0, true
	}

	gini = Gini(projected)
	return gini, gini <= Threshold(n)
}
