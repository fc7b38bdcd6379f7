// Package schedule models the fillable positions of one venue-week: the
// active slot ring, the GENERAL/BAR location sets, slot-instances, and the
// assignments (pre-existing and generated) that make up a week manifest.
//
// Nothing in this package touches storage or the flow solver; it is the
// pure data model the rest of the engine is built on.
package schedule

// SlotIndex is a half-hour offset within the venue's 48-slot operating
// window, in [0, 48).
type SlotIndex int

// TotalSlots is the number of half-hour indices in a full day.
const TotalSlots = 48

// Location is a tagged role string identifying one fillable position
// within a slot, e.g. "Front1" or "Bar1".
type Location string

// DefaultCap is the per-week shift cap K applied to any worker with no
// pre-existing assignment for the run's target week.
const DefaultCap = 2

// VenueConfig externalizes the venue topology the original hard-codes:
// the active slot ring, the GENERAL and BAR location sets, the bar
// time-window predicate, and the per-week cap. DefaultVenueConfig
// reproduces the spec's fixed values exactly; a venue operator may load a
// different VenueConfig from YAML (see config.LoadVenue) without touching
// engine code.
type VenueConfig struct {
	// ActiveRing is the ordered sequence of slot indices considered in one
	// run, wrapping past midnight as needed.
	ActiveRing []SlotIndex
	// GeneralLocations are the GENERAL-role fillable positions.
	GeneralLocations []Location
	// BarLocations are the BAR-role fillable positions.
	BarLocations []Location
	// BarWindowStart and BarWindowEnd bound the half-open-at-both-sides
	// pair of intervals [BarWindowStart, TotalSlots) and [0, BarWindowEnd)
	// during which bar slot-instances are eligible to be staffed. The
	// default {46, 2} excludes the first hour of the ring from bar
	// staffing per spec.
	BarWindowStart SlotIndex
	BarWindowEnd   SlotIndex
	// WeeklyCap is the per-week shift cap K for any initially unassigned
	// worker.
	WeeklyCap int
}

// DefaultVenueConfig reproduces the spec's fixed topology: ring
// [44,45,46,47,0,1], five GENERAL roles, two BAR roles, bar window
// slot>=46 || slot<2, weekly cap 2.
func DefaultVenueConfig() VenueConfig {
	return VenueConfig{
		ActiveRing: []SlotIndex{44, 45, 46, 47, 0, 1},
		GeneralLocations: []Location{
			"Front1", "Front2", "Side", "Back", "Runner",
		},
		BarLocations:   []Location{"Bar1", "Bar2"},
		BarWindowStart: 46,
		BarWindowEnd:   2,
		WeeklyCap:      DefaultCap,
	}
}

// InBarWindow reports whether slot qualifies for bar staffing under this
// venue's window: slot >= BarWindowStart || slot < BarWindowEnd.
func (v VenueConfig) InBarWindow(slot SlotIndex) bool {
	return slot >= v.BarWindowStart || slot < v.BarWindowEnd
}

// IsBarLocation reports whether loc is one of this venue's BAR locations.
func (v VenueConfig) IsBarLocation(loc Location) bool {
	for _, l := range v.BarLocations {
		if l == loc {
			return true
		}
	}
	return false
}

// SlotInstance is a unique fillable position for one week: a (slot index,
// location) pair.
type SlotInstance struct {
	Slot     SlotIndex
	Location Location
}

// Assignment is a triple (slot index, location, worker id). Source
// distinguishes pre-existing rows read from storage from ones the engine
// generated this run.
type Assignment struct {
	Slot     SlotIndex
	Location Location
	WorkerID int
	Source   AssignmentSource
}

// AssignmentSource tags where an Assignment came from.
type AssignmentSource int

const (
	// PreExisting assignments were read from storage before this run.
	PreExisting AssignmentSource = iota
	// Generated assignments were produced by this run's planner.
	Generated
)

// Manifest is the set of all assignments for one week.
type Manifest struct {
	Assignments []Assignment
}

// Generated returns only the assignments this run produced.
func (m Manifest) Generated() []Assignment {
	out := make([]Assignment, 0, len(m.Assignments))
	for _, a := range m.Assignments {
		if a.Source == Generated {
			out = append(out, a)
		}
	}
	return out
}

// CountsByWorker tallies generated-assignment counts per worker.
func (m Manifest) CountsByWorker() map[int]int {
	counts := make(map[int]int)
	for _, a := range m.Assignments {
		if a.Source == Generated {
			counts[a.WorkerID]++
		}
	}
	return counts
}
