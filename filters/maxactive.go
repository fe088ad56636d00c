package filters

import "github.com/katalvlaran/pathguard/pathstate"

// MaxActiveVehicles accepts a delta iff at most Cap vehicles end up
// active (spec.md §4.4: a vehicle is active when its path visits at
// least one regular node, i.e. its route is longer than start+end).
type MaxActiveVehicles struct {
	numPaths int
	cap      int

	committedActiveByPath []bool
	committedActive       int
}

// NewMaxActiveVehicles builds a filter over numPaths vehicles with the
// given active-count cap.
func NewMaxActiveVehicles(numPaths, cap int) *MaxActiveVehicles {
	return &MaxActiveVehicles{
		numPaths:              numPaths,
		cap:                   cap,
		committedActiveByPath: make([]bool, numPaths),
	}
}

func isActive(ps *pathstate.PathState, path int) bool {
	return len(ps.Nodes(path)) > 2
}

// Commit snapshots each vehicle's committed active status.
func (f *MaxActiveVehicles) Commit(ps *pathstate.PathState) {
	f.committedActive = 0
	for p := 0; p < f.numPaths; p++ {
		a := isActive(ps, p)
		f.committedActiveByPath[p] = a
		if a {
			f.committedActive++
		}
	}
}

// Check maintains the active count incrementally from the committed
// baseline, touching only the changed paths — O(|delta|).
func (f *MaxActiveVehicles) Check(ps *pathstate.PathState) bool {
	count := f.committedActive
	for _, p := range ps.ChangedPaths() {
		now := isActive(ps, p)
		was := f.committedActiveByPath[p]
		if now && !was {
			count++
		} else if !now && was {
			count--
		}
	}

	return count <= f.cap
}
