package filters

import "github.com/katalvlaran/pathguard/pathstate"

// VehicleVariable accepts a path iff every node on it is allowed under
// that path's vehicle (spec.md §4.4). Nodes absent from Allowed are
// unrestricted.
type VehicleVariable struct {
	allowed map[int]map[int]bool // node -> set of allowed path ids
}

// NewVehicleVariable builds a checker from node -> allowed path ids.
func NewVehicleVariable(allowed map[int][]int) *VehicleVariable {
	f := &VehicleVariable{allowed: make(map[int]map[int]bool, len(allowed))}
	for n, paths := range allowed {
		set := make(map[int]bool, len(paths))
		for _, p := range paths {
			set[p] = true
		}
		f.allowed[n] = set
	}

	return f
}

// Check evaluates every path touched this round.
func (f *VehicleVariable) Check(ps *pathstate.PathState) bool {
	for _, p := range ps.ChangedPaths() {
		for _, n := range ps.Nodes(p) {
			if set, ok := f.allowed[n]; ok && !set[p] {
				return false
			}
		}
	}

	return true
}
