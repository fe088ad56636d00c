package filters

import (
	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/saturate"
)

// Disjunction implements spec.md §4.4's disjunction filter: a set of
// nodes with a max-cardinality and an optional penalty (positive =
// soft, negative = mandatory). Any delta leaving more than MaxCard
// members active is rejected, soft or mandatory. Otherwise a mandatory
// disjunction costs nothing, and a soft one costs Penalty per member
// short of MaxCard — substituting inactive for active in spec's literal
// formula penalty·max(0, inactive−(size−max_card)) and simplifying
// algebraically (inactive = size−active) yields penalty·max(0,
// max_card−active), which is what Check computes directly.
type Disjunction struct {
	members      []int
	maxCard      int
	penalty      int64
	penalizeOnce bool
}

// NewDisjunction builds a disjunction over members with the given
// cardinality cap and penalty (negative for mandatory).
func NewDisjunction(members []int, maxCard int, penalty int64, penalizeOnce bool) *Disjunction {
	return &Disjunction{
		members:      append([]int(nil), members...),
		maxCard:      maxCard,
		penalty:      penalty,
		penalizeOnce: penalizeOnce,
	}
}

func (d *Disjunction) countActive(ps *pathstate.PathState) int {
	active := 0
	for _, n := range d.members {
		if ps.Path(n) != -1 {
			active++
		}
	}

	return active
}

// Check returns ok=false when more than MaxCard members are active.
// Otherwise it returns the cost contribution (0 for mandatory
// disjunctions, since their penalty magnitude is never read as a
// cost).
func (d *Disjunction) Check(ps *pathstate.PathState) (ok bool, cost int64) {
	active := d.countActive(ps)
	mandatory := d.penalty < 0

	if active > d.maxCard {
		return false, 0
	}
	if mandatory {
		return true, 0
	}

	deficit := d.maxCard - active
	if deficit < 0 {
		deficit = 0
	}

	return true, clampPenalizeOnce(saturate.CapMul(d.penalty, int64(deficit)), d.penalizeOnce)
}

// clampPenalizeOnce is the shared (Accept and Synchronize) policy for
// PENALIZE_ONCE disjunctions: collapse any positive raw cost to 1,
// keeping both paths' treatment of the flag identical (spec.md §9).
func clampPenalizeOnce(raw int64, penalizeOnce bool) int64 {
	if !penalizeOnce {
		return raw
	}
	if raw > 0 {
		return 1
	}

	return 0
}
