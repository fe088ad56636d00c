package filters

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/pathguard/pathstate"
)

// PDPolicy selects a PickupDelivery ordering discipline.
type PDPolicy int

const (
	// PDNoOrder only requires each delivery's pickup to appear earlier
	// on the path, with no constraint on which open pickup it closes.
	PDNoOrder PDPolicy = iota
	// PDLifo requires a delivery to close the most recently opened
	// pickup (stack discipline).
	PDLifo
	// PDFifo requires a delivery to close the earliest opened pickup
	// (queue discipline).
	PDFifo
)

// PDPair is one pickup/delivery node pair.
type PDPair struct {
	Pickup, Delivery int
}

// PickupDelivery checks pickup-before-delivery ordering per path under
// one of three policies (spec.md §4.4), and rejects paths longer than
// MaxPathLen (a cycle-detection guard).
type PickupDelivery struct {
	pickupOf   map[int]int // delivery -> pickup
	isPickup   map[int]bool
	policy     PDPolicy
	maxPathLen int
}

// NewPickupDelivery builds a checker over the given pairs.
func NewPickupDelivery(pairs []PDPair, policy PDPolicy, maxPathLen int) *PickupDelivery {
	f := &PickupDelivery{
		pickupOf:   make(map[int]int, len(pairs)),
		isPickup:   make(map[int]bool, len(pairs)),
		policy:     policy,
		maxPathLen: maxPathLen,
	}
	for _, pr := range pairs {
		f.pickupOf[pr.Delivery] = pr.Pickup
		f.isPickup[pr.Pickup] = true
	}

	return f
}

// Check evaluates every path touched this round.
func (f *PickupDelivery) Check(ps *pathstate.PathState) bool {
	for _, p := range ps.ChangedPaths() {
		nodes := ps.Nodes(p)
		if len(nodes) > f.maxPathLen {
			return false
		}
		if !f.checkPath(nodes) {
			return false
		}
	}

	return true
}

func (f *PickupDelivery) checkPath(nodes []int) bool {
	switch f.policy {
	case PDLifo:
		return f.checkStack(nodes, true)
	case PDFifo:
		return f.checkStack(nodes, false)
	default:
		return f.checkNoOrder(nodes)
	}
}

func (f *PickupDelivery) checkNoOrder(nodes []int) bool {
	seen := make(map[int]bool)
	for _, n := range nodes {
		if pu, isDelivery := f.pickupOf[n]; isDelivery {
			if !seen[pu] {
				return false
			}
		}
		if f.isPickup[n] {
			seen[n] = true
		}
	}

	return true
}

func (f *PickupDelivery) checkStack(nodes []int, lifo bool) bool {
	open := deque.New()
	for _, n := range nodes {
		if f.isPickup[n] {
			open.PushBack(n)
		}
		if pu, isDelivery := f.pickupOf[n]; isDelivery {
			if open.Len() == 0 {
				return false
			}
			var got int
			if lifo {
				got = open.PopBack().(int)
			} else {
				got = open.PopFront().(int)
			}
			if got != pu {
				return false
			}
		}
	}

	return true
}
