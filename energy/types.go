package energy

// NodeForceFunc returns the signed force a vehicle picks up (or sheds,
// if negative) at node. Running force is the prefix sum of these
// values along a path.
type NodeForceFunc func(node int) int64

// DistanceFunc returns the non-negative arc distance for (u, v) under
// the given vehicle class.
type DistanceFunc func(u, v, vehicleClass int) int64

// VehicleClassFunc returns the vehicle class governing a path's arc
// distances.
type VehicleClassFunc func(path int) int

// ThresholdFunc, CostBelowFunc and CostAboveFunc parameterize the
// two-piece linear cost per path (dimensions may price different
// vehicle classes differently).
type (
	ThresholdFunc  func(path int) int64
	CostBelowFunc  func(path int) int64
	CostAboveFunc  func(path int) int64
	ForceStartMinFunc func(path int) int64
	ForceEndMinFunc   func(path int) int64
)
