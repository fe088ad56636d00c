package manager

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathguard/dimension"
	"github.com/katalvlaran/pathguard/energy"
	"github.com/katalvlaran/pathguard/filters"
)

// DimensionFilterConfig mirrors spec.md §6's configuration options,
// plus the flags SPEC_FULL.md §6 adds.
type DimensionFilterConfig struct {
	DisableScheduling      bool
	HasCumulCost           bool
	HasPathCumulConstraint bool
	HasPrecedences         bool
	HasResourceGroups      bool
	FilterObjectiveCost    bool
	UseChainCumulFilter    bool
	EnableLPRefinement     bool
	DebugChecks            bool
}

// Components bundles already-constructed filter instances the
// Selector may register, depending on which flags in cfg are set. Any
// field may be left nil if the corresponding flag is false.
type Components struct {
	// DimensionChecker backs priority-0's lightweight chain/path cumul
	// propagation (spec.md §4.3's RIQ fast path, no embedded solver).
	DimensionChecker *dimension.Checker
	// CumulFilter backs priority-1's path cumul filter with its
	// optional embedded gonum/optimize refinement (already wrapped via
	// NewCumulAdapter by the caller).
	CumulFilter Filter
	// EnergyChecker backs priority-2's cumul-bounds propagation over
	// the whole path via the weighted wavelet tree (spec.md §4.6).
	EnergyChecker *energy.Checker

	ResourceGroup     *filters.ResourceGroupFilter
	Disjunctions      []*filters.Disjunction
	PickupDelivery    *filters.PickupDelivery
	VehicleVariable   *filters.VehicleVariable
	MaxActiveVehicles *filters.MaxActiveVehicles
	ActiveNodeGroups  []*filters.ActiveNodeGroup
	TypeRegulations   *filters.TypeRegulations
	RouteConstraint   *filters.RouteConstraint
	VehicleAmortized  *filters.VehicleAmortizedCost
}

// Build assembles a FilterManager from cfg and comp. Priority-4
// ("global LP cumul") is left unassigned by default: no package in
// this module implements a standalone external LP/MIP cumul solver
// beyond the gonum/optimize refinement already embedded in CumulFilter
// at priority 1 (see DESIGN.md); a caller with a real external
// optimizer can Register one at PriorityGlobalLPCumul directly.
func Build(cfg DimensionFilterConfig, log zerolog.Logger, comp Components) *FilterManager {
	m := New(log)
	m.SetDisableScheduling(cfg.DisableScheduling)
	m.SetDebugChecks(cfg.DebugChecks)

	if cfg.UseChainCumulFilter && comp.DimensionChecker != nil {
		m.Register("dimension", PriorityChainCumulLight, Adapt(comp.DimensionChecker))
	}
	if cfg.HasCumulCost && comp.CumulFilter != nil {
		m.Register("cumul", PriorityCumulEmbeddedOpt, comp.CumulFilter)
	}
	if cfg.FilterObjectiveCost && comp.EnergyChecker != nil {
		m.Register("energy", PriorityCumulBoundsProp, Adapt(comp.EnergyChecker))
	}

	if cfg.HasResourceGroups && comp.ResourceGroup != nil {
		m.Register("resource-group", PriorityResourceAssign, Adapt(comp.ResourceGroup))
	}
	for _, d := range comp.Disjunctions {
		m.Register("disjunction", PriorityResourceAssign, Adapt(d))
	}
	if comp.PickupDelivery != nil {
		m.Register("pickup-delivery", PriorityResourceAssign, Adapt(comp.PickupDelivery))
	}
	if comp.VehicleVariable != nil {
		m.Register("vehicle-variable", PriorityResourceAssign, Adapt(comp.VehicleVariable))
	}
	if comp.MaxActiveVehicles != nil {
		m.Register("max-active-vehicles", PriorityResourceAssign, Adapt(comp.MaxActiveVehicles))
	}
	for _, g := range comp.ActiveNodeGroups {
		m.Register("active-node-group", PriorityResourceAssign, Adapt(g))
	}
	if comp.TypeRegulations != nil {
		m.Register("type-regulations", PriorityResourceAssign, Adapt(comp.TypeRegulations))
	}
	if comp.RouteConstraint != nil {
		m.Register("route-constraint", PriorityResourceAssign, Adapt(comp.RouteConstraint))
	}
	if comp.VehicleAmortized != nil {
		m.Register("vehicle-amortized-cost", PriorityResourceAssign, Adapt(comp.VehicleAmortized))
	}

	return m
}
