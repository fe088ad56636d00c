// Command pathfilterdemo wires a manager.FilterManager against a small
// scripted scenario and prints the accept/reject decision for a single
// synthetic neighbor move. It demonstrates the library end to end; it
// is not part of the library surface itself.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathguard/filters"
	"github.com/katalvlaran/pathguard/manager"
	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/scenario"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		flagLevel             string
		flagDisableScheduling bool
		flagMaxActiveVehicles int
		flagDebugChecks       bool
	)

	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.BoolVar(&flagDisableScheduling, "disable_scheduling", false, "skip priority>=1 filters")
	pflag.IntVar(&flagMaxActiveVehicles, "max_active_vehicles", 2, "cap on simultaneously active vehicles")
	pflag.BoolVar(&flagDebugChecks, "debug_checks", false, "emit per-filter trace logs")
	pflag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	sc, err := scenario.Build(scenario.Config{
		NumRegular: 2,
		Vehicles: []scenario.VehicleSpec{
			{Start: 2, End: 3},
			{Start: 4, End: 5},
		},
		Arcs: []scenario.Arc{
			{From: 2, To: 0, Weight: 10},
			{From: 0, To: 3, Weight: 10},
			{From: 4, To: 1, Weight: 10},
			{From: 1, To: 5, Weight: 10},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("building scenario")
		return failure
	}

	mgr := manager.Build(manager.DimensionFilterConfig{
		DisableScheduling: flagDisableScheduling,
		DebugChecks:       flagDebugChecks,
	}, log, manager.Components{
		MaxActiveVehicles: filters.NewMaxActiveVehicles(sc.PathState.NumPaths(), flagMaxActiveVehicles),
	})

	mgr.Synchronize(sc.PathState)

	// reroute vehicle 0 through regular node 0, activating it.
	if err := sc.PathState.ChangePath(0, []pathstate.Chain{
		{Begin: 0, End: 1}, // start 2
		{Begin: 4, End: 5}, // regular node 0
		{Begin: 1, End: 2}, // end 3
	}); err != nil {
		log.Error().Err(err).Msg("applying neighbor move")
		return failure
	}

	ok := mgr.Accept(sc.PathState, 0, 1_000_000)
	if ok {
		sc.PathState.Commit()
		mgr.Synchronize(sc.PathState)
		log.Info().Msg("neighbor accepted")
	} else {
		sc.PathState.Revert()
		log.Info().Msg("neighbor rejected")
	}

	return success
}
