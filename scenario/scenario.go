package scenario

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/pathguard/pathstate"
)

// VehicleSpec describes one vehicle's fixed start/end node ids.
type VehicleSpec struct {
	Start, End int
}

// Arc is one directed transit edge between two node ids, used only to
// build the reachability-validation adjacency — not consulted by
// pathstate itself.
type Arc struct {
	From, To int
	Weight   int64
}

// Config describes a synthetic scenario: numRegular customer nodes,
// one VehicleSpec per vehicle, and the arc set connecting them.
type Config struct {
	NumRegular int
	Vehicles   []VehicleSpec
	Arcs       []Arc
}

// Scenario bundles a ready-to-use PathState for tests that only need a
// valid fixture, not the topology that validated it.
type Scenario struct {
	PathState *pathstate.PathState
}

// adjacency is a minimal directed-arc index sized to exactly what
// reachable() needs: a from-node to to-nodes map, nothing else. It
// exists purely to validate that Build's caller gave each vehicle a
// start that can actually reach its end; it is discarded once Build
// returns.
type adjacency map[int][]int

func newAdjacency(arcs []Arc) adjacency {
	adj := make(adjacency, len(arcs))
	for _, a := range arcs {
		adj[a.From] = append(adj[a.From], a.To)
	}

	return adj
}

// reachable runs a plain BFS over adj from start, looking for end.
func (adj adjacency) reachable(start, end int) bool {
	if start == end {
		return true
	}

	visited := map[int]bool{start: true}
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, next := range adj[cur] {
			if next == end {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

// Build validates cfg and constructs a Scenario. Validation failures
// are aggregated via go-multierror rather than returning only the
// first defect, since fixture setup is a one-shot batch operation
// where seeing every problem at once speeds up test debugging.
func Build(cfg Config) (*Scenario, error) {
	var errs *multierror.Error

	if cfg.NumRegular < 0 {
		errs = multierror.Append(errs, fmt.Errorf("scenario: NumRegular must be non-negative, got %d", cfg.NumRegular))
	}
	if len(cfg.Vehicles) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("scenario: at least one vehicle is required"))
	}

	starts := make([]int, len(cfg.Vehicles))
	ends := make([]int, len(cfg.Vehicles))
	for i, v := range cfg.Vehicles {
		if v.Start == v.End {
			errs = multierror.Append(errs, fmt.Errorf("scenario: vehicle %d has identical start and end node %d", i, v.Start))
		}
		starts[i] = v.Start
		ends[i] = v.End
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	ps, err := pathstate.NewPathState(cfg.NumRegular, len(cfg.Vehicles), starts, ends)
	if err != nil {
		return nil, fmt.Errorf("scenario: building path state: %w", err)
	}

	adj := newAdjacency(cfg.Arcs)
	for i, v := range cfg.Vehicles {
		if !adj.reachable(v.Start, v.End) {
			errs = multierror.Append(errs, fmt.Errorf("scenario: vehicle %d's end %d is not reachable from its start %d", i, v.End, v.Start))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Scenario{PathState: ps}, nil
}
