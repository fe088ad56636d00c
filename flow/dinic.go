package flow

import (
	"context"
	"math"
)

// MaxFlow computes the maximum flow from source to sink using Dinic's
// algorithm (level-graph BFS + blocking flow via current-arc DFS),
// mutating n's residual capacities in place.
//
// Steps:
//  1. Validate source/sink are within n's vertex range.
//  2. Repeat until the sink is unreachable in the level graph:
//     a. Check ctx for cancellation (checked once per phase: every
//        production network here is sized to a single delta, so a
//        phase never does enough work to need finer-grained polling).
//     b. BFS from source, recording each vertex's level (O(V+E)).
//     c. DFS blocking flow along strictly increasing levels, reusing a
//        per-vertex "current arc" index so a saturated or dead-end edge
//        is never re-probed within the same phase (O(V*E) per phase).
//  3. Return the accumulated flow.
//
// Complexity: O(E * sqrt(V)) on unit-capacity bipartite networks,
// O(V^2*E) in general (ResourceGroupFilter's group->sink arcs carry
// the group capacity, so its networks are not unit-capacity).
func (n *Network) MaxFlow(ctx context.Context, source, sink int) (int64, error) {
	if source < 0 || source >= len(n.adj) {
		return 0, ErrSourceNotFound
	}
	if sink < 0 || sink >= len(n.adj) {
		return 0, ErrSinkNotFound
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		level, reached := n.bfsLevels(source, sink)
		if !reached {
			break
		}

		iter := make([]int, len(n.adj))
		for {
			pushed := n.dfsBlockingPush(source, sink, math.MaxInt64, level, iter)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total, nil
}

// bfsLevels assigns each reachable vertex its distance from source,
// returning false if sink is unreachable (the sentinel that ends the
// outer Dinic loop).
func (n *Network) bfsLevels(source, sink int) ([]int, bool) {
	level := make([]int, len(n.adj))
	for i := range level {
		level[i] = -1
	}

	level[source] = 0
	queue := make([]int, 0, len(n.adj))
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range n.adj[u] {
			if e.Cap > 0 && level[e.To] < 0 {
				level[e.To] = level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}

	return level, level[sink] >= 0
}

// dfsBlockingPush pushes one augmenting path's worth of flow from u
// toward sink, restricted to edges whose endpoint is exactly one level
// deeper (the level-graph constraint), advancing iter[u] past every
// edge it rules out so the next call never re-examines it.
func (n *Network) dfsBlockingPush(u, sink int, available int64, level, iter []int) int64 {
	if u == sink {
		return available
	}

	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		e := &n.adj[u][iter[u]]
		if e.Cap <= 0 || level[e.To] != level[u]+1 {
			continue
		}

		send := available
		if e.Cap < send {
			send = e.Cap
		}

		pushed := n.dfsBlockingPush(e.To, sink, send, level, iter)
		if pushed > 0 {
			e.Cap -= pushed
			n.adj[e.To][e.rev].Cap += pushed

			return pushed
		}
	}

	return 0
}
