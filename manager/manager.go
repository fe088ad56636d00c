package manager

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/saturate"
)

type entry struct {
	name     string
	priority Priority
	filter   Filter
}

// FilterManager owns an ordered, priority-tagged list of registered
// filters and dispatches the Accept/Synchronize lifecycle across them
// (spec.md §2/§6; SPEC_FULL.md §4.7).
type FilterManager struct {
	entries           []entry
	sorted            bool
	disableScheduling bool
	log               zerolog.Logger
	debugChecks       bool
}

// New builds an empty FilterManager. log is used only when
// SetDebugChecks(true) is called; the zero value is a safe no-op
// logger otherwise.
func New(log zerolog.Logger) *FilterManager {
	return &FilterManager{log: log}
}

// SetDisableScheduling mirrors spec.md §6's disable_scheduling flag:
// when true, Accept skips every filter registered at priority ≥
// PriorityCumulEmbeddedOpt, keeping only the lightweight priority-0
// path filters. Synchronize still commits every registered filter.
func (m *FilterManager) SetDisableScheduling(v bool) { m.disableScheduling = v }

// SetDebugChecks mirrors spec.md §9's routing_strong_debug_checks:
// when true, Accept logs a structured trace of every filter's verdict.
func (m *FilterManager) SetDebugChecks(v bool) { m.debugChecks = v }

// Register adds f under name at priority. Use Adapt to lift a
// concrete Check(ps)-style filter, or NewCumulAdapter for a
// pathfilter.Skeleton-backed one.
func (m *FilterManager) Register(name string, priority Priority, f Filter) {
	m.entries = append(m.entries, entry{name: name, priority: priority, filter: f})
	m.sorted = false
}

func (m *FilterManager) active() []entry {
	if !m.sorted {
		sort.SliceStable(m.entries, func(i, j int) bool { return m.entries[i].priority < m.entries[j].priority })
		m.sorted = true
	}
	if !m.disableScheduling {
		return m.entries
	}

	out := m.entries[:0:0]
	for _, e := range m.entries {
		if e.priority < PriorityCumulEmbeddedOpt {
			out = append(out, e)
		}
	}

	return out
}

// Accept evaluates every active filter in ascending priority order,
// short-circuiting on the first rejection or on the running objective
// sum alone exceeding objMax (spec.md §6's documented rationale for
// priority ordering: cheap filters first).
func (m *FilterManager) Accept(ps *pathstate.PathState, objMin, objMax int64) bool {
	var runningObj int64
	for _, e := range m.active() {
		ok, delta := e.filter.Check(ps, objMin, objMax)
		if m.debugChecks {
			m.log.Debug().Str("filter", e.name).Int("priority", int(e.priority)).
				Bool("ok", ok).Int64("delta", delta).Msg("filter check")
		}
		if !ok {
			return false
		}
		runningObj = saturate.CapAdd(runningObj, delta)
		if runningObj > objMax {
			if m.debugChecks {
				m.log.Debug().Int64("running", runningObj).Int64("objMax", objMax).
					Msg("running objective exceeds bound")
			}

			return false
		}
	}

	return true
}

// Synchronize commits every registered filter (regardless of
// disable_scheduling, since committed state must stay consistent for
// every filter even if a priority>=1 filter is skipped during Accept).
func (m *FilterManager) Synchronize(ps *pathstate.PathState) {
	for _, e := range m.entries {
		e.filter.Commit(ps)
	}
}

// Relax calls Relax on every registered filter that implements
// Relaxer, best effort (spec.md's Relax hook has no filter in this
// repository that needs per-round relaxation state yet).
func (m *FilterManager) Relax(ps *pathstate.PathState) {
	for _, e := range m.entries {
		if r, ok := e.filter.(Relaxer); ok {
			r.Relax(ps)
		}
	}
}
