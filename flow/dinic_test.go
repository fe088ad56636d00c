package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathguard/flow"
)

// DinicSuite exercises the Network/MaxFlow implementation under the
// shapes ResourceGroupFilter actually builds: small bipartite networks
// with a single source and sink.
type DinicSuite struct {
	suite.Suite
}

// TestSingleEdge verifies that a single edge yields max flow equal to
// its capacity.
func (s *DinicSuite) TestSingleEdge() {
	n := flow.NewNetwork(2)
	require.NoError(s.T(), n.AddEdge(0, 1, 7))

	mf, err := n.MaxFlow(context.Background(), 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestMultiPath verifies max flow on two disjoint paths: A->B (5) and
// A->C->B (min(4,3)=3), for a total of 8.
func (s *DinicSuite) TestMultiPath() {
	const a, b, c = 0, 1, 2
	n := flow.NewNetwork(3)
	require.NoError(s.T(), n.AddEdge(a, b, 5))
	require.NoError(s.T(), n.AddEdge(a, c, 4))
	require.NoError(s.T(), n.AddEdge(c, b, 3))

	mf, err := n.MaxFlow(context.Background(), a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf)
}

// TestParallelEdgesAggregate checks that two parallel edges between the
// same pair sum their capacities.
func (s *DinicSuite) TestParallelEdgesAggregate() {
	n := flow.NewNetwork(2)
	require.NoError(s.T(), n.AddEdge(0, 1, 2))
	require.NoError(s.T(), n.AddEdge(0, 1, 5))

	mf, err := n.MaxFlow(context.Background(), 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestZeroCapacity ensures a zero-capacity edge yields zero flow.
func (s *DinicSuite) TestZeroCapacity() {
	n := flow.NewNetwork(2)
	require.NoError(s.T(), n.AddEdge(0, 1, 0))

	mf, err := n.MaxFlow(context.Background(), 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
}

// TestNegativeCapacityRejected ensures AddEdge rejects a negative
// capacity instead of silently building an unsound network.
func (s *DinicSuite) TestNegativeCapacityRejected() {
	n := flow.NewNetwork(2)
	err := n.AddEdge(0, 1, -1)
	require.Error(s.T(), err)

	var negErr flow.NegativeCapacityError
	require.ErrorAs(s.T(), err, &negErr)
}

// TestResourceGroupShape mirrors the exact bipartite network
// ResourceGroupFilter builds: source -> requests -> group -> sink,
// feasible iff max flow saturates every request.
func (s *DinicSuite) TestResourceGroupShape() {
	const source, sink = 0, 1
	const req0, req1, req2 = 2, 3, 4
	const group = 5

	n := flow.NewNetwork(6)
	require.NoError(s.T(), n.AddEdge(source, req0, 1))
	require.NoError(s.T(), n.AddEdge(source, req1, 1))
	require.NoError(s.T(), n.AddEdge(source, req2, 1))
	require.NoError(s.T(), n.AddEdge(req0, group, 1))
	require.NoError(s.T(), n.AddEdge(req1, group, 1))
	require.NoError(s.T(), n.AddEdge(req2, group, 1))
	require.NoError(s.T(), n.AddEdge(group, sink, 2)) // capacity 2 < 3 requests

	mf, err := n.MaxFlow(context.Background(), source, sink)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf, "group capacity of 2 cannot satisfy all 3 requests")
}

// TestSourceSinkOutOfRange covers missing source or sink vertex ids.
func (s *DinicSuite) TestSourceSinkOutOfRange() {
	n := flow.NewNetwork(2)
	require.NoError(s.T(), n.AddEdge(0, 1, 1))

	_, err1 := n.MaxFlow(context.Background(), 5, 1)
	require.True(s.T(), errors.Is(err1, flow.ErrSourceNotFound))

	_, err2 := n.MaxFlow(context.Background(), 0, -1)
	require.True(s.T(), errors.Is(err2, flow.ErrSinkNotFound))
}

// TestContextCancellation ensures a canceled context aborts MaxFlow on
// a network large enough to need more than one blocking-flow probe.
func (s *DinicSuite) TestContextCancellation() {
	const n = 200
	net := flow.NewNetwork(n)
	for i := 0; i < n-1; i++ {
		require.NoError(s.T(), net.AddEdge(i, i+1, 1))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()
	time.Sleep(1 * time.Millisecond)

	_, err := net.MaxFlow(ctx, 0, n-1)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, context.DeadlineExceeded))
}

// Entry point for running the suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
