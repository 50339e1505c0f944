package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrograph/streamnet/network"
)

// assertConsistent checks the cross-scheme ordering guarantees that every
// editing operation must leave intact: serials and computational orders
// are each a contiguous 1..N bijection, both decrease respectively
// increase toward the outlet, adjacency is mutual, tributary numbers
// mirror upstream-list positions, and in-reach positions are contiguous.
func assertConsistent(t *testing.T, net *network.Network) {
	t.Helper()

	nodes, err := net.Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, net.Len())

	serials := make(map[int]string, len(nodes))
	for i, n := range nodes {
		assert.Equal(t, i+1, n.ComputationalOrder(), "computational order of %s", n.ID())
		if prev, dup := serials[n.Serial()]; dup {
			t.Fatalf("serial %d held by both %s and %s", n.Serial(), prev, n.ID())
		}
		serials[n.Serial()] = n.ID()
	}
	for s := 1; s <= len(nodes); s++ {
		require.Contains(t, serials, s, "serials must cover 1..%d", len(nodes))
	}
	assert.Equal(t, 1, net.EndNode().Serial())

	for _, n := range nodes {
		d, err := net.Downstream(n, network.PositionRelative)
		require.NoError(t, err)
		if n.IsEnd() {
			assert.Nil(t, d)

			continue
		}
		require.NotNil(t, d, "%s must drain somewhere", n.ID())
		sibs, err := net.Upstreams(d)
		require.NoError(t, err)
		assert.Contains(t, ids(sibs), n.ID(), "%s must appear upstream of %s", n.ID(), d.ID())
		assert.Less(t, d.Serial(), n.Serial(), "serials decrease toward the outlet")
		assert.Greater(t, d.ComputationalOrder(), n.ComputationalOrder(),
			"computational order increases toward the outlet")
	}

	for _, n := range nodes {
		up, err := net.Upstreams(n)
		require.NoError(t, err)
		for i, u := range up {
			back, err := net.Downstream(u, network.PositionRelative)
			require.NoError(t, err)
			require.NotNil(t, back)
			assert.Equal(t, n.ID(), back.ID(), "tributary %s must drain back to %s", u.ID(), n.ID())
			assert.Equal(t, i+1, u.TributaryNumber(), "tributary number of %s", u.ID())
		}
	}

	for r := 1; r <= net.ReachCount(); r++ {
		for i, n := range net.NodesInReach(r) {
			assert.Equal(t, i+1, n.NodeInReachNumber(), "position of %s in reach %d", n.ID(), r)
		}
	}
}

func TestChainWalk_VisitsEveryNodeOnce(t *testing.T) {
	net := buildChain(t, "A", "B", "C", "D", "E")

	nodes, err := net.Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 6)

	seen := map[string]bool{}
	steps := 0
	for cur := nodes[0]; cur != nil; {
		require.False(t, seen[cur.ID()], "node %s visited twice", cur.ID())
		seen[cur.ID()] = true
		next, err := net.Downstream(cur, network.PositionAbsolute)
		require.NoError(t, err)
		if next != nil {
			steps++
		}
		cur = next
	}

	assert.Equal(t, net.Len()-1, steps)
	assert.Len(t, seen, net.Len())
}

func TestEditStorm_KeepsOrderingConsistent(t *testing.T) {
	net := network.New()
	assertConsistent(t, net)

	mustInsert(t, net, "A", "END")
	assertConsistent(t, net)
	mustInsert(t, net, "B", "A")
	assertConsistent(t, net)
	mustInsert(t, net, "C", "A")
	assertConsistent(t, net)
	mustInsert(t, net, "D", "B")
	assertConsistent(t, net)
	mustInsert(t, net, "E", "C")
	assertConsistent(t, net)
	mustInsert(t, net, "F", "A", network.WithUpstreamAnchor("C"))
	assertConsistent(t, net)

	require.NoError(t, net.Delete("B"))
	assertConsistent(t, net)
	mustInsert(t, net, "G", "D")
	assertConsistent(t, net)
	require.NoError(t, net.Delete("E"))
	assertConsistent(t, net)
	require.NoError(t, net.Delete("F"))
	assertConsistent(t, net)

	require.NoError(t, net.Renumber())
	assertConsistent(t, net)

	require.NoError(t, net.Delete("A"))
	assertConsistent(t, net)
	require.NoError(t, net.Renumber())
	assertConsistent(t, net)
}

func TestEditStorm_RebuildMatchesLiveNetwork(t *testing.T) {
	net := network.New(network.WithTributaryOrder(network.LastAdded))
	mustInsert(t, net, "A", "END")
	mustInsert(t, net, "B", "A")
	mustInsert(t, net, "C", "A")
	mustInsert(t, net, "D", "C")
	require.NoError(t, net.Delete("B"))
	require.NoError(t, net.Renumber())

	exported, err := net.Export()
	require.NoError(t, err)
	rebuilt, err := network.FromRecords(exported, network.WithTributaryOrder(network.LastAdded))
	require.NoError(t, err)
	assertConsistent(t, rebuilt)

	reExported, err := rebuilt.Export()
	require.NoError(t, err)
	assert.Equal(t, exported, reExported)
}
