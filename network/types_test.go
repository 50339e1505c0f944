package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrograph/streamnet/network"
)

// TestParseNodeType_CanonicalRoundTrip feeds every canonical spelling
// back through the parser.
func TestParseNodeType_CanonicalRoundTrip(t *testing.T) {
	kinds := []network.NodeType{
		network.NodeBlank, network.NodeDiversion, network.NodeDiversionAndWell,
		network.NodeWell, network.NodeStreamflow, network.NodeConfluence,
		network.NodeXConfluence, network.NodeInstreamFlow, network.NodeReservoir,
		network.NodeImport, network.NodeBaseflow, network.NodeEnd,
		network.NodeOther, network.NodeUnknown, network.NodeStreamTop,
		network.NodeLabel, network.NodeFormula, network.NodePlan,
	}
	for _, kind := range kinds {
		got, err := network.ParseNodeType(kind.String())
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind, got, kind.String())
	}
}

// TestParseNodeType_Aliases covers the historical spellings legacy data
// sets carry, plus case and whitespace folding.
func TestParseNodeType_Aliases(t *testing.T) {
	cases := []struct {
		in   string
		want network.NodeType
	}{
		{"Stream", network.NodeStreamTop},
		{"stream", network.NodeStreamTop},
		{"Diversion+Well", network.NodeDiversionAndWell},
		{"diversionwell", network.NodeDiversionAndWell},
		{"  reservoir  ", network.NodeReservoir},
		{"STREAMFLOW", network.NodeStreamflow},
		{"any", network.AnyNode},
	}
	for _, tc := range cases {
		got, err := network.ParseNodeType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseNodeType_Unknown(t *testing.T) {
	_, err := network.ParseNodeType("Aqueduct")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Aqueduct")
}

func TestNodeType_Decorative(t *testing.T) {
	decorative := []network.NodeType{
		network.NodeBlank, network.NodeConfluence, network.NodeXConfluence,
		network.NodeLabel, network.NodeStreamTop, network.NodeFormula,
	}
	for _, kind := range decorative {
		assert.True(t, kind.Decorative(), kind.String())
	}
	for _, kind := range []network.NodeType{
		network.NodeDiversion, network.NodeStreamflow, network.NodeReservoir,
		network.NodeEnd, network.NodeWell,
	} {
		assert.False(t, kind.Decorative(), kind.String())
	}
}

func TestParseTributaryOrder(t *testing.T) {
	for _, in := range []string{"", "first-added", "FirstAdded", "first"} {
		got, err := network.ParseTributaryOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, network.FirstAdded, got, in)
	}
	for _, in := range []string{"last-added", "LASTADDED", " last "} {
		got, err := network.ParseTributaryOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, network.LastAdded, got, in)
	}

	_, err := network.ParseTributaryOrder("middle-out")
	require.Error(t, err)

	assert.Equal(t, "first-added", network.FirstAdded.String())
	assert.Equal(t, "last-added", network.LastAdded.String())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "relative", network.PositionRelative.String())
	assert.Equal(t, "absolute", network.PositionAbsolute.String())
	assert.Equal(t, "reach", network.PositionReach.String())
	assert.Equal(t, "computational", network.PositionComputational.String())
}

func TestPoint_Arithmetic(t *testing.T) {
	p := network.Point{X: 3, Y: -1}
	assert.Equal(t, network.Point{X: 5, Y: 1}, p.Add(network.Point{X: 2, Y: 2}))
	assert.Equal(t, network.Point{X: 1, Y: -3}, p.Sub(network.Point{X: 2, Y: 2}))
	assert.Equal(t, network.Point{X: 6, Y: -2}, p.Scale(2))
}
