package netlist_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrograph/streamnet/netlist"
	"github.com/hydrograph/streamnet/network"
)

// writeBasin stores the four-node fixture document at path and returns
// the document for later modification.
func writeBasin(t *testing.T, path string) *netlist.Document {
	t.Helper()

	doc := decodeBasin(t)
	require.NoError(t, netlist.WriteFile(path, doc))

	return doc
}

func TestNewLoader_InitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	writeBasin(t, path)

	ld, err := netlist.NewLoader(path)
	require.NoError(t, err)

	assert.Equal(t, 4, ld.Network().Len())
	assert.Equal(t, "upper-basin", ld.Document().Name)
	gen := ld.Generation()
	assert.Equal(t, uint64(1), gen.Seq)
	assert.NotEmpty(t, gen.ID)
	assert.False(t, gen.Loaded.IsZero())
}

func TestNewLoader_MissingFile(t *testing.T) {
	_, err := netlist.NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewLoader_NetworkOptionsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	writeBasin(t, path) // document says last-added

	ld, err := netlist.NewLoader(path,
		netlist.WithNetworkOptions(network.WithTributaryOrder(network.FirstAdded)))
	require.NoError(t, err)
	assert.Equal(t, network.FirstAdded, ld.Network().Order())
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	doc := writeBasin(t, path)

	ld, err := netlist.NewLoader(path)
	require.NoError(t, err)

	var calls atomic.Int32
	var gotGen netlist.Generation
	ld.OnChange(func(gen netlist.Generation, net *network.Network) {
		calls.Add(1)
		gotGen = gen
		assert.Equal(t, 5, net.Len())
	})

	doc.Nodes = append(doc.Nodes, netlist.NodeEntry{
		ID: "D", Type: "Well", Downstream: "C",
	})
	require.NoError(t, netlist.WriteFile(path, doc))

	net, err := ld.Reload()
	require.NoError(t, err)
	assert.Equal(t, 5, net.Len())
	assert.Same(t, net, ld.Network())
	assert.Equal(t, uint64(2), ld.Generation().Seq)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, uint64(2), gotGen.Seq)
}

func TestLoader_ReloadFailureKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	writeBasin(t, path)

	ld, err := netlist.NewLoader(path)
	require.NoError(t, err)
	before := ld.Network()

	// Unparseable save: the old network keeps serving.
	require.NoError(t, os.WriteFile(path, []byte("nodes: ["), 0o644))
	_, err = ld.Reload()
	assert.Error(t, err)
	assert.Same(t, before, ld.Network())
	assert.Equal(t, uint64(1), ld.Generation().Seq)

	// Parseable but structurally invalid save: same outcome, and the
	// network package's classification survives the loader.
	require.NoError(t, os.WriteFile(path, []byte(`
nodes:
  - id: A
    type: Streamflow
    downstream: A
`), 0o644))
	_, err = ld.Reload()
	assert.ErrorIs(t, err, network.ErrNoEndNode)
	assert.Same(t, before, ld.Network())
}

func TestLoader_WatchRebuildsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	doc := writeBasin(t, path)

	ld, err := netlist.NewLoader(path)
	require.NoError(t, err)

	stop, err := ld.Watch()
	require.NoError(t, err)
	defer stop()

	doc.Nodes = append(doc.Nodes, netlist.NodeEntry{
		ID: "D", Type: "Reservoir", Downstream: "B",
	})
	require.NoError(t, netlist.WriteFile(path, doc))

	require.Eventually(t, func() bool {
		return ld.Generation().Seq >= 2 && ld.Network().Len() == 5
	}, 2*time.Second, 20*time.Millisecond, "watcher should rebuild after the save")
}
