package netconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrograph/streamnet/layout"
	"github.com/hydrograph/streamnet/netconf"
	"github.com/hydrograph/streamnet/network"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "streamnet.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := netconf.Default()

	assert.Equal(t, "first-added", cfg.Network.TributaryOrder)
	assert.Equal(t, "END", cfg.Network.EndID)
	assert.False(t, cfg.Network.DryAsNaturalFlow)
	assert.Equal(t, 10.0, cfg.Layout.DefaultSpacing)
	assert.Equal(t, 0.05, cfg.Layout.MarginFrac)
	assert.Nil(t, cfg.Layout.Bounds)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[network]
tributary_order = "last-added"
dry_as_natural_flow = true
end_id = "OUTLET"

[layout]
default_spacing = 25.0
margin_frac = 0.1

[layout.bounds]
min_x = 0.0
min_y = 0.0
max_x = 200.0
max_y = 100.0
`)

	cfg, err := netconf.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "last-added", cfg.Network.TributaryOrder)
	assert.True(t, cfg.Network.DryAsNaturalFlow)
	assert.Equal(t, "OUTLET", cfg.Network.EndID)
	assert.Equal(t, 25.0, cfg.Layout.DefaultSpacing)
	assert.Equal(t, 0.1, cfg.Layout.MarginFrac)
	require.NotNil(t, cfg.Layout.Bounds)
	assert.Equal(t, 200.0, cfg.Layout.Bounds.MaxX)
}

func TestLoad_OmittedKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
[network]
dry_as_natural_flow = true
`)

	cfg, err := netconf.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Network.DryAsNaturalFlow)
	assert.Equal(t, "first-added", cfg.Network.TributaryOrder)
	assert.Equal(t, 10.0, cfg.Layout.DefaultSpacing)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := netconf.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"order", "[network]\ntributary_order = \"middle-out\"\n"},
		{"spacing", "[layout]\ndefault_spacing = -1.0\n"},
		{"margin", "[layout]\nmargin_frac = 0.5\n"},
		{"bounds", "[layout.bounds]\nmin_x = 5.0\nmax_x = 5.0\nmin_y = 0.0\nmax_y = 1.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netconf.Load(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, netconf.ErrInvalidConfig)
		})
	}
}

func TestNetworkOptions(t *testing.T) {
	cfg := netconf.Default()
	cfg.Network.TributaryOrder = "last-added"
	cfg.Network.DryAsNaturalFlow = true
	cfg.Network.EndID = "OUTLET"

	net := network.New(cfg.NetworkOptions()...)

	assert.Equal(t, network.LastAdded, net.Order())
	assert.True(t, net.DryAsNaturalFlow())
	assert.Equal(t, "OUTLET", net.EndNode().ID())
}

func TestLayoutOptions(t *testing.T) {
	cfg := netconf.Default()
	cfg.Layout.DefaultSpacing = 2
	cfg.Layout.Bounds = &netconf.BoundsConfig{MaxX: 15, MaxY: 15}

	net := network.New()
	_, err := net.Insert("A", network.NodeStreamflow, "END")
	require.NoError(t, err)

	// Origin seed plus a two-unit step; bounds present but nothing to
	// clamp at this scale.
	rep, err := layout.Interpolate(net, cfg.LayoutOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Placed)

	a, err := net.FindNode("A")
	require.NoError(t, err)
	p, located := a.Position()
	require.True(t, located)
	assert.Equal(t, network.Point{X: 2, Y: 0}, p)
}
