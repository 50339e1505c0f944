package netconf

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hydrograph/streamnet/layout"
	"github.com/hydrograph/streamnet/network"
)

// ErrInvalidConfig classifies every validation failure; errors.Is
// against it matches regardless of which field was bad.
var ErrInvalidConfig = errors.New("netconf: invalid configuration")

// Config is the top-level settings file.
type Config struct {
	Network NetworkConfig `toml:"network"`
	Layout  LayoutConfig  `toml:"layout"`
}

// NetworkConfig sets the conventions networks are built under.
type NetworkConfig struct {
	// TributaryOrder is "first-added" or "last-added".
	TributaryOrder string `toml:"tributary_order"`

	// DryAsNaturalFlow widens natural-flow queries to dry-river nodes.
	DryAsNaturalFlow bool `toml:"dry_as_natural_flow"`

	// EndID names the End node a fresh network is seeded with.
	EndID string `toml:"end_id"`
}

// LayoutConfig sets diagram placement parameters.
type LayoutConfig struct {
	// DefaultSpacing is the per-step distance used where no anchored
	// segment exists.
	DefaultSpacing float64 `toml:"default_spacing"`

	// MarginFrac is the bounds-clamp inset as a fraction of each extent.
	MarginFrac float64 `toml:"margin_frac"`

	// Bounds, when present, clamps placements into a rectangle.
	Bounds *BoundsConfig `toml:"bounds"`
}

// BoundsConfig is the drawing rectangle.
type BoundsConfig struct {
	MinX float64 `toml:"min_x"`
	MinY float64 `toml:"min_y"`
	MaxX float64 `toml:"max_x"`
	MaxY float64 `toml:"max_y"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			TributaryOrder: network.FirstAdded.String(),
			EndID:          "END",
		},
		Layout: LayoutConfig{
			DefaultSpacing: 10,
			MarginFrac:     0.05,
		},
	}
}

// Load reads path over the defaults and validates the result. Keys the
// file omits keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("netconf: load %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("netconf: load %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its package's constraints.
func (c Config) Validate() error {
	if _, err := network.ParseTributaryOrder(c.Network.TributaryOrder); err != nil {
		return fmt.Errorf("tributary_order %q: %w", c.Network.TributaryOrder, ErrInvalidConfig)
	}
	if c.Layout.DefaultSpacing <= 0 {
		return fmt.Errorf("default_spacing %g: %w", c.Layout.DefaultSpacing, ErrInvalidConfig)
	}
	if c.Layout.MarginFrac < 0 || c.Layout.MarginFrac >= 0.5 {
		return fmt.Errorf("margin_frac %g: %w", c.Layout.MarginFrac, ErrInvalidConfig)
	}
	if b := c.Layout.Bounds; b != nil && (b.MaxX <= b.MinX || b.MaxY <= b.MinY) {
		return fmt.Errorf("bounds (%g,%g)-(%g,%g): %w",
			b.MinX, b.MinY, b.MaxX, b.MaxY, ErrInvalidConfig)
	}

	return nil
}

// NetworkOptions lowers the network section to constructor options.
func (c Config) NetworkOptions() []network.Option {
	order, _ := network.ParseTributaryOrder(c.Network.TributaryOrder)
	opts := []network.Option{network.WithTributaryOrder(order)}
	if c.Network.DryAsNaturalFlow {
		opts = append(opts, network.WithDryAsNaturalFlow())
	}
	if c.Network.EndID != "" {
		opts = append(opts, network.WithEndID(c.Network.EndID))
	}

	return opts
}

// LayoutOptions lowers the layout section to Interpolate options.
func (c Config) LayoutOptions() []layout.Option {
	opts := []layout.Option{
		layout.WithDefaultSpacing(c.Layout.DefaultSpacing),
		layout.WithMarginFrac(c.Layout.MarginFrac),
	}
	if b := c.Layout.Bounds; b != nil {
		opts = append(opts, layout.WithBounds(layout.Rect{
			Min: network.Point{X: b.MinX, Y: b.MinY},
			Max: network.Point{X: b.MaxX, Y: b.MaxY},
		}))
	}

	return opts
}
