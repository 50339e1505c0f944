package layout

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hydrograph/streamnet/network"
)

var (
	// ErrNilNetwork indicates Interpolate was handed a nil network.
	ErrNilNetwork = errors.New("layout: nil network")

	// ErrBadSpacing indicates WithDefaultSpacing got a non-positive step.
	ErrBadSpacing = errors.New("layout: default spacing must be positive")

	// ErrBadMargin indicates WithMarginFrac got a fraction outside [0, 0.5).
	ErrBadMargin = errors.New("layout: margin fraction must be in [0, 0.5)")

	// ErrBadBounds indicates WithBounds got a rectangle with no area.
	ErrBadBounds = errors.New("layout: bounds rectangle has no area")
)

const (
	// defaultSpacing is the per-step distance used when a sequence has no
	// anchored segment to derive a step from.
	defaultSpacing = 10.0

	// defaultMarginFrac is the clamp inset as a fraction of each bounds
	// extent.
	defaultMarginFrac = 0.05
)

// PointSource resolves a node id to a coordinate, reporting ok=false
// when it has nothing for that id. The geo-lookup layer plugs in here.
type PointSource func(id string) (network.Point, bool)

// Rect is an axis-aligned drawing rectangle.
type Rect struct {
	Min, Max network.Point
}

// Option configures one Interpolate run.
type Option func(*config)

type config struct {
	overrides  map[string]network.Point
	source     PointSource
	bounds     *Rect
	marginFrac float64
	spacing    float64
	log        *slog.Logger
}

func defaultConfig() config {
	return config{
		marginFrac: defaultMarginFrac,
		spacing:    defaultSpacing,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (c *config) validate() error {
	if c.spacing <= 0 {
		return ErrBadSpacing
	}
	if c.marginFrac < 0 || c.marginFrac >= 0.5 {
		return ErrBadMargin
	}
	if c.bounds != nil && (c.bounds.Max.X <= c.bounds.Min.X || c.bounds.Max.Y <= c.bounds.Min.Y) {
		return ErrBadBounds
	}

	return nil
}

// WithOverrides pins coordinates by node id before any gap filling.
// Overrides win over both stored positions and the point source; an id
// that matches no node is logged and skipped.
func WithOverrides(points map[string]network.Point) Option {
	return func(c *config) { c.overrides = points }
}

// WithPointSource consults fn for every node the overrides map did not
// pin. Stored positions are replaced when fn reports a coordinate.
func WithPointSource(fn PointSource) Option {
	return func(c *config) { c.source = fn }
}

// WithBounds clamps final positions into the given rectangle.
func WithBounds(bounds Rect) Option {
	return func(c *config) { c.bounds = &bounds }
}

// WithMarginFrac sets the clamp inset as a fraction of each bounds
// extent. Default 0.05.
func WithMarginFrac(frac float64) Option {
	return func(c *config) { c.marginFrac = frac }
}

// WithDefaultSpacing sets the per-step distance used when no anchored
// segment exists to derive a step from. Default 10.
func WithDefaultSpacing(spacing float64) Option {
	return func(c *config) { c.spacing = spacing }
}

// WithLogger routes placement advisories to l. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
