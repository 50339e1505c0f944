package layout

import "github.com/hydrograph/streamnet/network"

// Kind names how a node's position was produced or corrected.
type Kind string

const (
	// KindInterpolated marks a point filled between two anchors.
	KindInterpolated Kind = "interpolated"

	// KindExtrapolated marks a point projected beyond the anchored part
	// of its reach, including side reaches grown from their confluence.
	KindExtrapolated Kind = "extrapolated"

	// KindClamped marks a point nudged back inside the bounds rectangle.
	KindClamped Kind = "clamped"
)

// Advisory records one assigned or corrected position. Advisories are
// diagnostic only; they accompany a successful run and never block it.
type Advisory struct {
	// NodeID is the affected node.
	NodeID string

	// Kind names what happened to the point.
	Kind Kind

	// Point is the position after the action.
	Point network.Point

	// Detail is a human-readable note, such as the pre-clamp coordinate.
	Detail string
}

// Report summarizes one Interpolate run.
type Report struct {
	// RunID correlates the report with log lines from the same run.
	RunID string

	// Anchored counts nodes that already had a position once overrides
	// and the point source were applied.
	Anchored int

	// Placed counts nodes the run assigned a position to.
	Placed int

	// Advisories lists every assigned or corrected position, in the
	// order the run produced them.
	Advisories []Advisory
}
