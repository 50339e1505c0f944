// Package layout places the nodes of a stream network on a diagram
// plane. Networks usually arrive partially located: gauges carry survey
// coordinates, structure nodes often carry nothing. Interpolate fills
// the gaps so every node ends up with a plottable position.
//
// Placement runs in reach order. The main stem interpolates linearly
// between consecutive anchored nodes and extends its unanchored head and
// tail by the nearest anchored segment's step. Each side reach grows
// from its confluence using the confluence's own delta to the next node
// downstream, so tributaries leave the stem at the angle the stem
// already follows. An optional bounds pass nudges stray points back
// inside the drawable rectangle by a margin.
//
// Key features:
//   - Interpolate: one-shot placement over a live network.Network
//   - WithOverrides, WithPointSource: pin coordinates from a geo lookup
//     before any gap filling (the injection point for survey data)
//   - WithBounds, WithMarginFrac: clamp results into a drawing rectangle
//   - Report: per-run correlation id plus an Advisory per assigned or
//     corrected point, so callers can render guessed positions differently
//
// Complexity: O(N) over the node count; every node is visited once per
// pass (overrides, placement, clamp).
//
// Errors:
//
//	ErrNilNetwork - Interpolate was handed a nil network.
//	ErrBadSpacing - WithDefaultSpacing got a non-positive step.
//	ErrBadMargin  - WithMarginFrac got a fraction outside [0, 0.5).
//	ErrBadBounds  - WithBounds got a rectangle with no area.
package layout
