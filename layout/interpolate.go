package layout

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hydrograph/streamnet/metrics"
	"github.com/hydrograph/streamnet/network"
)

// Interpolate assigns a position to every unlocated node of net and
// returns the advisory trail. Pinned coordinates (overrides, point
// source, positions already stored) stay put; everything else is filled
// reach by reach: linear interpolation between anchors, extension past
// the anchored part by the nearest segment's step, and side reaches
// grown from their confluence by the confluence's own downstream delta.
// With bounds configured, a final pass nudges stray points back inside.
//
// The network is only mutated after validation and enumeration succeed,
// so a failed call leaves every position untouched.
// Complexity: O(N)
func Interpolate(net *network.Network, opts ...Option) (*Report, error) {
	// 1. Validate the handle and assemble the run configuration.
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2. Enumerate once; a malformed topology aborts before any mutation.
	nodes, err := net.Nodes()
	if err != nil {
		return nil, fmt.Errorf("layout: interpolate: %w", err)
	}

	ip := &interpolator{
		net:    net,
		cfg:    cfg,
		report: &Report{RunID: uuid.New().String()},
	}
	ip.log = cfg.log.With("run_id", ip.report.RunID)

	// 3. Pin coordinates from the overrides map and the point source.
	ip.applyAnchors(nodes)
	for _, n := range nodes {
		if _, ok := n.Position(); ok {
			ip.report.Anchored++
		}
	}

	// 4. Place the stem, then each side reach off its placed confluence.
	// Side reaches always carry a higher number than the reach they join,
	// so ascending order guarantees the confluence is located first.
	for reach := 1; reach <= net.ReachCount(); reach++ {
		seq := net.NodesInReach(reach)
		if len(seq) == 0 {
			continue // vacated by deletion
		}
		ip.placeReach(seq, ip.leadFor(seq[0]))
	}

	// 5. Nudge strays back inside the bounds rectangle.
	ip.clamp(nodes)

	ip.log.Info("layout complete",
		"nodes", len(nodes), "anchored", ip.report.Anchored,
		"placed", ip.report.Placed, "advisories", len(ip.report.Advisories))

	return ip.report, nil
}

// interpolator carries one Interpolate invocation's state.
type interpolator struct {
	net    *network.Network
	cfg    config
	log    *slog.Logger
	report *Report
}

// applyAnchors pins positions from the overrides map first, then asks
// the point source for every node the map did not name.
func (ip *interpolator) applyAnchors(nodes []*network.Node) {
	for id, p := range ip.cfg.overrides {
		n, err := ip.net.FindNode(id)
		if err != nil {
			ip.log.Warn("override names unknown node", "id", id)

			continue
		}
		n.SetPosition(p.X, p.Y)
	}
	if ip.cfg.source == nil {
		return
	}
	for _, n := range nodes {
		if _, pinned := ip.cfg.overrides[n.ID()]; pinned {
			continue
		}
		if p, ok := ip.cfg.source(n.ID()); ok {
			n.SetPosition(p.X, p.Y)
		}
	}
}

// lead is the placed confluence point a side reach grows from, with the
// step to use when the reach has no anchors of its own.
type lead struct {
	point network.Point
	step  network.Point
	ok    bool
}

// leadFor resolves the confluence anchor below a reach's bottom node.
// The stem's bottom is the End node and has no lead.
func (ip *interpolator) leadFor(bottom *network.Node) lead {
	d, err := ip.net.Downstream(bottom, network.PositionRelative)
	if err != nil || d == nil {
		return lead{}
	}
	dp, ok := d.Position()
	if !ok {
		return lead{}
	}

	ld := lead{point: dp, step: network.Point{X: ip.cfg.spacing}, ok: true}
	if dd, err := ip.net.Downstream(d, network.PositionRelative); err == nil && dd != nil {
		if ddp, located := dd.Position(); located {
			if delta := dp.Sub(ddp); delta != (network.Point{}) {
				ld.step = delta
			}
		}
	}

	return ld
}

// placeReach fills one reach, bottom first. Anchored nodes stay put;
// gaps between anchors interpolate linearly; runs beyond the anchored
// part extend by the nearest segment's per-node step.
func (ip *interpolator) placeReach(seq []*network.Node, ld lead) {
	anchors := make([]int, 0, len(seq))
	for i, n := range seq {
		if _, ok := n.Position(); ok {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) == 0 {
		ip.growFromLead(seq, ld)

		return
	}

	// pt reads an anchor coordinate; index -1 is the lead.
	pt := func(i int) network.Point {
		if i < 0 {
			return ld.point
		}
		p, _ := seq[i].Position()

		return p
	}
	if ld.ok {
		anchors = append([]int{-1}, anchors...)
	}

	if len(anchors) == 1 {
		// One anchor and no direction to derive: march both ways with the
		// default step.
		a := anchors[0]
		step := network.Point{X: ip.cfg.spacing}
		for k := a - 1; k >= 0; k-- {
			ip.place(seq[k], pt(a).Add(step.Scale(float64(k-a))), KindExtrapolated, "")
		}
		for k := a + 1; k < len(seq); k++ {
			ip.place(seq[k], pt(a).Add(step.Scale(float64(k-a))), KindExtrapolated, "")
		}

		return
	}

	// 1. Fill the gaps between consecutive anchors.
	for s := 0; s+1 < len(anchors); s++ {
		i, j := anchors[s], anchors[s+1]
		step := pt(j).Sub(pt(i)).Scale(1 / float64(j-i))
		for k := i + 1; k < j; k++ {
			ip.place(seq[k], pt(i).Add(step.Scale(float64(k-i))), KindInterpolated, "")
		}
	}

	// 2. Extend the unanchored head and tail by the nearest segment's
	// step, so both ends leave the anchored part at its own angle.
	first, second := anchors[0], anchors[1]
	headStep := pt(second).Sub(pt(first)).Scale(1 / float64(second-first))
	for k := first - 1; k >= 0; k-- {
		ip.place(seq[k], pt(first).Add(headStep.Scale(float64(k-first))), KindExtrapolated, "")
	}
	last, prev := anchors[len(anchors)-1], anchors[len(anchors)-2]
	tailStep := pt(last).Sub(pt(prev)).Scale(1 / float64(last-prev))
	for k := last + 1; k < len(seq); k++ {
		ip.place(seq[k], pt(last).Add(tailStep.Scale(float64(k-last))), KindExtrapolated, "")
	}
}

// growFromLead places a fully unanchored reach. Side reaches march
// upstream from the confluence by its delta; a stem with no anchors at
// all seeds its bottom at the origin first.
func (ip *interpolator) growFromLead(seq []*network.Node, ld lead) {
	if !ld.ok {
		ip.place(seq[0], network.Point{}, KindExtrapolated, "no anchors; seeded at origin")
		ld = lead{point: network.Point{}, step: network.Point{X: ip.cfg.spacing}, ok: true}
		seq = seq[1:]
	}
	for k, n := range seq {
		ip.place(n, ld.point.Add(ld.step.Scale(float64(k+1))), KindExtrapolated, "")
	}
}

// place assigns p to n and records the advisory trail.
func (ip *interpolator) place(n *network.Node, p network.Point, kind Kind, detail string) {
	n.SetPosition(p.X, p.Y)
	ip.report.Placed++
	ip.report.Advisories = append(ip.report.Advisories, Advisory{
		NodeID: n.ID(), Kind: kind, Point: p, Detail: detail,
	})
	metrics.LayoutCorrections.WithLabelValues(string(kind)).Inc()
	ip.log.Debug("node placed", "id", n.ID(), "kind", string(kind), "x", p.X, "y", p.Y)
}
