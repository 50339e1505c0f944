package layout

import (
	"fmt"

	"github.com/hydrograph/streamnet/metrics"
	"github.com/hydrograph/streamnet/network"
)

// clamp nudges out-of-bounds points back inside the rectangle, inset by
// the margin fraction of each extent. Points inside the rectangle stay
// untouched, margin band included.
func (ip *interpolator) clamp(nodes []*network.Node) {
	b := ip.cfg.bounds
	if b == nil {
		return
	}
	mx := (b.Max.X - b.Min.X) * ip.cfg.marginFrac
	my := (b.Max.Y - b.Min.Y) * ip.cfg.marginFrac

	for _, n := range nodes {
		p, ok := n.Position()
		if !ok {
			continue
		}
		q := p
		switch {
		case q.X < b.Min.X:
			q.X = b.Min.X + mx
		case q.X > b.Max.X:
			q.X = b.Max.X - mx
		}
		switch {
		case q.Y < b.Min.Y:
			q.Y = b.Min.Y + my
		case q.Y > b.Max.Y:
			q.Y = b.Max.Y - my
		}
		if q == p {
			continue
		}

		n.SetPosition(q.X, q.Y)
		detail := fmt.Sprintf("moved from (%g, %g)", p.X, p.Y)
		ip.report.Advisories = append(ip.report.Advisories, Advisory{
			NodeID: n.ID(), Kind: KindClamped, Point: q, Detail: detail,
		})
		metrics.LayoutCorrections.WithLabelValues(string(KindClamped)).Inc()
		ip.log.Warn("position clamped into bounds",
			"id", n.ID(), "x", q.X, "y", q.Y, "detail", detail)
	}
}
