package network

import "fmt"

// Natural-flow discovery. Simulation tooling needs, for any structure,
// the nearest station whose flow is natural rather than regulated; these
// queries walk the topology for it. The network-level
// WithDryAsNaturalFlow toggle widens the match to dry-river nodes.

// isFlowPoint reports whether n counts as a natural-flow point under
// the network's toggle.
func (net *Network) isFlowPoint(n *Node) bool {
	return n.natural || (net.dryIsNatural && n.dry)
}

// NaturalFlowNodes collects every natural-flow point in computational
// order.
func (net *Network) NaturalFlowNodes() []*Node {
	var out []*Node
	for _, n := range net.sortedByComp() {
		if net.isFlowPoint(n) {
			out = append(out, n)
		}
	}

	return out
}

// DownstreamFlowNode walks downstream, crossing reach boundaries, and
// returns the nearest natural-flow point strictly below n. Returns nil
// when the walk reaches the End node first.
func (net *Network) DownstreamFlowNode(n *Node) (*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: downstream flow from %q: %w", n.id, ErrCycle)
		}
		next := net.node(cur.down)
		if next == nil {
			return nil, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links downstream to itself: %w", cur.id, ErrNoProgress)
		}
		if net.isFlowPoint(next) {
			return next, nil
		}
		cur = next
	}
}

// UpstreamNaturalFlowNodeInReach climbs n's own reach and returns the
// nearest natural-flow point strictly above n. The climb never crosses
// a reach boundary; it returns nil when the reach tops out first.
func (net *Network) UpstreamNaturalFlowNodeInReach(n *Node) (*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: upstream flow in reach of %q: %w", n.id, ErrCycle)
		}
		next := net.sameReachUpstream(cur)
		if next == nil {
			return nil, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links upstream to itself: %w", cur.id, ErrNoProgress)
		}
		if net.isFlowPoint(next) {
			return next, nil
		}
		cur = next
	}
}

// UpstreamFlowNodes returns the nearest natural-flow point per
// tributary above n, in the network's tributary processing order. Each
// branch is climbed until a flow point; a fan-in met on the way recurses
// into its own tributaries, so one result arrives per terminal branch
// that has a flow point at all. Recursion depth is bounded by the branch
// nesting, not the node count.
func (net *Network) UpstreamFlowNodes(n *Node) ([]*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	return net.collectUpstreamFlow(n, 0)
}

func (net *Network) collectUpstreamFlow(n *Node, depth int) ([]*Node, error) {
	if depth > len(net.arena) {
		return nil, fmt.Errorf("network: upstream flow from %q: %w", n.id, ErrCycle)
	}

	var out []*Node
	for _, slot := range net.processingOrder(n) {
		cur := net.node(slot)
		for steps := 0; cur != nil; steps++ {
			if steps > len(net.arena) {
				return nil, fmt.Errorf("network: upstream flow from %q: %w", n.id, ErrCycle)
			}
			if net.isFlowPoint(cur) {
				out = append(out, cur)

				break
			}
			if len(cur.up) > 1 {
				sub, err := net.collectUpstreamFlow(cur, depth+1)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)

				break
			}
			cur = net.conventionUpstream(cur)
		}
	}

	return out, nil
}
