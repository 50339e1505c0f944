package network

import "fmt"

// Downstream moves from n toward the End node under the given
// positioning semantics:
//
//   - PositionRelative: the immediate downstream neighbor, nil at End.
//   - PositionAbsolute: the End node itself.
//   - PositionReach: the first node (NodeInReachNumber 1) of n's reach.
//   - PositionComputational: the next node in computational order, nil
//     after End.
//
// Moves on a malformed topology fail with an ErrStructural member
// instead of looping; see ErrNoProgress and ErrCycle.
func (net *Network) Downstream(n *Node, pos Position) (*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	switch pos {
	case PositionRelative:
		return net.node(n.down), nil
	case PositionAbsolute:
		return net.absDownstream(n)
	case PositionReach:
		return net.reachDownstream(n)
	case PositionComputational:
		return net.compDownstream(n)
	default:
		return nil, fmt.Errorf("network: downstream of %q: unknown position %s", n.id, pos)
	}
}

// Upstream moves from n away from the End node under the given
// positioning semantics:
//
//   - PositionRelative: the convention-selected tributary, nil at a leaf.
//   - PositionAbsolute: the leaf reached by always descending into the
//     convention-selected tributary.
//   - PositionReach: the top node of n's reach; never crosses into a
//     joining branch.
//   - PositionComputational: the convention-selected tributary. The move
//     always advances into exactly one branch, it never fans out.
func (net *Network) Upstream(n *Node, pos Position) (*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	switch pos {
	case PositionRelative, PositionComputational:
		return net.conventionUpstream(n), nil
	case PositionAbsolute:
		return net.absUpstream(n)
	case PositionReach:
		return net.reachUpstream(n)
	default:
		return nil, fmt.Errorf("network: upstream of %q: unknown position %s", n.id, pos)
	}
}

// Nodes enumerates every node in computational order: it seeds the walk
// at the absolute-upstream extreme of the End node, then repeats
// computational-downstream moves until the End node closes the sequence.
// The walk doubles as an integrity check; a topology the walk cannot
// cover exactly once fails with an ErrStructural member.
// Complexity: O(N)
func (net *Network) Nodes() ([]*Node, error) {
	end := net.node(net.head)
	if end == nil {
		return nil, fmt.Errorf("network: enumerate: %w", ErrNoEndNode)
	}

	start, err := net.absUpstream(end)
	if err != nil {
		return nil, err
	}

	out := make([]*Node, 0, len(net.arena))
	for cur := start; cur != nil; {
		if len(out) >= len(net.arena) {
			return nil, fmt.Errorf("network: enumerate: %w", ErrCycle)
		}
		out = append(out, cur)

		next, err := net.compDownstream(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if len(out) != len(net.arena) {
		return nil, fmt.Errorf("network: enumerate visited %d of %d nodes: %w",
			len(out), len(net.arena), ErrUnreachableNode)
	}

	return out, nil
}

// conventionUpstream returns the tributary the pinned convention selects,
// or nil at a leaf.
func (net *Network) conventionUpstream(n *Node) *Node {
	if len(n.up) == 0 {
		return nil
	}
	if net.order == LastAdded {
		return net.node(n.up[len(n.up)-1])
	}

	return net.node(n.up[0])
}

// absDownstream follows downstream links all the way to the End node.
func (net *Network) absDownstream(n *Node) (*Node, error) {
	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: absolute downstream of %q: %w", n.id, ErrCycle)
		}
		next := net.node(cur.down)
		if next == nil {
			return cur, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links downstream to itself: %w", cur.id, ErrNoProgress)
		}
		cur = next
	}
}

// absUpstream descends into the convention-selected tributary until a
// leaf.
func (net *Network) absUpstream(n *Node) (*Node, error) {
	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: absolute upstream of %q: %w", n.id, ErrCycle)
		}
		next := net.conventionUpstream(cur)
		if next == nil {
			return cur, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links upstream to itself: %w", cur.id, ErrNoProgress)
		}
		cur = next
	}
}

// reachDownstream walks downstream while the reach counter matches,
// landing on the reach's first node. The move never leaves the reach.
func (net *Network) reachDownstream(n *Node) (*Node, error) {
	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: reach downstream of %q: %w", n.id, ErrCycle)
		}
		next := net.node(cur.down)
		if next == nil || next.reach != n.reach {
			return cur, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links downstream to itself: %w", cur.id, ErrNoProgress)
		}
		cur = next
	}
}

// reachUpstream climbs toward the top node of n's reach. Joining
// branches carry other reach counters and are never entered.
func (net *Network) reachUpstream(n *Node) (*Node, error) {
	cur := n
	for steps := 0; ; steps++ {
		if steps > len(net.arena) {
			return nil, fmt.Errorf("network: reach upstream of %q: %w", n.id, ErrCycle)
		}
		next := net.sameReachUpstream(cur)
		if next == nil {
			return cur, nil
		}
		if next == cur {
			return nil, fmt.Errorf("network: %q links upstream to itself: %w", cur.id, ErrNoProgress)
		}
		cur = next
	}
}

// sameReachUpstream returns the tributary of n that continues n's reach,
// or nil when the reach tops out at n.
func (net *Network) sameReachUpstream(n *Node) *Node {
	for _, slot := range net.processingOrder(n) {
		if m := net.node(slot); m != nil && m.reach == n.reach {
			return m
		}
	}

	return nil
}

// compDownstream advances one step along the computational order: when
// the downstream neighbor has no fan-in, or n is the last tributary the
// convention processes, the move lands on the neighbor; otherwise it
// jumps to the absolute-upstream extreme of the next sibling tributary,
// so each branch is walked fully before the confluence. Returns nil
// after the End node.
func (net *Network) compDownstream(n *Node) (*Node, error) {
	d := net.node(n.down)
	if d == nil {
		return nil, nil
	}
	if d == n {
		return nil, fmt.Errorf("network: %q links downstream to itself: %w", n.id, ErrNoProgress)
	}
	if len(d.up) <= 1 {
		return d, nil
	}

	order := net.processingOrder(d)
	at := -1
	for i, slot := range order {
		if net.arena[slot] == n {
			at = i

			break
		}
	}
	if at < 0 {
		return nil, fmt.Errorf("network: %q absent from upstream list of %q: %w",
			n.id, d.id, ErrNoProgress)
	}
	if at == len(order)-1 {
		return d, nil
	}

	return net.absUpstream(net.arena[order[at+1]])
}
