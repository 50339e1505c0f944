package network

import (
	"fmt"
	"strings"

	"github.com/hydrograph/streamnet/metrics"
)

// positionNudge offsets a new node from its downstream anchor when no
// better geometry seed exists, so the two never plot on top of each
// other.
const positionNudge = 1e-3

// InsertOption configures a single Insert call.
type InsertOption func(*insertSpec)

type insertSpec struct {
	upstreamID string
	natural    bool
	imported   bool
	dry        bool
}

// WithUpstreamAnchor names an existing tributary of the downstream
// anchor; the new node is spliced between the two instead of opening a
// new branch.
func WithUpstreamAnchor(id string) InsertOption {
	return func(s *insertSpec) { s.upstreamID = id }
}

// WithNaturalFlow flags the new node as a natural-flow point.
func WithNaturalFlow() InsertOption {
	return func(s *insertSpec) { s.natural = true }
}

// WithImport flags the new node as importing water from outside the
// basin.
func WithImport() InsertOption {
	return func(s *insertSpec) { s.imported = true }
}

// WithDryRiver flags the new node as sitting on a dry river segment.
func WithDryRiver() InsertOption {
	return func(s *insertSpec) { s.dry = true }
}

// Insert creates a node and links it upstream of the node with id
// downstreamID. Without an upstream anchor the node opens a new branch:
// it continues the anchor's reach when the anchor was childless,
// otherwise it starts a fresh reach. With WithUpstreamAnchor the node is
// spliced into the existing branch between the two anchors and inherits
// the upstream anchor's tributary number and reach slot.
//
// The requested id is trimmed and, on a collision, suffixed "_<n>"; the
// returned node carries the assigned id. A missing anchor fails with
// ErrAnchorNotFound before anything is mutated; every new ordering value
// is computed up front, so a failed insert leaves the network untouched.
// Serial and reach bookkeeping shift incrementally; the computational
// order is recomputed with one full walk.
// Complexity: O(N)
func (net *Network) Insert(id string, kind NodeType, downstreamID string, opts ...InsertOption) (*Node, error) {
	var spec insertSpec
	for _, opt := range opts {
		opt(&spec)
	}

	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, ErrEmptyNodeID
	}
	if kind == NodeEnd {
		return nil, fmt.Errorf("network: insert %q: %w", trimmed, ErrDuplicateEndNode)
	}
	if kind == AnyNode {
		return nil, fmt.Errorf("network: insert %q: AnyNode is a query sentinel, not a node type", trimmed)
	}

	// 1. Resolve the anchors.
	dSlot, ok := net.lookup(downstreamID)
	if !ok {
		return nil, fmt.Errorf("network: insert %q: downstream anchor %q: %w",
			trimmed, downstreamID, ErrAnchorNotFound)
	}
	d := net.arena[dSlot]

	var u *Node
	uSlotInD := -1
	if spec.upstreamID != "" {
		uSlot, found := net.lookup(spec.upstreamID)
		if !found {
			return nil, fmt.Errorf("network: insert %q: upstream anchor %q: %w",
				trimmed, spec.upstreamID, ErrAnchorNotFound)
		}
		u = net.arena[uSlot]
		for i, slot := range d.up {
			if slot == u.idx {
				uSlotInD = i

				break
			}
		}
		if uSlotInD < 0 {
			return nil, fmt.Errorf("network: insert %q: %q is not a tributary of %q: %w",
				trimmed, u.id, d.id, ErrAnchorNotFound)
		}
	}

	// 2. Compute every new ordering value before mutating.
	var serialBase, reach, reachPos, trib int
	openSlot := false
	switch {
	case u != nil:
		serialBase = u.serial - 1
		reach, reachPos, trib = u.reach, u.reachPos, u.trib
		openSlot = true
	case len(d.up) == 0:
		serialBase = d.serial
		reach, reachPos, trib = d.reach, d.reachPos+1, 1
	default:
		serialBase = net.highestSerialAbove(d)
		reach, reachPos, trib = net.maxReachCounter()+1, 1, len(d.up)+1
	}
	pos, located := net.seedPosition(d, u)

	// 3. Mutate: create, link, renumber.
	n, err := net.NewNode(trimmed, kind)
	if err != nil {
		return nil, err
	}
	n.natural, n.imported, n.dry = spec.natural, spec.imported, spec.dry
	n.pos, n.located = pos, located

	if u != nil {
		d.up[uSlotInD] = n.idx
		n.up = append(n.up, u.idx)
		u.down = n.idx
		u.trib = 1
		n.down = d.idx
	} else {
		d.up = append(d.up, n.idx)
		n.down = d.idx
	}

	net.shiftSerialsAbove(serialBase)
	n.serial = serialBase + 1

	if openSlot {
		net.openReachSlot(reach, reachPos)
	}
	n.reach, n.reachPos, n.trib = reach, reachPos, trib

	if err := net.renumberComputational(); err != nil {
		return nil, err
	}

	metrics.NodeInserts.Inc()
	metrics.NetworkNodes.Set(float64(net.Len()))
	net.log.Debug("inserted node",
		"id", n.id, "type", kind.String(), "downstream", d.id,
		"serial", n.serial, "reach", n.reach)

	return n, nil
}

// seedPosition picks the geometry seed for a node joining upstream of d:
// the d-u midpoint when splicing between two located anchors, otherwise
// d's position extrapolated by d's delta to its own downstream neighbor,
// otherwise d's position nudged by an epsilon. Returns located=false
// when d itself has no position.
func (net *Network) seedPosition(d, u *Node) (Point, bool) {
	if u != nil && u.located && d.located {
		return d.pos.Add(u.pos.Sub(d.pos).Scale(0.5)), true
	}
	if !d.located {
		return Point{}, false
	}
	if dd := net.node(d.down); dd != nil && dd.located {
		return d.pos.Add(d.pos.Sub(dd.pos)), true
	}

	return d.pos.Add(Point{X: positionNudge, Y: positionNudge}), true
}
