package network

// Node is one station, structure, or junction on the stream network.
//
// A Node is a pure data holder: its adjacency is stored as arena indices
// owned by the Network, so navigation happens through Network methods
// (Downstream, Upstream, Upstreams) rather than on the Node itself.
// Ordering metadata (serial, computational order, reach bookkeeping) is
// recomputed by Insert, Delete, FromRecords, and Renumber; callers never
// set it directly.
type Node struct {
	id   string
	kind NodeType

	// Flags, independent of kind.
	natural  bool
	imported bool
	dry      bool

	// Ordering metadata, maintained by the Network.
	serial   int
	comp     int
	reach    int
	reachPos int
	trib     int

	// Diagram position; located reports whether it has been set.
	pos     Point
	located bool

	// Adjacency as arena indices. down is -1 for the End node. up holds
	// tributaries in the order they joined the network.
	down int
	up   []int

	// idx is this node's own slot in the owning arena.
	idx int
}

// ID returns the node id. Ids are unique per network, compared
// case-insensitively.
func (n *Node) ID() string { return n.id }

// Type returns what the node represents.
func (n *Node) Type() NodeType { return n.kind }

// IsNaturalFlow reports whether the node is flagged as a natural-flow
// point.
func (n *Node) IsNaturalFlow() bool { return n.natural }

// IsImport reports whether the node brings in water from outside the
// basin.
func (n *Node) IsImport() bool { return n.imported }

// IsDryRiver reports whether the node sits on a dry river segment.
func (n *Node) IsDryRiver() bool { return n.dry }

// SetNaturalFlow sets the natural-flow flag.
func (n *Node) SetNaturalFlow(v bool) { n.natural = v }

// SetImport sets the import flag.
func (n *Node) SetImport(v bool) { n.imported = v }

// SetDryRiver sets the dry-river flag.
func (n *Node) SetDryRiver(v bool) { n.dry = v }

// Serial returns the serial number. Serials are a permutation of 1..N
// that strictly decreases along any downstream walk.
func (n *Node) Serial() int { return n.serial }

// ComputationalOrder returns the node's slot in the canonical linear
// visitation order, a permutation of 1..N.
func (n *Node) ComputationalOrder() int { return n.comp }

// ReachCounter returns the number of the reach this node belongs to.
// Reach 1 is the main stem.
func (n *Node) ReachCounter() int { return n.reach }

// NodeInReachNumber returns the node's 1-based position within its
// reach, counted from the downstream end.
func (n *Node) NodeInReachNumber() int { return n.reachPos }

// TributaryNumber returns the node's 1-based rank among the sibling
// branches joining its downstream neighbor.
func (n *Node) TributaryNumber() int { return n.trib }

// Position returns the diagram position and whether one has been set.
func (n *Node) Position() (Point, bool) { return n.pos, n.located }

// SetPosition places the node on the diagram plane.
func (n *Node) SetPosition(x, y float64) {
	n.pos = Point{X: x, Y: y}
	n.located = true
}

// ClearPosition marks the node as not located.
func (n *Node) ClearPosition() {
	n.pos = Point{}
	n.located = false
}

// UpstreamCount returns the number of tributaries joining at this node.
func (n *Node) UpstreamCount() int { return len(n.up) }

// IsEnd reports whether this is the network's End node.
func (n *Node) IsEnd() bool { return n.kind == NodeEnd }
