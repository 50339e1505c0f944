package network

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hydrograph/streamnet/metrics"
)

// defaultEndID names the End node a fresh Network is born with.
const defaultEndID = "END"

// Network is the arena-backed store for one stream network.
//
// Adjacency between nodes is kept as arena indices, so reconnecting the
// graph (deletion, bulk rebuild) works by rewriting id references and
// re-resolving them instead of patching live pointers. The Network owns
// reachability: every node is reachable by upstream walks from the single
// End node.
//
// A Network is not safe for concurrent mutation; it follows the
// one-mutator-at-a-time model of the editing tools it serves.
type Network struct {
	arena []*Node
	index map[string]int // lower-cased id -> arena slot

	head int // arena slot of the End node, -1 when empty

	order        TributaryOrder
	dryIsNatural bool
	endID        string
	log          *slog.Logger
}

// New creates a Network holding only its End node. The End node's id
// defaults to "END"; see WithEndID. Options pin the tributary ordering
// convention and the dry-river toggle for the network's lifetime.
// Complexity: O(1)
func New(opts ...Option) *Network {
	net := &Network{
		index: make(map[string]int),
		head:  -1,
		endID: defaultEndID,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(net)
	}

	end := net.newNode(net.endID, NodeEnd)
	end.serial = 1
	end.comp = 1
	end.reach = 1
	end.reachPos = 1
	end.trib = 1
	net.head = end.idx

	return net
}

// Len returns the number of nodes in the network.
func (net *Network) Len() int { return len(net.arena) }

// EndNode returns the network's End node.
func (net *Network) EndNode() *Node {
	return net.node(net.head)
}

// Order returns the tributary ordering convention pinned at
// construction.
func (net *Network) Order() TributaryOrder { return net.order }

// DryAsNaturalFlow reports whether natural-flow queries treat dry-river
// nodes as natural-flow points.
func (net *Network) DryAsNaturalFlow() bool { return net.dryIsNatural }

// NewNode creates an unlinked node and registers it in the arena. The id
// is trimmed and, on a case-insensitive collision, disambiguated with a
// "_<n>" suffix; the returned node carries the id actually assigned.
// The node joins the topology only once linked (AddUpstream,
// SpliceDownstream, Insert).
//
// Creating a second End node is refused with ErrDuplicateEndNode.
func (net *Network) NewNode(id string, kind NodeType) (*Node, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, ErrEmptyNodeID
	}
	if kind == NodeEnd && net.head >= 0 {
		return nil, fmt.Errorf("network: new node %q: %w", trimmed, ErrDuplicateEndNode)
	}

	assigned := net.disambiguate(trimmed)
	if assigned != trimmed {
		metrics.DuplicateIDs.Inc()
		net.log.Warn("node id already taken, suffixed",
			"requested", trimmed, "assigned", assigned)
	}

	return net.newNode(assigned, kind), nil
}

// node returns the arena entry at slot i, or nil when i is -1 or out of
// range.
func (net *Network) node(i int) *Node {
	if i < 0 || i >= len(net.arena) {
		return nil
	}

	return net.arena[i]
}

// owns reports whether n is a live member of this network's arena.
func (net *Network) owns(n *Node) bool {
	return n != nil && n.idx >= 0 && n.idx < len(net.arena) && net.arena[n.idx] == n
}

// checkMember validates a *Node argument before navigation or mutation.
func (net *Network) checkMember(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if !net.owns(n) {
		return fmt.Errorf("network: node %q: %w", n.id, ErrForeignNode)
	}

	return nil
}

// newNode appends a fresh unlinked node to the arena and indexes its id.
// The caller guarantees the id is non-empty and free.
func (net *Network) newNode(id string, kind NodeType) *Node {
	n := &Node{
		id:   id,
		kind: kind,
		down: -1,
		idx:  len(net.arena),
	}
	net.arena = append(net.arena, n)
	net.index[strings.ToLower(id)] = n.idx

	return n
}

// disambiguate returns id itself when free, otherwise the first free
// "id_<n>" starting from n=1. Comparison is case-insensitive.
func (net *Network) disambiguate(id string) string {
	if _, taken := net.index[strings.ToLower(id)]; !taken {
		return id
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", id, i)
		if _, taken := net.index[strings.ToLower(candidate)]; !taken {
			return candidate
		}
	}
}

// lookup resolves an id to its arena slot, case-insensitively.
func (net *Network) lookup(id string) (int, bool) {
	i, ok := net.index[strings.ToLower(strings.TrimSpace(id))]

	return i, ok
}

// processingOrder returns n's tributary slots in the order the pinned
// convention walks them: as stored for FirstAdded, reversed for
// LastAdded. The slice is a copy.
func (net *Network) processingOrder(n *Node) []int {
	out := make([]int, len(n.up))
	if net.order == LastAdded {
		for i, v := range n.up {
			out[len(n.up)-1-i] = v
		}

		return out
	}
	copy(out, n.up)

	return out
}
