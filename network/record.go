package network

// Record is one node in flat, id-linked form: the shape serialization
// layers move around without understanding the ordering algorithms.
// FromRecords turns a record set back into a live Network; Export is the
// inverse.
type Record struct {
	// ID is the node id, unique case-insensitively within a set.
	ID string

	// Type is the node type. Exactly one record per set carries NodeEnd.
	Type NodeType

	// DownstreamID names the node this one drains to. Empty only on the
	// End node's record.
	DownstreamID string

	// UpstreamIDs lists the tributaries in joined order. The list may be
	// empty or partial on input; membership is derived from the
	// DownstreamID links and this list only pins the ordering.
	UpstreamIDs []string

	// Flags, independent of Type.
	NaturalFlow bool
	Import      bool
	DryRiver    bool

	// Diagram position, meaningful only when Located is true.
	X, Y    float64
	Located bool
}

// Export enumerates the network in computational order as flat records.
// The walk doubles as an integrity check, so a malformed topology fails
// with an ErrStructural member instead of producing a partial set.
// Complexity: O(N)
func (net *Network) Export() ([]Record, error) {
	nodes, err := net.Nodes()
	if err != nil {
		return nil, err
	}

	out := make([]Record, len(nodes))
	for i, n := range nodes {
		rec := Record{
			ID:          n.id,
			Type:        n.kind,
			NaturalFlow: n.natural,
			Import:      n.imported,
			DryRiver:    n.dry,
			Located:     n.located,
		}
		if n.located {
			rec.X, rec.Y = n.pos.X, n.pos.Y
		}
		if d := net.node(n.down); d != nil {
			rec.DownstreamID = d.id
		}
		if len(n.up) > 0 {
			rec.UpstreamIDs = make([]string, len(n.up))
			for j, slot := range n.up {
				rec.UpstreamIDs[j] = net.arena[slot].id
			}
		}
		out[i] = rec
	}

	return out, nil
}
