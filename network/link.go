package network

import "fmt"

// Low-level linking primitives. These rewire adjacency only: they do not
// renumber, and they do not guard against states that a later walk will
// reject (a node linked to itself, a detached subtree). Insert and Delete
// are the safe editing surface; batched raw edits must be followed by
// Renumber before the ordering metadata is read again.

// Upstreams returns n's tributaries in the order they joined the
// network. The slice is a copy.
func (net *Network) Upstreams(n *Node) ([]*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}

	out := make([]*Node, len(n.up))
	for i, slot := range n.up {
		out[i] = net.arena[slot]
	}

	return out, nil
}

// UpstreamAt returns n's i-th tributary (0-based, insertion order).
// An index outside [0, UpstreamCount) fails with ErrNodeNotFound.
func (net *Network) UpstreamAt(n *Node, i int) (*Node, error) {
	if err := net.checkMember(n); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.up) {
		return nil, fmt.Errorf("network: upstream %d of %q (have %d): %w",
			i, n.id, len(n.up), ErrNodeNotFound)
	}

	return net.arena[n.up[i]], nil
}

// AddUpstream appends child to parent's tributary list and, as a side
// effect, points child's downstream reference at parent. Any previous
// downstream link of child is left as-is; the caller owns consistency.
func (net *Network) AddUpstream(parent, child *Node) error {
	if err := net.checkMember(parent); err != nil {
		return err
	}
	if err := net.checkMember(child); err != nil {
		return err
	}

	parent.up = append(parent.up, child.idx)
	child.down = parent.idx

	return nil
}

// SpliceDownstream inserts n between at and at's old downstream
// neighbor: at's downstream becomes n, n's downstream becomes the old
// neighbor, and the old neighbor's tributary entry for at is re-homed to
// n. at joins n's tributary list.
func (net *Network) SpliceDownstream(at, n *Node) error {
	if err := net.checkMember(at); err != nil {
		return err
	}
	if err := net.checkMember(n); err != nil {
		return err
	}

	old := net.node(at.down)
	n.down = at.down
	if old != nil {
		rehomed := false
		for i, slot := range old.up {
			if slot == at.idx {
				old.up[i] = n.idx
				rehomed = true

				break
			}
		}
		if !rehomed {
			old.up = append(old.up, n.idx)
		}
	}
	at.down = n.idx
	n.up = append(n.up, at.idx)

	return nil
}
