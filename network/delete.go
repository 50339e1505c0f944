package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hydrograph/streamnet/metrics"
)

// flatLink is one node's adjacency externalized to id strings while the
// arena is rewired.
type flatLink struct {
	n    *Node
	down string
	up   []string
}

// Delete removes the node with the given id and splices its tributaries
// directly onto its old downstream neighbor. The combined sibling set is
// re-sorted by original serial and tributary numbers reassigned 1..k in
// that order. Serials above the deleted node's close down by one, as do
// in-reach positions behind it; the computational order is recomputed
// with one full walk. A reach left empty keeps its number vacant until
// the next Renumber or rebuild.
//
// Rewiring runs as an id round-trip: every node's adjacency is
// externalized to id strings, references to the deleted id are rewritten
// or dropped, and live references are then re-resolved by id. Several
// relationships change at once on a delete; the round-trip swaps them
// all together instead of patching pointers mid-walk.
//
// Deleting the End node is a no-op. An unknown id fails with
// ErrNodeNotFound.
// Complexity: O(N log N) from the sibling re-sort.
func (net *Network) Delete(id string) error {
	slot, ok := net.lookup(id)
	if !ok {
		return fmt.Errorf("network: delete %q: %w", id, ErrNodeNotFound)
	}
	del := net.arena[slot]
	if del.kind == NodeEnd {
		net.log.Debug("delete of end node ignored", "id", del.id)

		return nil
	}

	d := net.node(del.down)
	if d == nil {
		return fmt.Errorf("network: delete %q: no downstream neighbor: %w", del.id, ErrStructural)
	}

	endID := net.arena[net.head].id
	serial, reach, reachPos := del.serial, del.reach, del.reachPos

	// 1. Externalize adjacency to ids, rewriting around the deleted
	// node: its children re-home to d, and d's tributary list becomes
	// the combined sibling set in original-serial order.
	snap := make([]flatLink, 0, len(net.arena)-1)
	for _, n := range net.arena {
		if n == del {
			continue
		}
		f := flatLink{n: n}
		if dn := net.node(n.down); dn != nil {
			if dn == del {
				f.down = d.id
			} else {
				f.down = dn.id
			}
		}
		if n == d {
			f.up = net.combinedSiblingIDs(d, del)
		} else {
			for _, cSlot := range n.up {
				if c := net.arena[cSlot]; c != del {
					f.up = append(f.up, c.id)
				}
			}
		}
		snap = append(snap, f)
	}

	// 2. Compact the arena and rebuild the id index without the deleted
	// node.
	arena := make([]*Node, 0, len(snap))
	index := make(map[string]int, len(snap))
	for _, f := range snap {
		f.n.idx = len(arena)
		arena = append(arena, f.n)
		index[strings.ToLower(f.n.id)] = f.n.idx
	}
	net.arena, net.index = arena, index
	net.head = index[strings.ToLower(endID)]

	// 3. Re-resolve live references by id.
	for _, f := range snap {
		if f.down == "" {
			f.n.down = -1
		} else {
			target, found := index[strings.ToLower(f.down)]
			if !found {
				return fmt.Errorf("network: delete %q: downstream %q: %w", del.id, f.down, ErrUnresolvedID)
			}
			f.n.down = target
		}
		f.n.up = make([]int, 0, len(f.up))
		for _, cid := range f.up {
			target, found := index[strings.ToLower(cid)]
			if !found {
				return fmt.Errorf("network: delete %q: upstream %q: %w", del.id, cid, ErrUnresolvedID)
			}
			f.n.up = append(f.n.up, target)
		}
	}

	// 4. Close the numbering gaps.
	net.dropSerialsAbove(serial)
	net.closeReachSlot(reach, reachPos)
	for i, cSlot := range d.up {
		net.arena[cSlot].trib = i + 1
	}
	if err := net.renumberComputational(); err != nil {
		return err
	}

	metrics.NodeDeletes.Inc()
	metrics.NetworkNodes.Set(float64(net.Len()))
	net.log.Debug("deleted node",
		"id", del.id, "rehomed", len(del.up), "downstream", d.id)

	return nil
}

// combinedSiblingIDs builds d's post-delete tributary id list: d's
// children minus del, plus del's children, in original-serial order.
func (net *Network) combinedSiblingIDs(d, del *Node) []string {
	combined := make([]*Node, 0, len(d.up)+len(del.up))
	for _, cSlot := range d.up {
		if c := net.arena[cSlot]; c != del {
			combined = append(combined, c)
		}
	}
	for _, cSlot := range del.up {
		combined = append(combined, net.arena[cSlot])
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].serial < combined[j].serial
	})

	ids := make([]string, len(combined))
	for i, c := range combined {
		ids[i] = c.id
	}

	return ids
}
