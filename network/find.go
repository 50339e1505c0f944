package network

import (
	"fmt"
	"sort"
	"strings"
)

// FindNode returns the node with the given id, matched
// case-insensitively. Ids are unique, so the first match is the only
// one. Fails with ErrNodeNotFound when nothing matches.
// Complexity: O(1)
func (net *Network) FindNode(id string) (*Node, error) {
	slot, ok := net.lookup(id)
	if !ok {
		return nil, fmt.Errorf("network: find %q: %w", id, ErrNodeNotFound)
	}

	return net.arena[slot], nil
}

// FindNodeByField scans nodes of the given type in computational order
// and returns the first whose field matches value, case-insensitively.
// AnyNode matches every non-decorative type. Only FieldID is defined
// today; the field parameter leaves the query open to future node
// attributes.
// Complexity: O(N log N)
func (net *Network) FindNodeByField(kind NodeType, field NodeField, value string) (*Node, error) {
	if field != FieldID {
		return nil, fmt.Errorf("network: find by field: unknown field %d", field)
	}

	for _, n := range net.sortedByComp() {
		if !matchType(n, kind) {
			continue
		}
		if strings.EqualFold(n.id, strings.TrimSpace(value)) {
			return n, nil
		}
	}

	return nil, fmt.Errorf("network: find %s %q: %w", kind, value, ErrNodeNotFound)
}

// NodesOfType collects nodes of the given type in computational order.
// AnyNode collects every non-decorative node.
// Complexity: O(N log N)
func (net *Network) NodesOfType(kind NodeType) []*Node {
	var out []*Node
	for _, n := range net.sortedByComp() {
		if matchType(n, kind) {
			out = append(out, n)
		}
	}

	return out
}

// ReachCount returns the highest reach number in use. Reaches vacated
// by deletion stay counted until the next Renumber or rebuild.
func (net *Network) ReachCount() int {
	return net.maxReachCounter()
}

// NodesInReach returns the nodes of one reach ordered by their in-reach
// position, downstream end first. The result is empty for a vacated or
// unknown reach number.
func (net *Network) NodesInReach(reach int) []*Node {
	var out []*Node
	for _, n := range net.arena {
		if n.reach == reach {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].reachPos < out[j].reachPos })

	return out
}

// matchType applies the AnyNode sentinel semantics.
func matchType(n *Node, kind NodeType) bool {
	if kind == AnyNode {
		return !n.kind.Decorative()
	}

	return n.kind == kind
}

// sortedByComp returns the arena ordered by stored computational order.
// Queries use it instead of a live walk, so they stay cheap and safe
// even while an editor holds the topology mid-repair.
func (net *Network) sortedByComp() []*Node {
	out := make([]*Node, len(net.arena))
	copy(out, net.arena)
	sort.Slice(out, func(i, j int) bool { return out[i].comp < out[j].comp })

	return out
}
