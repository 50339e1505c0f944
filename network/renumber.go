package network

import (
	"fmt"

	"github.com/hydrograph/streamnet/metrics"
)

// Renumber recomputes every ordering scheme from the topology alone:
// reach counters and in-reach positions by a depth-first assignment from
// the End node, tributary numbers from upstream-list positions, then one
// computational walk assigning computational order 1..N and serial N..1
// in lockstep. Editors that batch raw link edits (AddUpstream,
// SpliceDownstream) must call Renumber before reading ordering metadata
// again; Insert, Delete, and FromRecords call it internally as needed.
// Complexity: O(N)
func (net *Network) Renumber() error {
	if err := net.renumberAll(); err != nil {
		metrics.StructuralErrors.Inc()

		return err
	}

	return nil
}

// renumberAll is Renumber without the metrics side effect; FromRecords
// runs it directly and classifies failures once at its own exit.
func (net *Network) renumberAll() error {
	if err := net.assignReaches(); err != nil {
		return err
	}
	net.assignTribs()

	nodes, err := net.Nodes()
	if err != nil {
		return err
	}
	total := len(nodes)
	for i, n := range nodes {
		n.comp = i + 1
		n.serial = total - i
	}

	return nil
}

// assignReaches numbers every reach and every node's position within its
// reach. Reach 1 starts at the End node; at each fan-in the
// convention-selected tributary continues the current reach and the
// remaining tributaries become new reaches, numbered highest-so-far + 1
// in depth-first discovery order. The walk along a reach is iterative
// and branches go through an explicit stack, so depth is bounded by the
// branch count, not the node count.
func (net *Network) assignReaches() error {
	end := net.node(net.head)
	if end == nil {
		return fmt.Errorf("network: assign reaches: %w", ErrNoEndNode)
	}

	visited := 0
	reach := 0
	stack := []int{end.idx} // reach bottoms awaiting their number
	for len(stack) > 0 {
		bottom := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reach++

		pos := 1
		for idx := bottom; idx >= 0; {
			n := net.arena[idx]
			n.reach = reach
			n.reachPos = pos
			pos++

			visited++
			if visited > len(net.arena) {
				return fmt.Errorf("network: assign reaches: %w", ErrCycle)
			}

			order := net.processingOrder(n)
			if len(order) == 0 {
				break
			}
			// Later tributaries are pushed first so the stack pops them
			// in processing order.
			for i := len(order) - 1; i >= 1; i-- {
				stack = append(stack, order[i])
			}
			idx = order[0]
		}
	}

	if visited != len(net.arena) {
		return fmt.Errorf("network: assign reaches visited %d of %d nodes: %w",
			visited, len(net.arena), ErrUnreachableNode)
	}

	return nil
}

// assignTribs derives every tributary number from upstream-list
// position. The End node ranks 1 by convention.
func (net *Network) assignTribs() {
	if end := net.node(net.head); end != nil {
		end.trib = 1
	}
	for _, n := range net.arena {
		for i, slot := range n.up {
			if child := net.node(slot); child != nil {
				child.trib = i + 1
			}
		}
	}
}

// renumberComputational reassigns computational order 1..N with one
// walk, leaving serials untouched. Insert and Delete use it after their
// incremental serial arithmetic.
func (net *Network) renumberComputational() error {
	nodes, err := net.Nodes()
	if err != nil {
		return err
	}
	for i, n := range nodes {
		n.comp = i + 1
	}

	return nil
}

// shiftSerialsAbove increments every serial strictly greater than base,
// freeing base+1 for a new node.
func (net *Network) shiftSerialsAbove(base int) {
	for _, n := range net.arena {
		if n.serial > base {
			n.serial++
		}
	}
}

// dropSerialsAbove decrements every serial strictly greater than s,
// closing the gap a deleted node left.
func (net *Network) dropSerialsAbove(s int) {
	for _, n := range net.arena {
		if n.serial > s {
			n.serial--
		}
	}
}

// openReachSlot shifts in-reach positions at or after pos up by one,
// making room at (reach, pos).
func (net *Network) openReachSlot(reach, pos int) {
	for _, n := range net.arena {
		if n.reach == reach && n.reachPos >= pos {
			n.reachPos++
		}
	}
}

// closeReachSlot shifts in-reach positions after pos down by one,
// closing the gap at (reach, pos).
func (net *Network) closeReachSlot(reach, pos int) {
	for _, n := range net.arena {
		if n.reach == reach && n.reachPos > pos {
			n.reachPos--
		}
	}
}

// maxReachCounter returns the highest reach number in use.
func (net *Network) maxReachCounter() int {
	top := 0
	for _, n := range net.arena {
		if n.reach > top {
			top = n.reach
		}
	}

	return top
}

// highestSerialAbove returns the highest serial among n and every node
// upstream of it. For a childless n this is n's own serial.
func (net *Network) highestSerialAbove(n *Node) int {
	best := n.serial
	stack := append([]int(nil), n.up...)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m := net.node(idx)
		if m == nil {
			continue
		}
		if m.serial > best {
			best = m.serial
		}
		stack = append(stack, m.up...)
	}

	return best
}
