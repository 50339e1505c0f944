// Package network models the topology of a branching stream and canal
// network: hydrologic nodes (gauges, diversions, reservoirs, wells,
// confluences) linked as a tree that drains to a single End node.
//
// The package keeps several numbering schemes mutually consistent across
// every edit: a serial number that strictly decreases toward the End node,
// a computational order that fixes the linear visitation sequence used by
// simulation tooling, and reach bookkeeping (reach counter, position in
// reach, tributary number) that names each unbranched run of nodes.
//
// Key features:
//   - Network: arena-backed node store with a single End node and an
//     explicit first-added/last-added tributary ordering convention
//   - Traversal: Downstream/Upstream in four positioning modes
//     (PositionRelative, PositionAbsolute, PositionReach, PositionComputational)
//   - Insert, Delete: in-place edits that keep serial, computational order,
//     and reach bookkeeping dense and consistent
//   - FromRecords, Export: bulk reconstruction from flat id-linked records
//     and the matching flat enumeration for serialization layers
//   - Queries: FindNode, NodesOfType, natural-flow discovery along and
//     across reaches
//
// Complexity:
//
//   - Traversal steps: O(1) for relative moves, O(N) for absolute and
//     computational walks (N = node count).
//   - Insert/Delete/FromRecords: O(N); every edit renumbers the
//     computational order with one full walk.
//
// Errors:
//
//	ErrStructural       - class: malformed topology, never silently recovered.
//	ErrNotFound         - class: referenced id or anchor absent.
//	ErrNoProgress       - a walk stalled on a node that links to itself.
//	ErrCycle            - a downstream walk exceeded the node count.
//	ErrUnresolvedID     - a record names an id that resolves to no node.
//	ErrDuplicateID      - two records claim the same id.
//	ErrNoEndNode        - record set has no End node.
//	ErrDuplicateEndNode - more than one End node.
//	ErrNodeNotFound     - lookup by id failed.
//	ErrAnchorNotFound   - insert anchor absent or not upstream of its mate.
//
// Each listed error wraps one of the two classes, so errors.Is with
// ErrStructural or ErrNotFound classifies without string matching.
// Argument mistakes (ErrNilNode, ErrEmptyNodeID, ErrForeignNode,
// ErrNoRecords) are plain sentinels outside both classes.
package network
