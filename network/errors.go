package network

import (
	"errors"
	"fmt"
)

// Two error classes cover every failure mode: structural defects in the
// topology itself, and lookups that reference an absent id. Specific
// sentinels wrap their class, so callers can match either the precise
// condition or the whole class with errors.Is.
var (
	// ErrStructural classifies a malformed topology. Structural errors
	// are fatal to the operation that detects them and never silently
	// recovered.
	ErrStructural = errors.New("network: malformed topology")

	// ErrNotFound classifies a failed lookup of a node or anchor id.
	ErrNotFound = errors.New("network: not found")

	// ErrNoProgress indicates a walk stalled: the next node equals the
	// current one.
	ErrNoProgress = fmt.Errorf("traversal made no progress: %w", ErrStructural)

	// ErrCycle indicates a walk took more steps than the network has
	// nodes, which a tree cannot do.
	ErrCycle = fmt.Errorf("walk exceeded node count: %w", ErrStructural)

	// ErrUnresolvedID indicates a record references an id that resolves
	// to no node during bulk rebuild.
	ErrUnresolvedID = fmt.Errorf("unresolved node id: %w", ErrStructural)

	// ErrDuplicateID indicates two records claim the same id
	// (case-insensitively) during bulk rebuild.
	ErrDuplicateID = fmt.Errorf("duplicate node id: %w", ErrStructural)

	// ErrNoEndNode indicates a record set contains no End node.
	ErrNoEndNode = fmt.Errorf("no end node: %w", ErrStructural)

	// ErrDuplicateEndNode indicates a second End node, by record or by
	// insert.
	ErrDuplicateEndNode = fmt.Errorf("multiple end nodes: %w", ErrStructural)

	// ErrUnreachableNode indicates a node that no upstream walk from the
	// End node can reach.
	ErrUnreachableNode = fmt.Errorf("node unreachable from end: %w", ErrStructural)

	// ErrNodeNotFound indicates a lookup by id matched nothing.
	ErrNodeNotFound = fmt.Errorf("node not found: %w", ErrNotFound)

	// ErrAnchorNotFound indicates an insert anchor id matched nothing,
	// or the upstream anchor is not among the downstream anchor's
	// tributaries.
	ErrAnchorNotFound = fmt.Errorf("anchor not found: %w", ErrNotFound)
)

// Argument errors. These are plain sentinels, not members of a class.
var (
	// ErrEmptyNodeID indicates an empty or all-blank node id.
	ErrEmptyNodeID = errors.New("network: node id is empty")

	// ErrNilNode indicates a nil *Node argument.
	ErrNilNode = errors.New("network: node is nil")

	// ErrForeignNode indicates a *Node that belongs to a different
	// Network than the receiver.
	ErrForeignNode = errors.New("network: node belongs to a different network")

	// ErrNoRecords indicates FromRecords was handed an empty record set.
	ErrNoRecords = errors.New("network: no records")
)
