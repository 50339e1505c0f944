package network

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/hydrograph/streamnet/metrics"
)

// FromRecords builds a Network from an unordered flat record set.
//
// Validation is strict: exactly one End record, unique non-blank ids,
// and every DownstreamID resolving to a record in the set. Tributary
// membership is derived from the DownstreamID links; a record's
// UpstreamIDs list, when present, pins the joined order of its
// tributaries (unlisted tributaries follow in record order). After
// linking, reach bookkeeping is assigned depth-first from the End node
// and one computational walk numbers serial N..1 against computational
// order 1..N, so a record set that was exported from a live network
// reproduces that network's numbering exactly.
//
// An unresolved id is fatal (ErrUnresolvedID); there is no partial
// rebuild.
// Complexity: O(N + E) over records and upstream references.
func FromRecords(records []Record, opts ...Option) (*Network, error) {
	start := time.Now()

	net, err := buildFromRecords(records, opts...)
	if err != nil {
		if errors.Is(err, ErrStructural) {
			metrics.StructuralErrors.Inc()
		}

		return nil, err
	}

	metrics.Rebuilds.Inc()
	metrics.RebuildSeconds.Observe(time.Since(start).Seconds())
	metrics.NetworkNodes.Set(float64(net.Len()))
	net.log.Info("network rebuilt",
		"nodes", net.Len(), "reaches", net.maxReachCounter(), "order", net.order.String())

	return net, nil
}

func buildFromRecords(records []Record, opts ...Option) (*Network, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	net := &Network{
		index: make(map[string]int, len(records)),
		head:  -1,
		endID: defaultEndID,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(net)
	}

	// 1. Validate ids and the End node count, then create the arena.
	endSlot := -1
	for i, rec := range records {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			return nil, fmt.Errorf("network: rebuild: record %d: %w", i, ErrEmptyNodeID)
		}
		if rec.Type == AnyNode {
			return nil, fmt.Errorf("network: rebuild: record %q: AnyNode is a query sentinel, not a node type: %w",
				id, ErrStructural)
		}
		if _, taken := net.index[strings.ToLower(id)]; taken {
			return nil, fmt.Errorf("network: rebuild: record %q: %w", id, ErrDuplicateID)
		}

		n := net.newNode(id, rec.Type)
		n.natural, n.imported, n.dry = rec.NaturalFlow, rec.Import, rec.DryRiver
		if rec.Located {
			n.pos = Point{X: rec.X, Y: rec.Y}
			n.located = true
		}

		if rec.Type == NodeEnd {
			if endSlot >= 0 {
				return nil, fmt.Errorf("network: rebuild: records %q and %q: %w",
					net.arena[endSlot].id, id, ErrDuplicateEndNode)
			}
			endSlot = n.idx
		}
	}
	if endSlot < 0 {
		return nil, fmt.Errorf("network: rebuild: %w", ErrNoEndNode)
	}
	net.head = endSlot

	// 2. Resolve downstream links and derive tributary membership.
	for i, rec := range records {
		n := net.arena[i]
		down := strings.TrimSpace(rec.DownstreamID)
		if n.kind == NodeEnd {
			if down != "" {
				return nil, fmt.Errorf("network: rebuild: end node %q drains to %q: %w",
					n.id, down, ErrStructural)
			}

			continue
		}
		if down == "" {
			return nil, fmt.Errorf("network: rebuild: record %q has no downstream id: %w",
				n.id, ErrUnresolvedID)
		}
		target, ok := net.lookup(down)
		if !ok {
			return nil, fmt.Errorf("network: rebuild: record %q drains to unknown %q: %w",
				n.id, down, ErrUnresolvedID)
		}
		n.down = target
		net.arena[target].up = append(net.arena[target].up, n.idx)
	}

	// 3. Where a record pins its tributary order, reorder the derived
	// list to match; unlisted tributaries keep record order behind the
	// listed ones.
	for _, rec := range records {
		if len(rec.UpstreamIDs) == 0 {
			continue
		}
		slot, _ := net.lookup(rec.ID)
		if err := net.reorderTributaries(net.arena[slot], rec.UpstreamIDs); err != nil {
			return nil, err
		}
	}

	// 4. Number everything from the topology.
	if err := net.renumberAll(); err != nil {
		return nil, err
	}

	return net, nil
}

// reorderTributaries rearranges n.up to open with the named ids in the
// given order. Every named id must resolve to an actual tributary of n.
func (net *Network) reorderTributaries(n *Node, ids []string) error {
	ordered := make([]int, 0, len(n.up))
	seen := make(map[int]bool, len(n.up))
	for _, id := range ids {
		slot, ok := net.lookup(id)
		if !ok {
			return fmt.Errorf("network: rebuild: record %q lists unknown tributary %q: %w",
				n.id, id, ErrUnresolvedID)
		}
		c := net.arena[slot]
		if c.down != n.idx {
			return fmt.Errorf("network: rebuild: record %q lists %q upstream, but %q drains elsewhere: %w",
				n.id, id, c.id, ErrStructural)
		}
		if seen[slot] {
			return fmt.Errorf("network: rebuild: record %q lists tributary %q twice: %w",
				n.id, id, ErrStructural)
		}
		seen[slot] = true
		ordered = append(ordered, slot)
	}
	for _, slot := range n.up {
		if !seen[slot] {
			ordered = append(ordered, slot)
		}
	}
	n.up = ordered

	return nil
}
