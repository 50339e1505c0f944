// Package network: enums, option types, and small value types shared by
// the Network and its algorithms.
//
// This file declares NodeType, TributaryOrder, Position, NodeField, Point,
// and the Option constructors accepted by New and FromRecords.
package network

import (
	"fmt"
	"log/slog"
	"strings"
)

// NodeType identifies what a node represents on the stream network.
type NodeType uint8

// Node types. End is special: exactly one End node exists per network and
// it has no downstream neighbor. Baseflow is kept for legacy data sets.
const (
	NodeBlank NodeType = iota
	NodeDiversion
	NodeDiversionAndWell
	NodeWell
	NodeStreamflow
	NodeConfluence
	NodeXConfluence
	NodeInstreamFlow
	NodeReservoir
	NodeImport
	// NodeBaseflow marks a legacy baseflow point.
	//
	// Deprecated: modern data sets use NodeStreamflow with the natural-flow
	// flag set. Recognized on input for round-trip fidelity only.
	NodeBaseflow
	NodeEnd
	NodeOther
	NodeUnknown
	NodeStreamTop
	NodeLabel
	NodeFormula
	NodePlan
)

// AnyNode is a query sentinel for NodesOfType and FindNodeByField: it
// matches every node type except the decorative ones (Blank, Confluence,
// XConfluence, Label, StreamTop, Formula).
const AnyNode NodeType = 255

// nodeTypeNames maps each NodeType to its canonical spelling.
var nodeTypeNames = map[NodeType]string{
	NodeBlank:            "Blank",
	NodeDiversion:        "Diversion",
	NodeDiversionAndWell: "DiversionAndWell",
	NodeWell:             "Well",
	NodeStreamflow:       "Streamflow",
	NodeConfluence:       "Confluence",
	NodeXConfluence:      "XConfluence",
	NodeInstreamFlow:     "InstreamFlow",
	NodeReservoir:        "Reservoir",
	NodeImport:           "Import",
	NodeBaseflow:         "Baseflow",
	NodeEnd:              "End",
	NodeOther:            "Other",
	NodeUnknown:          "Unknown",
	NodeStreamTop:        "StreamTop",
	NodeLabel:            "Label",
	NodeFormula:          "Formula",
	NodePlan:             "Plan",
	AnyNode:              "Any",
}

// String returns the canonical spelling of t, or "NodeType(n)" for values
// outside the known set.
func (t NodeType) String() string {
	if s, ok := nodeTypeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("NodeType(%d)", uint8(t))
}

// Decorative reports whether t is a diagram-only type that carries no
// station data: Blank, Confluence, XConfluence, Label, StreamTop, Formula.
func (t NodeType) Decorative() bool {
	switch t {
	case NodeBlank, NodeConfluence, NodeXConfluence, NodeLabel, NodeStreamTop, NodeFormula:
		return true
	default:
		return false
	}
}

// ParseNodeType resolves a type name case-insensitively. It accepts the
// canonical spellings from String plus the historical aliases "Stream"
// (StreamTop) and "Diversion+Well" (DiversionAndWell).
func ParseNodeType(s string) (NodeType, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "stream":
		return NodeStreamTop, nil
	case "diversion+well", "diversionwell":
		return NodeDiversionAndWell, nil
	}
	for t, name := range nodeTypeNames {
		if strings.EqualFold(trimmed, name) {
			return t, nil
		}
	}

	return NodeUnknown, fmt.Errorf("network: unknown node type %q", s)
}

// TributaryOrder pins the convention for walking a node's upstream
// branches. It decides which branch an absolute-upstream walk descends
// into and the sequence the computational order visits sibling
// tributaries in. The convention is a property of the Network, set once
// at construction, and every traversal primitive follows it.
type TributaryOrder uint8

const (
	// FirstAdded walks tributaries in the order they joined the network.
	FirstAdded TributaryOrder = iota

	// LastAdded walks tributaries newest first.
	LastAdded
)

// String returns "first-added" or "last-added".
func (o TributaryOrder) String() string {
	if o == LastAdded {
		return "last-added"
	}

	return "first-added"
}

// ParseTributaryOrder resolves "first-added" or "last-added",
// case-insensitively.
func ParseTributaryOrder(s string) (TributaryOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-added", "firstadded", "first":
		return FirstAdded, nil
	case "last-added", "lastadded", "last":
		return LastAdded, nil
	}

	return FirstAdded, fmt.Errorf("network: unknown tributary order %q", s)
}

// Position selects the positioning semantics of a Downstream or Upstream
// move.
type Position uint8

const (
	// PositionRelative moves to the immediate neighbor, no search.
	PositionRelative Position = iota

	// PositionAbsolute follows links to a topological extreme: the End
	// node going downstream, or a leaf (per the tributary convention)
	// going upstream.
	PositionAbsolute

	// PositionReach stays inside the current reach: its first node going
	// downstream, its top node going upstream.
	PositionReach

	// PositionComputational steps along the canonical linear visitation
	// order used by simulation tooling.
	PositionComputational
)

// String names the positioning mode for logs and errors.
func (p Position) String() string {
	switch p {
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionReach:
		return "reach"
	case PositionComputational:
		return "computational"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// NodeField names a secondary node attribute for FindNodeByField.
// Only FieldID is defined today; the enum leaves room for future
// discriminators (water rights, station metadata) without changing the
// query signature.
type NodeField uint8

// FieldID matches against the node id.
const FieldID NodeField = iota

// Point is a node position on the diagram plane. Coordinates are in
// whatever unit the caller's layout uses; the package never interprets
// them beyond linear arithmetic.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Option configures a Network at construction time.
// Use with New(opts...) or FromRecords(records, opts...).
type Option func(*Network)

// WithTributaryOrder pins the upstream-branch walking convention.
// Default is FirstAdded.
func WithTributaryOrder(order TributaryOrder) Option {
	return func(n *Network) { n.order = order }
}

// WithDryAsNaturalFlow makes the natural-flow queries treat dry-river
// nodes as natural-flow points. Default is off.
func WithDryAsNaturalFlow() Option {
	return func(n *Network) { n.dryIsNatural = true }
}

// WithEndID sets the id of the End node a fresh Network is born with.
// Default is "END". FromRecords ignores this option because the End node
// comes from the record set.
func WithEndID(id string) Option {
	return func(n *Network) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			n.endID = trimmed
		}
	}
}

// WithLogger installs a structured logger for edit and rebuild
// diagnostics. Passing nil keeps the default silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}
