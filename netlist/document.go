package netlist

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hydrograph/streamnet/network"
)

var (
	// ErrNilDocument indicates Build or Encode got a nil document.
	ErrNilDocument = errors.New("netlist: nil document")

	// ErrNoNodes indicates the document carries no node entries.
	ErrNoNodes = errors.New("netlist: document has no nodes")

	// ErrBadNodeType indicates a node entry names an unknown type.
	ErrBadNodeType = errors.New("netlist: unknown node type")

	// ErrBadOrder indicates the document names an unknown tributary order.
	ErrBadOrder = errors.New("netlist: unknown tributary order")
)

// Document is one network file: conventions plus the flat node list.
type Document struct {
	// Name labels the network; informational only.
	Name string `yaml:"name,omitempty"`

	// TributaryOrder is "first-added" (default) or "last-added".
	TributaryOrder string `yaml:"tributary_order,omitempty"`

	// DryAsNaturalFlow widens natural-flow queries to dry-river nodes.
	DryAsNaturalFlow bool `yaml:"dry_as_natural_flow,omitempty"`

	// Nodes lists every node. Exactly one entry must have type End.
	Nodes []NodeEntry `yaml:"nodes"`
}

// NodeEntry is one node row of a document.
type NodeEntry struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`

	// Downstream names the node this one drains to; empty only on the
	// End entry.
	Downstream string `yaml:"downstream,omitempty"`

	// Upstream optionally pins the joined order of this node's
	// tributaries. Membership always comes from the Downstream links.
	Upstream []string `yaml:"upstream,omitempty,flow"`

	NaturalFlow bool `yaml:"natural_flow,omitempty"`
	Import      bool `yaml:"import,omitempty"`
	DryRiver    bool `yaml:"dry_river,omitempty"`

	// X, Y place the node on the diagram plane. Both nil means
	// unlocated, which the layout package fills in.
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`
}

// Decode parses a document from r. Unknown keys are rejected, so typos
// in hand-edited files fail loudly instead of silently dropping data.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("netlist: decode: %w", err)
	}

	return &doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("netlist: encode: %w", err)
	}

	return enc.Close()
}

// ReadFile loads a document from path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netlist: read %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile stores doc at path, replacing any existing file.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netlist: write %s: %w", path, err)
	}

	if err := Encode(f, doc); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Build turns a document into a live network. The document's own
// conventions (tributary order, dry-as-natural-flow) apply first and
// caller options after, so callers can override the file.
// Rebuild validation is the network package's: exactly one End entry,
// unique ids, resolvable downstream links.
func Build(doc *Document, opts ...network.Option) (*network.Network, error) {
	records, docOpts, err := compile(doc)
	if err != nil {
		return nil, err
	}

	return network.FromRecords(records, append(docOpts, opts...)...)
}

// compile validates document-level fields and lowers entries to records.
func compile(doc *Document) ([]network.Record, []network.Option, error) {
	if doc == nil {
		return nil, nil, ErrNilDocument
	}
	if len(doc.Nodes) == 0 {
		return nil, nil, ErrNoNodes
	}

	var docOpts []network.Option
	if doc.TributaryOrder != "" {
		order, err := network.ParseTributaryOrder(doc.TributaryOrder)
		if err != nil {
			return nil, nil, fmt.Errorf("netlist: %q: %w", doc.TributaryOrder, ErrBadOrder)
		}
		docOpts = append(docOpts, network.WithTributaryOrder(order))
	}
	if doc.DryAsNaturalFlow {
		docOpts = append(docOpts, network.WithDryAsNaturalFlow())
	}

	records := make([]network.Record, len(doc.Nodes))
	for i, entry := range doc.Nodes {
		kind, err := network.ParseNodeType(entry.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("netlist: node %q: type %q: %w",
				entry.ID, entry.Type, ErrBadNodeType)
		}
		rec := network.Record{
			ID:           entry.ID,
			Type:         kind,
			DownstreamID: entry.Downstream,
			UpstreamIDs:  entry.Upstream,
			NaturalFlow:  entry.NaturalFlow,
			Import:       entry.Import,
			DryRiver:     entry.DryRiver,
		}
		if entry.X != nil && entry.Y != nil {
			rec.X, rec.Y = *entry.X, *entry.Y
			rec.Located = true
		}
		records[i] = rec
	}

	return records, docOpts, nil
}

// Snapshot captures a live network as a document named name. The node
// list comes out in computational order, ready to write back with
// WriteFile.
func Snapshot(net *network.Network, name string) (*Document, error) {
	records, err := net.Export()
	if err != nil {
		return nil, fmt.Errorf("netlist: snapshot: %w", err)
	}

	doc := &Document{
		Name:             name,
		TributaryOrder:   net.Order().String(),
		DryAsNaturalFlow: net.DryAsNaturalFlow(),
		Nodes:            make([]NodeEntry, len(records)),
	}
	for i, rec := range records {
		entry := NodeEntry{
			ID:          rec.ID,
			Type:        rec.Type.String(),
			Downstream:  rec.DownstreamID,
			Upstream:    rec.UpstreamIDs,
			NaturalFlow: rec.NaturalFlow,
			Import:      rec.Import,
			DryRiver:    rec.DryRiver,
		}
		if rec.Located {
			x, y := rec.X, rec.Y
			entry.X, entry.Y = &x, &y
		}
		doc.Nodes[i] = entry
	}

	return doc, nil
}
