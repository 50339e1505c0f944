// Package netlist reads and writes stream networks as YAML documents
// and keeps a live network in sync with one on disk.
//
// A document is the flat, id-linked form of a network: one entry per
// node carrying id, type, the downstream id it drains to, optional
// tributary ordering, flags, and an optional diagram position. Build
// turns a document into a live network.Network; Snapshot is the
// inverse. Neither direction needs to understand the ordering
// algorithms; the network package re-derives all numbering on rebuild.
//
// Loader wraps the file round-trip for interactive use: editors batch
// their id-level changes in the document and every save becomes one
// bulk rebuild. Watch hot-reloads on file change; each successful load
// gets a uuid-stamped Generation so callers can tell results apart.
//
// Key features:
//   - Decode, Encode, ReadFile, WriteFile: strict YAML codec (unknown
//     keys are rejected)
//   - Build: document conventions plus caller options into FromRecords
//   - Snapshot: live network back into a document
//   - Loader: initial load, Reload, Watch with OnChange callbacks
//
// Errors:
//
//	ErrNilDocument - Build or Encode got a nil document.
//	ErrNoNodes     - document carries no node entries.
//	ErrBadNodeType - a node entry names an unknown type.
//	ErrBadOrder    - the document names an unknown tributary order.
//
// Rebuild failures surface the network package's own errors unchanged,
// so errors.Is against network.ErrStructural keeps working.
package netlist
