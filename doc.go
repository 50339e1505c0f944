// Package streamnet models branching stream and canal networks for
// water-resources planning: the node-link topology, the ordering
// schemes simulation models consume, and the file and diagram plumbing
// around them.
//
// What streamnet covers:
//
//   - Topology: hydrologic nodes (gauges, diversions, reservoirs,
//     wells, confluences) linked as a tree draining to one End node
//   - Orderings: serial, computational order, reach bookkeeping and
//     tributary numbers, kept mutually consistent across every edit
//   - Editing: insert and delete with incremental renumbering, plus a
//     full rebuild from flat id-linked records
//   - Discovery: nearest natural-flow station along, across, and up the
//     branches of a network
//   - Exchange: YAML network documents with a hot-reloading file loader
//   - Diagrams: position interpolation for partially surveyed networks
//
// Everything is organized under five subpackages:
//
//	network/ — the topology core: Node, Network, traversal, editing,
//	           rebuild, queries
//	layout/  — diagram placement: interpolation, extrapolation, bounds
//	netlist/ — YAML document codec and the file-watching Loader
//	netconf/ — the TOML settings file planning tools share
//	metrics/ — Prometheus collectors the other packages report into
//
// Quick ASCII example:
//
//	    B   C
//	     \ /
//	      A
//	      |
//	     END
//
//	a confluence joining two tributaries above the basin outlet; B
//	continues reach 1, C opens reach 2.
//
// The examples/ directory holds runnable demos: building and editing a
// basin, hot-reloading from a network file, and laying out a diagram.
//
//	go get github.com/hydrograph/streamnet
package streamnet
