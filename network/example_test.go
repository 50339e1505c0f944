package network_test

import (
	"fmt"
	"strings"

	"github.com/hydrograph/streamnet/network"
)

// ExampleNetwork_Insert builds a small basin one station at a time and
// prints the orderings the editor maintains. Network shape (flow runs
// top to bottom):
//
//	B   C
//	 \ /
//	  A
//	  |
//	 END
//
// B joined A first, so it continues reach 1; C opens reach 2.
func ExampleNetwork_Insert() {
	net := network.New()

	// Each Insert names the downstream anchor the new station drains to.
	_, _ = net.Insert("A", network.NodeConfluence, "END")
	_, _ = net.Insert("B", network.NodeStreamflow, "A")
	_, _ = net.Insert("C", network.NodeStreamflow, "A")

	// Nodes enumerates upstream-first: every station prints before the
	// one it drains to.
	nodes, err := net.Nodes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range nodes {
		fmt.Printf("%s serial=%d reach=%d\n", n.ID(), n.Serial(), n.ReachCounter())
	}

	// Output:
	// B serial=3 reach=1
	// C serial=4 reach=2
	// A serial=2 reach=1
	// END serial=1 reach=1
}

// ExampleFromRecords rebuilds the same basin from an unordered flat
// record set, the shape a network file loads into.
func ExampleFromRecords() {
	records := []network.Record{
		{ID: "C", Type: network.NodeStreamflow, DownstreamID: "A"},
		{ID: "END", Type: network.NodeEnd},
		{ID: "A", Type: network.NodeConfluence, DownstreamID: "END"},
		{ID: "B", Type: network.NodeStreamflow, DownstreamID: "A"},
	}

	net, err := network.FromRecords(records)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nodes, err := net.Nodes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	order := make([]string, len(nodes))
	for i, n := range nodes {
		order[i] = n.ID()
	}
	fmt.Println(strings.Join(order, " "))
	fmt.Println("reaches:", net.ReachCount())

	// Output:
	// C B A END
	// reaches: 2
}

// ExampleNetwork_Delete removes a mid-chain station; its tributary
// re-homes onto the downstream neighbor and every numbering closes up.
func ExampleNetwork_Delete() {
	net := network.New()
	_, _ = net.Insert("A", network.NodeStreamflow, "END")
	_, _ = net.Insert("B", network.NodeDiversion, "A")
	_, _ = net.Insert("C", network.NodeStreamflow, "B")

	if err := net.Delete("B"); err != nil {
		fmt.Println("error:", err)
		return
	}

	nodes, err := net.Nodes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range nodes {
		fmt.Printf("%s serial=%d\n", n.ID(), n.Serial())
	}

	// Output:
	// C serial=3
	// A serial=2
	// END serial=1
}

// ExampleNetwork_UpstreamFlowNodes finds the nearest natural-flow
// station up each branch, the lookup simulation set-up leans on.
func ExampleNetwork_UpstreamFlowNodes() {
	net := network.New()
	_, _ = net.Insert("A", network.NodeConfluence, "END")
	_, _ = net.Insert("T1", network.NodeStreamflow, "A", network.WithNaturalFlow())
	_, _ = net.Insert("T2", network.NodeDiversion, "A")
	_, _ = net.Insert("U2", network.NodeStreamflow, "T2", network.WithNaturalFlow())

	a, err := net.FindNode("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	points, err := net.UpstreamFlowNodes(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range points {
		fmt.Println(p.ID())
	}

	// Output:
	// T1
	// U2
}
