// Package network_test provides benchmarks for Network editing and
// enumeration.
package network_test

import (
	"fmt"
	"testing"

	"github.com/hydrograph/streamnet/network"
)

// basinRecords generates an n-node record set shaped like a braided
// basin: a main stem where every tenth node instead drains nine nodes
// back, opening a tributary. Fan-ins keep the computational walk honest.
func basinRecords(n int) []network.Record {
	recs := make([]network.Record, 0, n)
	recs = append(recs, network.Record{ID: "END", Type: network.NodeEnd})
	for i := 1; i < n; i++ {
		down := "END"
		switch {
		case i >= 10 && i%10 == 0:
			down = fmt.Sprintf("N%d", i-9)
		case i > 1:
			down = fmt.Sprintf("N%d", i-1)
		}
		recs = append(recs, network.Record{
			ID: fmt.Sprintf("N%d", i), Type: network.NodeStreamflow, DownstreamID: down,
		})
	}

	return recs
}

func mustBasin(b *testing.B, n int) *network.Network {
	b.Helper()
	net, err := network.FromRecords(basinRecords(n))
	if err != nil {
		b.Fatalf("build %d-node basin: %v", n, err)
	}

	return net
}

// BenchmarkNetwork_InsertDelete measures one steady-state edit pair on a
// 1000-node basin: insert a station above a mid-stem anchor, then delete
// it again. Both operations renumber incrementally, so each pair is O(N).
func BenchmarkNetwork_InsertDelete(b *testing.B) {
	net := mustBasin(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := net.Insert("X", network.NodeWell, "N500"); err != nil {
			b.Fatal(err)
		}
		if err := net.Delete("X"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNetwork_Nodes measures one full computational enumeration at
// several basin sizes. Each walk is O(N) plus the sibling scan at every
// fan-in.
func BenchmarkNetwork_Nodes(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 1000, 10000} {
		net := mustBasin(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := net.Nodes(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNetwork_Renumber measures a full renumbering pass on a
// 10000-node basin: reach assignment, tributary numbers, and the
// lockstep serial and computational walk.
func BenchmarkNetwork_Renumber(b *testing.B) {
	net := mustBasin(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := net.Renumber(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFromRecords measures a full rebuild from flat records at
// several sizes, validation and numbering included.
func BenchmarkFromRecords(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 1000} {
		recs := basinRecords(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := network.FromRecords(recs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNetwork_FindNode measures the id index lookup on a 10000-node
// basin.
func BenchmarkNetwork_FindNode(b *testing.B) {
	net := mustBasin(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := net.FindNode("n5000"); err != nil {
			b.Fatal(err)
		}
	}
}
