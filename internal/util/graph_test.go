// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package util_test

import (
	"testing"

	. "github.com/wdamron/subst/internal/util"
)

func TestSCC(t *testing.T) {
	// 0 -> 1 -> 2 -> 1, 2 -> 3, 4 -> 4
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)
	g.AddEdge(4, 4)

	if len(g[2]) != 2 {
		t.Fatalf("duplicate edge was added: %#+v", g[2])
	}

	sccs := g.SCC()
	if len(sccs) != 4 {
		t.Fatalf("unexpected components: %#+v", sccs)
	}

	position := make([]int, len(g))
	for i, scc := range sccs {
		for _, v := range scc {
			position[v] = i
		}
	}
	if position[1] != position[2] {
		t.Fatalf("expected 1 and 2 in the same component: %#+v", sccs)
	}
	// components precede the components they have edges into
	for from := range g {
		for _, to := range g[from] {
			if position[from] > position[to] {
				t.Fatalf("edge %d -> %d violates topological order: %#+v", from, to, sccs)
			}
		}
	}

	for _, scc := range sccs {
		cyclic := g.Cyclic(scc)
		switch scc[0] {
		case 0, 3:
			if cyclic {
				t.Fatalf("unexpected cycle: %#+v", scc)
			}
		default:
			if !cyclic {
				t.Fatalf("expected cycle: %#+v", scc)
			}
		}
	}
}

func TestSCCEmpty(t *testing.T) {
	if sccs := NewGraph(0).SCC(); len(sccs) != 0 {
		t.Fatalf("unexpected components: %#+v", sccs)
	}
}
