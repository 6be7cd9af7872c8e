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

package util

// Graph is an adjacency list of directed edges between vertices 0..n-1.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// Cyclic reports whether the strongly connected component scc contains a cycle: either more
// than one vertex, or a single vertex with an edge to itself.
func (g Graph) Cyclic(scc []int) bool {
	return len(scc) > 1 || (len(scc) == 1 && g.HasEdge(scc[0], scc[0]))
}

// SCC returns the strongly connected components of g in topological order: a component is
// listed before every component it has edges into.
func (g Graph) SCC() [][]int {
	t := tarjan{
		g:       g,
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if t.index[v] == 0 {
			t.visit(v)
		}
	}
	sccs := t.sccs
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// Components are found in reversed dependency-order.
type tarjan struct {
	g       Graph
	next    int
	index   []int
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) visit(v int) {
	t.next++
	t.index[v], t.lowLink[v] = t.next, t.next
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, succ := range t.g[v] {
		switch {
		case t.index[succ] == 0:
			t.visit(succ)
			if t.lowLink[succ] < t.lowLink[v] {
				t.lowLink[v] = t.lowLink[succ]
			}
		case t.onStack[succ]:
			if t.index[succ] < t.lowLink[v] {
				t.lowLink[v] = t.index[succ]
			}
		}
	}

	if t.lowLink[v] != t.index[v] {
		return
	}
	var scc []int
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		scc = append(scc, top)
		if top == v {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
