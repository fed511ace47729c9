package graph

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/graphforce/pkg/errors"
)

// UniqueNodes extracts the distinct node identifiers from an edge list in
// first-appearance order (source before target, edges in input order). This
// ordering is stable and serves as the canonical node→index table for all
// array-shaped working storage in the layout engine.
func UniqueNodes(edges []Edge) []string {
	seen := make(map[string]bool, 2*len(edges))
	nodes := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		if !seen[e.From] {
			seen[e.From] = true
			nodes = append(nodes, e.From)
		}
		if !seen[e.To] {
			seen[e.To] = true
			nodes = append(nodes, e.To)
		}
	}
	return nodes
}

// Index builds the node→index table for a node ordering. The table is
// constructed once per layout call and never mutated afterwards, so array
// indices stay stable for the lifetime of the call.
func Index(nodes []string) map[string]int {
	idx := make(map[string]int, len(nodes))
	for i, id := range nodes {
		idx[id] = i
	}
	return idx
}

// AdjacencyMatrix builds the dense weighted adjacency matrix for an edge
// list. Rows and columns follow the given node ordering; if nodes is nil,
// UniqueNodes(edges) is used. Duplicate edges and self-loops accumulate
// additively.
//
// When an explicit node set is supplied, an edge referencing an identifier
// outside that set is a configuration error.
func AdjacencyMatrix(edges []Edge, nodes []string) (*mat.Dense, error) {
	if nodes == nil {
		nodes = UniqueNodes(edges)
	}
	idx := Index(nodes)

	n := len(nodes)
	if n == 0 {
		return &mat.Dense{}, nil
	}

	adj := mat.NewDense(n, n, nil)
	for _, e := range edges {
		i, ok := idx[e.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNode, "edge source %q is not in the declared node set", e.From)
		}
		j, ok := idx[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNode, "edge target %q is not in the declared node set", e.To)
		}
		adj.Set(i, j, adj.At(i, j)+e.Weight)
	}
	return adj, nil
}

// Symmetrize returns a + aᵀ. The force model is symmetric, so the layout
// engine symmetrizes the adjacency matrix before computing attractions; a
// directed edge then pulls both of its endpoints.
func Symmetrize(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	if r == 0 {
		return &mat.Dense{}
	}
	s := mat.NewDense(r, c, nil)
	s.Add(a, a.T())
	return s
}

// AdjacencyList builds the undirected neighbor-set representation of an
// edge list. It is used only for connected component discovery; the
// physical simulation reads the adjacency matrix instead. Self-loops are
// dropped since they do not affect connectivity.
func AdjacencyList(edges []Edge) map[string]map[string]bool {
	adj := make(map[string]map[string]bool)
	add := func(a, b string) {
		if adj[a] == nil {
			adj[a] = make(map[string]bool)
		}
		adj[a][b] = true
	}
	for _, e := range edges {
		if e.From == e.To {
			if adj[e.From] == nil {
				adj[e.From] = make(map[string]bool)
			}
			continue
		}
		add(e.From, e.To)
		add(e.To, e.From)
	}
	return adj
}
