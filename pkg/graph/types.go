package graph

import (
	"slices"
)

// Edge represents a weighted connection between two nodes. Direction is
// recorded but the force simulation treats edges as undirected: the
// adjacency matrix is symmetrized before any force is computed, so a
// directed edge still produces mutual attraction.
type Edge struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// NewEdge creates an edge with the default weight of 1.
func NewEdge(from, to string) Edge {
	return Edge{From: from, To: to, Weight: 1}
}

// Node is a declared node in the serialization format. Declaring nodes is
// optional for connected nodes; it is how unconnected nodes and per-node
// sizes enter the system.
type Node struct {
	ID   string  `json:"id" bson:"id"`
	Size float64 `json:"size,omitempty" bson:"size,omitempty"` // radius, ≥ 0
}

// Graph is the canonical serialization format for layout inputs.
// Used for CLI files, API requests, and cross-tool compatibility.
type Graph struct {
	Nodes []Node `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// EdgeList returns the graph's edges with absent weights defaulted to 1.
func (g Graph) EdgeList() []Edge {
	edges := make([]Edge, len(g.Edges))
	for i, e := range g.Edges {
		if e.Weight == 0 {
			e.Weight = 1
		}
		edges[i] = e
	}
	return edges
}

// UnconnectedNodes returns the IDs of declared nodes that appear in no
// edge, in declaration order.
func (g Graph) UnconnectedNodes() []string {
	connected := make(map[string]bool, 2*len(g.Edges))
	for _, e := range g.Edges {
		connected[e.From] = true
		connected[e.To] = true
	}

	var unconnected []string
	for _, n := range g.Nodes {
		if !connected[n.ID] {
			unconnected = append(unconnected, n.ID)
		}
	}
	return unconnected
}

// NodeSizes returns the declared per-node sizes, or nil if no node declares
// a size.
func (g Graph) NodeSizes() map[string]float64 {
	var sizes map[string]float64
	for _, n := range g.Nodes {
		if n.Size != 0 {
			if sizes == nil {
				sizes = make(map[string]float64)
			}
			sizes[n.ID] = n.Size
		}
	}
	return sizes
}

// NodeCount returns the number of distinct nodes, counting both edge
// endpoints and declared unconnected nodes.
func (g Graph) NodeCount() int {
	seen := make(map[string]bool, len(g.Nodes)+2*len(g.Edges))
	for _, e := range g.Edges {
		seen[e.From] = true
		seen[e.To] = true
	}
	for _, n := range g.Nodes {
		seen[n.ID] = true
	}
	return len(seen)
}

// EdgeCount returns the number of edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Positions is the serialization format for a computed layout: a mapping
// from node ID to its D-dimensional coordinate.
type Positions map[string][]float64

// SortedNodes returns the node IDs of a position mapping in sorted order,
// for deterministic output.
func (p Positions) SortedNodes() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
