package graph

import (
	"maps"
	"slices"
)

// Component is a maximal set of mutually reachable nodes, or a single
// unconnected node.
type Component map[string]bool

// Sorted returns the component's node IDs in sorted order.
func (c Component) Sorted() []string {
	return slices.Sorted(maps.Keys(c))
}

// ConnectedComponents partitions the keys of an adjacency list into
// maximal connected subsets, sorted by descending size. The traversal is
// an explicit-stack depth-first search, so arbitrarily large components
// cannot overflow the call stack.
//
// Nodes that appear only as a neighbor, with no adjacency entry of their
// own, are treated as visited-but-terminal leaves and end up in the
// component that reached them.
//
// Equal-size components carry no guaranteed secondary order.
func ConnectedComponents(adjacency map[string]map[string]bool) []Component {
	// Deterministic start order: maps iterate randomly, components must not.
	keys := slices.Sorted(maps.Keys(adjacency))

	visited := make(map[string]bool, len(adjacency))
	var components []Component

	for _, start := range keys {
		if visited[start] {
			continue
		}

		component := Component{}
		stack := []string{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[node] {
				continue
			}
			visited[node] = true
			component[node] = true

			// Leaf nodes have no adjacency entry; the nil map ranges as empty.
			for neighbor := range adjacency[node] {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}
		components = append(components, component)
	}

	slices.SortStableFunc(components, func(a, b Component) int {
		return len(b) - len(a)
	})
	return components
}

// InducedSubgraph returns the edges of an edge list whose endpoints both
// lie within the given component.
func InducedSubgraph(edges []Edge, component Component) []Edge {
	var sub []Edge
	for _, e := range edges {
		if component[e.From] && component[e.To] {
			sub = append(sub, e)
		}
	}
	return sub
}
