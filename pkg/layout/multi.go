package layout

import (
	"github.com/matzehuels/graphforce/pkg/errors"
	"github.com/matzehuels/graphforce/pkg/graph"
	"github.com/matzehuels/graphforce/pkg/layout/pack"
)

// ComponentLayoutFunc lays out a single connected component within the
// bounding box carried by its Options. FruchtermanReingold satisfies this
// signature and is the default.
type ComponentLayoutFunc func(edges []graph.Edge, opts Options) (graph.Positions, error)

// MultiOptions configures a multi-component layout call.
type MultiOptions struct {
	// Origin is the lower-left corner of the overall canvas. Nil means
	// the zero vector. The canvas must be two-dimensional; box packing is
	// a planar problem.
	Origin []float64

	// Scale holds the canvas extents. Nil means the unit box.
	Scale []float64

	// Pack configures footprint estimation and rectangle packing.
	Pack pack.Options

	// Layout carries the per-component engine options (iterations,
	// temperature, node sizes, seed, logger). Origin and Scale within it
	// are overwritten per component with the component's box.
	Layout Options

	// LayoutFunc computes each multi-node component's layout. Nil means
	// FruchtermanReingold.
	LayoutFunc ComponentLayoutFunc
}

// Multi lays out a graph that may consist of several connected components.
// Force-directed layouts assume a connected graph and fail otherwise; Multi
// works around that by allocating a bounding box per component, laying out
// each component within its box, and merging the results.
//
// unconnected lists nodes that appear in no edge; each becomes a singleton
// component placed at the center of its box. The returned mapping covers
// every node exactly once.
func Multi(edges []graph.Edge, unconnected []string, opts MultiOptions) (graph.Positions, error) {
	origin := opts.Origin
	if origin == nil {
		origin = []float64{0, 0}
	}
	scale := opts.Scale
	if scale == nil {
		scale = []float64{1, 1}
	}
	layoutFn := opts.LayoutFunc
	if layoutFn == nil {
		layoutFn = FruchtermanReingold
	}
	opts.Layout.setDefaults()

	adjacency := graph.AdjacencyList(edges)
	components := graph.ConnectedComponents(adjacency)

	for _, id := range unconnected {
		if _, connected := adjacency[id]; connected {
			return nil, errors.New(errors.ErrCodeInvalidNode,
				"node %q is declared unconnected but appears in the edge list", id)
		}
		components = append(components, graph.Component{id: true})
	}
	if len(components) == 0 {
		return graph.Positions{}, nil
	}

	counts := make([]int, len(components))
	for i, c := range components {
		counts[i] = len(c)
	}

	boxes, err := pack.ComponentBoxes(counts, origin, scale, opts.Pack)
	if err != nil {
		return nil, err
	}

	positions := make(graph.Positions)
	for i, component := range components {
		box := boxes[i]

		if len(component) == 1 {
			// No simulation needed: the lone node sits at the box center.
			for id := range component {
				positions[id] = box.Center()
			}
			continue
		}

		copts := opts.Layout
		copts.Origin = box.Origin
		copts.Scale = box.Scale
		// Initial positions cannot be honored per component: callers have
		// no way to know box placements in advance, and coordinates from
		// another component's region would fail the containment check.
		copts.InitialPositions = nil

		sub, err := layoutFn(graph.InducedSubgraph(edges, component), copts)
		if err != nil {
			return nil, err
		}
		for id, p := range sub {
			positions[id] = p
		}
	}
	return positions, nil
}
