package layout

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/graphforce/pkg/errors"
	"github.com/matzehuels/graphforce/pkg/graph"
)

// FruchtermanReingold computes positions for the nodes of an edge list so
// that the layout fills the bounding box described by opts. See the
// package documentation for the algorithm; see Options for defaults.
//
// Configuration errors (dimension mismatches, out-of-box positions, bad
// schedule modes) abort the call. Degeneracies (coincident positions,
// missing or superfluous initial positions) are corrected in place and
// surfaced through opts.Logger as warnings.
func FruchtermanReingold(edges []graph.Edge, opts Options) (graph.Positions, error) {
	opts.setDefaults()

	origin, scale, err := deriveFrame(opts.Origin, opts.Scale, opts.InitialPositions)
	if err != nil {
		return nil, err
	}
	dim := len(origin)

	nodes := graph.UniqueNodes(edges)
	n := len(nodes)
	if n == 0 {
		return graph.Positions{}, nil
	}
	index := graph.Index(nodes)

	pos, err := initialPositions(nodes, index, dim, origin, scale, &opts)
	if err != nil {
		return nil, err
	}

	adj, err := graph.AdjacencyMatrix(edges, nodes)
	if err != nil {
		return nil, err
	}
	// Forces are symmetric, so the adjacency matrix must be too; a
	// directed edge still attracts both endpoints.
	sym := graph.Symmetrize(adj)

	k := opts.K
	if k == 0 {
		area := 1.0
		for _, s := range scale {
			area *= s
		}
		k = math.Sqrt(area / float64(n))
	}

	temps, err := Schedule(opts.InitialTemperature, opts.TotalIterations, opts.Mode)
	if err != nil {
		return nil, err
	}

	radii := opts.radii(nodes)
	mobile := opts.mobileMask(index, n)

	for _, temperature := range temps {
		step(pos, sym, radii, k, temperature, mobile, opts.Rand, opts.Logger)
	}

	rescaleToFrame(pos, origin, scale)

	result := make(graph.Positions, n)
	for i, id := range nodes {
		result[id] = pos[i]
	}
	return result, nil
}

// deriveFrame resolves the bounding box. A nil origin is the elementwise
// minimum of the supplied positions and the zero vector; a nil scale is
// the elementwise maximum of the position deltas and the unit vector. Both
// nil with no positions yields the unit box at the origin.
func deriveFrame(origin, scale []float64, positions map[string][]float64) ([]float64, []float64, error) {
	dim := 0
	switch {
	case origin != nil:
		dim = len(origin)
	case scale != nil:
		dim = len(scale)
	default:
		dim = 2
		for _, p := range positions {
			dim = len(p)
			break
		}
	}

	if origin == nil {
		origin = make([]float64, dim)
		for _, p := range positions {
			if len(p) != dim {
				continue // dimension mismatch surfaces in validation below
			}
			for c := 0; c < dim; c++ {
				origin[c] = math.Min(origin[c], p[c])
			}
		}
	}

	if scale == nil {
		scale = make([]float64, dim)
		for c := range scale {
			scale[c] = 1
		}
		for _, p := range positions {
			if len(p) != len(origin) {
				continue
			}
			for c := range scale {
				scale[c] = math.Max(scale[c], p[c]-origin[c])
			}
		}
	}

	if len(origin) != len(scale) {
		return nil, nil, errors.New(errors.ErrCodeInvalidDimension,
			"origin (d=%d) and scale (d=%d) must have the same number of dimensions", len(origin), len(scale))
	}
	for c, s := range scale {
		if s <= 0 {
			return nil, nil, errors.New(errors.ErrCodeInvalidDimension, "scale extent %d must be positive, got %g", c, s)
		}
	}
	return origin, scale, nil
}

// initialPositions builds the working position array. Supplied positions
// are validated against the box; nodes without one are seeded randomly
// with a warning; entries for unknown nodes are dropped with a warning.
func initialPositions(nodes []string, index map[string]int, dim int, origin, scale []float64, opts *Options) ([][]float64, error) {
	pos := make([][]float64, len(nodes))

	random := func() []float64 {
		p := make([]float64, dim)
		for c := range p {
			p[c] = origin[c] + opts.Rand.Float64()*scale[c]
		}
		return p
	}

	if opts.InitialPositions == nil {
		for i := range pos {
			pos[i] = random()
		}
		return pos, nil
	}

	var outside []string
	for id, p := range opts.InitialPositions {
		if _, known := index[id]; !known {
			continue
		}
		if len(p) != dim {
			return nil, errors.New(errors.ErrCodeInvalidDimension,
				"initial position of node %q has %d dimensions, expected %d", id, len(p), dim)
		}
		if !withinBox(p, origin, scale) {
			outside = append(outside, id)
		}
	}
	if len(outside) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidPosition,
			"initial positions outside the box defined by origin and scale: %s", strings.Join(sorted(outside), ", "))
	}

	for id := range opts.InitialPositions {
		if _, known := index[id]; !known {
			opts.Logger.Warn("node appears to be unconnected; no position is computed for it", "node", id)
		}
	}

	for i, id := range nodes {
		if p, ok := opts.InitialPositions[id]; ok {
			pos[i] = append([]float64(nil), p...) // copy; the caller's map is never mutated
		} else {
			opts.Logger.Warn("position not provided; initializing to a random position within the frame", "node", id)
			pos[i] = random()
		}
	}
	return pos, nil
}

func withinBox(p, origin, scale []float64) bool {
	for c := range p {
		if p[c] < origin[c] || p[c] > origin[c]+scale[c] {
			return false
		}
	}
	return true
}

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	slices.Sort(out)
	return out
}
