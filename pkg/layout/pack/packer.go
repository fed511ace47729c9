// Package pack solves the bounding-box allocation subproblem of
// multi-component layout: given one rectangle per connected component, it
// places the rectangles without overlap and rescales the arrangement onto
// the requested canvas.
//
// Rectangle packing is NP-hard in general, so placement quality is
// heuristic. The Packer interface makes the heuristic pluggable; a shelf
// packer is built in and always available, trading packing efficiency for
// zero external dependencies. A higher-quality packer can be substituted
// without changing the composer's contract.
package pack

import (
	"math"
	"sort"

	"github.com/matzehuels/graphforce/pkg/errors"
)

// Size is a (width, height) pair describing a rectangle to place.
type Size [2]float64

// Point is the (x, y) lower-left corner of a placed rectangle.
type Point [2]float64

// Packer places a set of rectangles without overlap. Implementations
// return one lower-left corner per input size, in input order, in an
// arbitrary coordinate system anchored near the origin. Callers rescale
// the result onto their target canvas.
type Packer interface {
	Pack(sizes []Size) ([]Point, error)
}

// Shelf is the built-in packing heuristic: next-fit decreasing height.
// Rectangles are sorted by decreasing height and placed left to right on
// horizontal shelves; when a rectangle no longer fits the strip width, a
// new shelf is opened above. Placement is deterministic for a given input.
//
// The zero value is ready to use.
type Shelf struct {
	// StripWidth fixes the strip width. If zero, the width is derived
	// from the input: max(widest rectangle, sqrt of total area), which
	// keeps the arrangement roughly square.
	StripWidth float64
}

// Pack implements Packer.
func (s Shelf) Pack(sizes []Size) ([]Point, error) {
	if len(sizes) == 0 {
		return nil, nil
	}

	var totalArea, maxWidth float64
	for i, sz := range sizes {
		if sz[0] <= 0 || sz[1] <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPacking, "rectangle %d has non-positive dimensions (%g x %g)", i, sz[0], sz[1])
		}
		totalArea += sz[0] * sz[1]
		maxWidth = math.Max(maxWidth, sz[0])
	}

	strip := s.StripWidth
	if strip <= 0 {
		strip = math.Max(maxWidth, math.Sqrt(totalArea))
	} else if strip < maxWidth {
		return nil, errors.New(errors.ErrCodeInvalidPacking, "strip width %g is narrower than the widest rectangle (%g)", strip, maxWidth)
	}

	// Sort by decreasing height, remembering original slots. The sort is
	// stable so equal heights keep input order and placement stays
	// deterministic.
	order := make([]int, len(sizes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sizes[order[a]][1] > sizes[order[b]][1]
	})

	points := make([]Point, len(sizes))
	var x, shelfY, shelfHeight float64
	for _, idx := range order {
		w, h := sizes[idx][0], sizes[idx][1]
		if x > 0 && x+w > strip {
			shelfY += shelfHeight
			x = 0
			shelfHeight = 0
		}
		if h > shelfHeight {
			shelfHeight = h
		}
		points[idx] = Point{x, shelfY}
		x += w
	}
	return points, nil
}
