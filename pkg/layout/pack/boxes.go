package pack

import (
	"math"

	"github.com/matzehuels/graphforce/pkg/errors"
)

// Default parameters for component box estimation.
const (
	// DefaultPower is the exponent used to estimate a component's
	// footprint from its node count. A force-directed layout of n nodes
	// needs roughly n^0.8 units of linear extent.
	DefaultPower = 0.8

	// DefaultPadBy is the padding between adjacent boxes, as a fraction
	// of the largest estimated footprint. Padding keeps nodes of
	// neighboring components from touching in the final layout.
	DefaultPadBy = 0.05
)

// Box is an axis-aligned region of the canvas: a lower-left origin and a
// vector of positive extents. Component layouts are constrained to their
// assigned box.
type Box struct {
	Origin []float64 `json:"origin" bson:"origin"`
	Scale  []float64 `json:"scale" bson:"scale"`
}

// Center returns the midpoint of the box. Singleton components are placed
// here directly, with no simulation.
func (b Box) Center() []float64 {
	center := make([]float64, len(b.Origin))
	for d := range center {
		center[d] = b.Origin[d] + 0.5*b.Scale[d]
	}
	return center
}

// Contains reports whether p lies within the box, within tol.
func (b Box) Contains(p []float64, tol float64) bool {
	if len(p) != len(b.Origin) {
		return false
	}
	for d := range p {
		if p[d] < b.Origin[d]-tol || p[d] > b.Origin[d]+b.Scale[d]+tol {
			return false
		}
	}
	return true
}

// Options configures component box allocation.
type Options struct {
	// Power is the footprint exponent. Zero means DefaultPower.
	Power float64

	// PadBy is the inter-box padding fraction. Zero means DefaultPadBy;
	// use a negative value for no padding.
	PadBy float64

	// Packer is the rectangle packing heuristic. Nil means the built-in
	// Shelf packer.
	Packer Packer
}

func (o *Options) setDefaults() {
	if o.Power == 0 {
		o.Power = DefaultPower
	}
	if o.PadBy == 0 {
		o.PadBy = DefaultPadBy
	} else if o.PadBy < 0 {
		o.PadBy = 0
	}
	if o.Packer == nil {
		o.Packer = Shelf{}
	}
}

// ComponentBoxes allocates one bounding box per component, given each
// component's node count and the overall target canvas. Boxes are packed
// without overlap, separated by padding proportional to the largest
// footprint, and affinely rescaled so their union fills the target region
// exactly. Relative positions and padding ratios are preserved by the
// rescale; horizontal and vertical axes are scaled independently.
//
// The canvas must be two-dimensional: packing is a planar problem.
func ComponentBoxes(counts []int, origin, scale []float64, opts Options) ([]Box, error) {
	if len(counts) == 0 {
		return nil, nil
	}
	if len(origin) != 2 || len(scale) != 2 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "component packing requires a 2-D canvas, got origin d=%d, scale d=%d", len(origin), len(scale))
	}
	for i, n := range counts {
		if n < 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "component %d has node count %d, want >= 1", i, n)
		}
	}
	opts.setDefaults()

	// Estimate relative footprints and the shared padding.
	footprints := make([]Size, len(counts))
	var maxW, maxH float64
	for i, n := range counts {
		side := math.Pow(float64(n), opts.Power)
		footprints[i] = Size{side, side}
		maxW = math.Max(maxW, side)
		maxH = math.Max(maxH, side)
	}
	padX, padY := opts.PadBy*maxW, opts.PadBy*maxH

	padded := make([]Size, len(footprints))
	for i, f := range footprints {
		padded[i] = Size{f[0] + padX, f[1] + padY}
	}

	corners, err := opts.Packer.Pack(padded)
	if err != nil {
		return nil, err
	}
	if len(corners) != len(padded) {
		return nil, errors.New(errors.ErrCodeInternal, "packer returned %d placements for %d rectangles", len(corners), len(padded))
	}

	// Union of the unpadded boxes at their packed placements; the padding
	// stays as slack between neighbors after rescaling.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, c := range corners {
		minX = math.Min(minX, c[0])
		minY = math.Min(minY, c[1])
		maxX = math.Max(maxX, c[0]+footprints[i][0])
		maxY = math.Max(maxY, c[1]+footprints[i][1])
	}
	scaleX := scale[0] / (maxX - minX)
	scaleY := scale[1] / (maxY - minY)

	boxes := make([]Box, len(counts))
	for i, c := range corners {
		boxes[i] = Box{
			Origin: []float64{
				origin[0] + (c[0]-minX)*scaleX,
				origin[1] + (c[1]-minY)*scaleY,
			},
			Scale: []float64{
				footprints[i][0] * scaleX,
				footprints[i][1] * scaleY,
			},
		}
	}
	return boxes, nil
}
