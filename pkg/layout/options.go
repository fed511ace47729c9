package layout

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Default parameters for the force-directed engine.
const (
	// DefaultIterations is the number of simulation steps. The iteration
	// count is the sole work bound; there is no timeout semantic.
	DefaultIterations = 50

	// DefaultInitialTemperature bounds the first iteration's maximum node
	// displacement. Values should be much smaller than the box scale.
	DefaultInitialTemperature = 1.0

	// DefaultSeed is the random seed used when no generator is supplied.
	DefaultSeed = uint64(42)

	// BaseNodeSize rescales node radii so magnitudes are comparable with
	// layout routines in other toolkits.
	BaseNodeSize = 1e-2
)

// Options configures a single force-directed layout call. The zero value
// is valid: every field has a working default.
type Options struct {
	// K is the expected mean edge length. Zero derives it as
	// sqrt(canvas area / node count).
	K float64

	// Origin is the lower-left corner of the bounding box. Nil derives it
	// from InitialPositions (expanded to cover them), defaulting to the
	// zero vector.
	Origin []float64

	// Scale holds the positive extents of the bounding box. Nil derives
	// it from InitialPositions, defaulting to the unit box.
	Scale []float64

	// InitialTemperature is the displacement bound at iteration zero.
	// Zero means DefaultInitialTemperature.
	InitialTemperature float64

	// TotalIterations is the number of simulation steps. Zero means
	// DefaultIterations.
	TotalIterations int

	// Mode selects the temperature decay curve. Empty means quadratic.
	Mode ScheduleMode

	// NodeSize is a uniform radius applied to every node. Radii inflate
	// pairwise distances during force computation to minimize overlap.
	// Values are rescaled by BaseNodeSize internally.
	NodeSize float64

	// NodeSizes assigns per-node radii, overriding NodeSize for the nodes
	// it names. Values are rescaled by BaseNodeSize internally.
	NodeSizes map[string]float64

	// InitialPositions seeds node coordinates. Nodes absent from the map
	// are placed uniformly at random within the box (with a warning);
	// entries for nodes absent from the edge list are dropped (with a
	// warning). Positions outside the box are a configuration error.
	InitialPositions map[string][]float64

	// FixedNodes are excluded from displacement on every iteration. The
	// final frame rescale still applies to them.
	FixedNodes []string

	// Seed seeds the default random generator. Zero means DefaultSeed.
	Seed uint64

	// Rand is the random source for initial placement and degeneracy
	// jitter. Nil means a PCG generator seeded from Seed. Supplying a
	// fixed generator makes runs bit-for-bit reproducible.
	Rand *rand.Rand

	// Logger receives non-fatal diagnostics (coincident positions,
	// dropped or seeded nodes). Nil discards them.
	Logger *log.Logger
}

// setDefaults fills zero-valued fields in place. Origin and Scale are
// derived later, once initial positions are known.
func (o *Options) setDefaults() {
	if o.InitialTemperature == 0 {
		o.InitialTemperature = DefaultInitialTemperature
	}
	if o.TotalIterations == 0 {
		o.TotalIterations = DefaultIterations
	}
	if o.Mode == "" {
		o.Mode = ScheduleQuadratic
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(o.Seed, o.Seed^0xdeadbeef))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// radii resolves the effective per-node radius array for a node ordering.
// NodeSizes entries win over the uniform NodeSize; both are rescaled by
// BaseNodeSize. Nodes named in neither get radius zero.
func (o *Options) radii(nodes []string) []float64 {
	r := make([]float64, len(nodes))
	for i, id := range nodes {
		size := o.NodeSize
		if s, ok := o.NodeSizes[id]; ok {
			size = s
		}
		r[i] = BaseNodeSize * size
	}
	return r
}

// mobileMask reports, per node, whether the simulation may displace it.
func (o *Options) mobileMask(index map[string]int, n int) []bool {
	mobile := make([]bool, n)
	for i := range mobile {
		mobile[i] = true
	}
	for _, id := range o.FixedNodes {
		if i, ok := index[id]; ok {
			mobile[i] = false
		}
	}
	return mobile
}
