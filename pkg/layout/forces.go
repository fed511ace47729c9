package layout

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// distanceFloor is the smallest allowed pairwise distance after overlap
// compensation. Subtracting node radii can push a distance to or below
// zero; clamping here keeps the force magnitudes finite while still
// separating touching nodes by a hair.
const distanceFloor = 1e-6

// jitterScale is the magnitude of the random perturbation applied to the
// separating vector of coincident nodes, whose direction is otherwise
// undefined.
const jitterScale = 1e-9

// step advances the simulation by one iteration: it computes the net
// repulsive and attractive force on every node, clamps each displacement
// to the current temperature, and moves the mobile nodes. Fixed nodes are
// never displaced.
//
// adj must be the symmetrized adjacency matrix aligned with the row order
// of pos.
func step(pos [][]float64, adj *mat.Dense, radii []float64, k, temperature float64, mobile []bool, rng *rand.Rand, logger *log.Logger) {
	n := len(pos)
	if n == 0 {
		return
	}
	d := len(pos[0])

	warned := false
	diff := make([]float64, d)
	disp := make([][]float64, n)
	for i := range disp {
		disp[i] = make([]float64, d)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				// Self-interaction is meaningless; left in a sum it would
				// inject NaN from the zero self-distance.
				continue
			}

			floats.SubTo(diff, pos[i], pos[j])
			dist := floats.Norm(diff, 2)

			if dist == 0 {
				// Coincident nodes: the separating direction is undefined.
				// Perturb by a vanishing random offset and carry on.
				if !warned {
					logger.Warn("some nodes share a position; repulsion between them is undefined, applying random jitter")
					warned = true
				}
				for c := range diff {
					diff[c] = rng.Float64() * jitterScale
				}
				dist = floats.Norm(diff, 2)
			}

			// Overlap compensation: measure gaps between node borders, not
			// centers, then clamp so touching nodes do not blow up forces.
			dist -= radii[i] + radii[j]
			if dist <= 0 {
				dist = distanceFloor
			}

			repulsion := k * k / dist
			attraction := dist * dist * adj.At(i, j) / k

			// diff/dist points from j toward i: repulsion pushes i away
			// from j, attraction pulls it back along the same axis.
			scale := (repulsion - attraction) / dist
			floats.AddScaled(disp[i], scale, diff)
		}
	}

	// Clamp displacement magnitude to the temperature: direction is
	// preserved, magnitude only ever shrinks. This is the convergence
	// control; as the temperature cools the system settles.
	for i := 0; i < n; i++ {
		if !mobile[i] {
			continue
		}
		length := floats.Norm(disp[i], 2)
		if length > temperature {
			floats.Scale(temperature/length, disp[i])
		}
		floats.Add(pos[i], disp[i])
	}
}

// rescaleToFrame affinely maps positions so the layout exactly fills the
// box: translate to the observed minimum, normalize by the observed span,
// multiply by the box scale, translate by the box origin. The rescale is
// unconditional and includes fixed nodes.
func rescaleToFrame(pos [][]float64, origin, scale []float64) {
	n := len(pos)
	if n == 0 {
		return
	}
	d := len(origin)

	for c := 0; c < d; c++ {
		lo, hi := pos[0][c], pos[0][c]
		for i := 1; i < n; i++ {
			if pos[i][c] < lo {
				lo = pos[i][c]
			}
			if pos[i][c] > hi {
				hi = pos[i][c]
			}
		}

		span := hi - lo
		for i := 0; i < n; i++ {
			normalized := 0.5 // degenerate span: every node shares this coordinate
			if span > 0 {
				normalized = (pos[i][c] - lo) / span
			}
			pos[i][c] = normalized*scale[c] + origin[c]
		}
	}
}
