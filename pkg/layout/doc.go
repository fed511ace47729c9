// Package layout computes spatial positions for graph nodes so that
// connected nodes end up close together, unconnected nodes repel, and node
// radii are respected to minimize overlap.
//
// # Algorithm
//
// The engine implements the Fruchterman-Reingold force-directed algorithm:
// every pair of nodes repels with magnitude k²/distance, every edge
// attracts its endpoints with magnitude distance²·weight/k, and the net
// displacement per node is clamped by a cooling temperature that shrinks
// across iterations, settling the system. Node radii are subtracted from
// pairwise distances before forces are computed, so touching nodes stay
// separated by a hair instead of dividing by zero.
//
// After the iteration loop, all positions are affinely rescaled to exactly
// fill the requested bounding box. This final rescale is unconditional and
// applies to fixed nodes too: a fixed node holds its position throughout
// the simulation, but its reported coordinate can still shift if mobile
// nodes expand the observed extent. That is the documented contract.
//
// # Multiple components
//
// Force-directed layouts assume a connected graph; disconnected components
// would otherwise drift apart without bound. Multi partitions the graph
// into connected components, allocates a non-overlapping bounding box to
// each via rectangle packing (see the pack subpackage), lays out each
// component within its box, and merges the results. Singleton components
// are placed at their box center with no simulation.
//
// # Determinism
//
// All randomness (initial placement, coincident-point jitter) flows from
// an injectable generator seeded via Options, so identical inputs produce
// identical layouts.
package layout
