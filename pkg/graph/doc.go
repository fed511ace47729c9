// Package graph provides the edge-list graph model used by the layout
// engine, together with its JSON serialization format and the derived
// connectivity structures the engine consumes.
//
// # Model
//
// A graph is an edge list. Nodes are opaque string identifiers; they carry
// no payload here. Rendering attributes (colors, labels, marker shapes)
// live outside this module entirely.
//
// Two derived representations are computed per layout call:
//
//   - A dense weighted adjacency matrix (gonum mat.Dense), indexed by the
//     stable node table returned by UniqueNodes. The force simulation reads
//     edge weights from this matrix.
//   - An adjacency list (node → neighbor set), used only for connected
//     component discovery, never for the physical simulation.
//
// # Serialization
//
// The canonical wire format is JSON:
//
//	{
//	  "nodes": [{"id": "a", "size": 2.5}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b", "weight": 1.5}]
//	}
//
// Node entries are optional for connected nodes (they are implied by the
// edge list) but required to declare unconnected nodes and per-node sizes.
// An absent edge weight defaults to 1.
package graph
