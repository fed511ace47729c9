package graph

import (
	"slices"
	"testing"

	"github.com/matzehuels/graphforce/pkg/errors"
)

func TestUniqueNodes(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  []string
	}{
		{
			name:  "empty",
			edges: nil,
			want:  []string{},
		},
		{
			name:  "single edge",
			edges: []Edge{NewEdge("a", "b")},
			want:  []string{"a", "b"},
		},
		{
			name: "first appearance order",
			edges: []Edge{
				NewEdge("c", "a"),
				NewEdge("a", "b"),
				NewEdge("b", "c"),
			},
			want: []string{"c", "a", "b"},
		},
		{
			name:  "self loop",
			edges: []Edge{NewEdge("x", "x")},
			want:  []string{"x"},
		},
		{
			name: "duplicates collapse",
			edges: []Edge{
				NewEdge("a", "b"),
				NewEdge("a", "b"),
				NewEdge("b", "a"),
			},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueNodes(tt.edges)
			if len(got) != len(tt.want) {
				t.Fatalf("UniqueNodes() = %v, want %v", got, tt.want)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("UniqueNodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndexStable(t *testing.T) {
	nodes := []string{"b", "a", "c"}
	idx := Index(nodes)
	for i, id := range nodes {
		if idx[id] != i {
			t.Errorf("Index[%q] = %d, want %d", id, idx[id], i)
		}
	}
}

func TestAdjacencyMatrix(t *testing.T) {
	edges := []Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "b", Weight: 2}, // duplicate accumulates
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "c", Weight: 4}, // self loop accumulates on diagonal
	}

	adj, err := AdjacencyMatrix(edges, nil)
	if err != nil {
		t.Fatalf("AdjacencyMatrix: %v", err)
	}

	r, c := adj.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("Dims() = %dx%d, want 3x3", r, c)
	}

	// index order: a=0, b=1, c=2
	if got := adj.At(0, 1); got != 3 {
		t.Errorf("weight a→b = %v, want 3", got)
	}
	if got := adj.At(1, 0); got != 0 {
		t.Errorf("weight b→a = %v, want 0 (raw matrix is directed)", got)
	}
	if got := adj.At(2, 2); got != 4 {
		t.Errorf("self loop weight = %v, want 4", got)
	}
}

func TestAdjacencyMatrixDeclaredNodeSet(t *testing.T) {
	edges := []Edge{NewEdge("a", "z")}

	_, err := AdjacencyMatrix(edges, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error for edge target outside declared node set")
	}
	if !errors.Is(err, errors.ErrCodeInvalidNode) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidNode)
	}
}

func TestSymmetrize(t *testing.T) {
	adj, err := AdjacencyMatrix([]Edge{{From: "a", To: "b", Weight: 2}}, nil)
	if err != nil {
		t.Fatalf("AdjacencyMatrix: %v", err)
	}

	sym := Symmetrize(adj)
	if got := sym.At(0, 1); got != 2 {
		t.Errorf("sym a→b = %v, want 2", got)
	}
	if got := sym.At(1, 0); got != 2 {
		t.Errorf("sym b→a = %v, want 2", got)
	}

	r, c := sym.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if sym.At(i, j) != sym.At(j, i) {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestAdjacencyList(t *testing.T) {
	edges := []Edge{
		NewEdge("a", "b"),
		NewEdge("b", "c"),
		NewEdge("d", "d"), // self loop: entry exists, no neighbors
	}

	adj := AdjacencyList(edges)

	if !adj["a"]["b"] || !adj["b"]["a"] {
		t.Error("a-b should be mutual neighbors")
	}
	if !adj["b"]["c"] || !adj["c"]["b"] {
		t.Error("b-c should be mutual neighbors")
	}
	if adj["d"] == nil {
		t.Error("self loop node should have an adjacency entry")
	}
	if len(adj["d"]) != 0 {
		t.Errorf("self loop node should have no neighbors, got %v", adj["d"])
	}
}
