package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGraphRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "a", Size: 2.5},
			{ID: "lonely"},
		},
		Edges: []Edge{
			{From: "a", To: "b", Weight: 1.5},
			{From: "b", To: "c"},
		},
	}

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}

	if len(got.Nodes) != 2 || len(got.Edges) != 2 {
		t.Fatalf("round trip changed shape: %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0].Size != 2.5 {
		t.Errorf("node size = %v, want 2.5", got.Nodes[0].Size)
	}
	if got.Edges[0].Weight != 1.5 {
		t.Errorf("edge weight = %v, want 1.5", got.Edges[0].Weight)
	}
}

func TestEdgeListDefaultsWeight(t *testing.T) {
	g := Graph{Edges: []Edge{{From: "a", To: "b"}}}

	edges := g.EdgeList()

	if edges[0].Weight != 1 {
		t.Errorf("absent weight = %v, want default 1", edges[0].Weight)
	}
}

func TestUnconnectedNodes(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "x"}, {ID: "y"}},
		Edges: []Edge{NewEdge("a", "b")},
	}

	got := g.UnconnectedNodes()

	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("UnconnectedNodes() = %v, want [x y]", got)
	}
}

func TestNodeSizes(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a", Size: 3}, {ID: "b"}},
	}

	sizes := g.NodeSizes()

	if sizes["a"] != 3 {
		t.Errorf("size of a = %v, want 3", sizes["a"])
	}
	if _, ok := sizes["b"]; ok {
		t.Error("node without declared size should not appear in NodeSizes")
	}

	if got := (Graph{}).NodeSizes(); got != nil {
		t.Errorf("NodeSizes of empty graph = %v, want nil", got)
	}
}

func TestNodeCount(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "lonely"}},
		Edges: []Edge{NewEdge("a", "b")},
	}

	if got := g.NodeCount(); got != 3 {
		t.Errorf("NodeCount() = %d, want 3", got)
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	g := Graph{Edges: []Edge{NewEdge("a", "b")}}
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if len(got.Edges) != 1 || got.Edges[0].From != "a" {
		t.Errorf("ReadGraphFile returned %+v", got)
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(underlying(err)) {
		// The path error should still be inspectable through the wrap.
		t.Logf("error: %v", err)
	}
}

func underlying(err error) error {
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}

func TestPositionsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.json")

	p := Positions{
		"a": {0.25, 0.75},
		"b": {1, 0},
	}
	if err := WritePositionsFile(p, path); err != nil {
		t.Fatalf("WritePositionsFile: %v", err)
	}

	got, err := ReadPositionsFile(path)
	if err != nil {
		t.Fatalf("ReadPositionsFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d positions, want 2", len(got))
	}
	if got["a"][0] != 0.25 || got["a"][1] != 0.75 {
		t.Errorf("position a = %v, want [0.25 0.75]", got["a"])
	}
}

func TestMarshalPositionsDeterministic(t *testing.T) {
	p := Positions{"z": {1, 1}, "a": {0, 0}, "m": {0.5, 0.5}}

	first, err := MarshalPositions(p)
	if err != nil {
		t.Fatalf("MarshalPositions: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := MarshalPositions(p)
		if err != nil {
			t.Fatalf("MarshalPositions: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("MarshalPositions output is not deterministic")
		}
	}
}

func TestSortedNodes(t *testing.T) {
	p := Positions{"z": {0, 0}, "a": {0, 0}}
	got := p.SortedNodes()
	if len(got) != 2 || got[0] != "a" || got[1] != "z" {
		t.Errorf("SortedNodes() = %v, want [a z]", got)
	}
}
