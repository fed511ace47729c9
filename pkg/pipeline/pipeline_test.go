package pipeline

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/graphforce/pkg/errors"
	"github.com/matzehuels/graphforce/pkg/graph"
	"github.com/matzehuels/graphforce/pkg/observability"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Width != DefaultWidth {
		t.Errorf("Width = %g, want %g", opts.Width, DefaultWidth)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height = %g, want %g", opts.Height, DefaultHeight)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidInput},
		{"negative height", Options{Height: -2}, errors.ErrCodeInvalidInput},
		{"unknown mode", Options{Mode: "exponential"}, errors.ErrCodeInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Seed: 9}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	logger := opts.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if opts.Logger != logger {
		t.Error("second call replaced the logger")
	}
	if opts.Seed != 9 {
		t.Errorf("Seed = %d, want 9", opts.Seed)
	}
}

func TestRunnerExecute(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "lone"}},
		Edges: []graph.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "a"},
		},
	}

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), g, Options{Iterations: 20})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := len(result.Positions); got != 4 {
		t.Fatalf("len(Positions) = %d, want 4", got)
	}
	for id, p := range result.Positions {
		if len(p) != 2 {
			t.Fatalf("node %s has %d coordinates, want 2", id, len(p))
		}
		for d, v := range p {
			if v < -1e-9 || v > 1+1e-9 {
				t.Errorf("node %s dim %d = %g, outside unit canvas", id, d, v)
			}
		}
	}

	if result.Stats.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4", result.Stats.NodeCount)
	}
	if result.Stats.EdgeCount != 3 {
		t.Errorf("EdgeCount = %d, want 3", result.Stats.EdgeCount)
	}
	if result.Stats.ComponentCount != 2 {
		t.Errorf("ComponentCount = %d, want 2", result.Stats.ComponentCount)
	}
	if result.Stats.LayoutTime <= 0 {
		t.Error("LayoutTime not recorded")
	}
}

func TestRunnerExecuteDeterministic(t *testing.T) {
	g := graph.Graph{Edges: []graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	}}

	runner := NewRunner(nil)
	first, err := runner.Execute(context.Background(), g, Options{Seed: 5})
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	second, err := runner.Execute(context.Background(), g, Options{Seed: 5})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	for id, p := range first.Positions {
		q := second.Positions[id]
		for d := range p {
			if p[d] != q[d] {
				t.Fatalf("node %s dim %d: %g != %g", id, d, p[d], q[d])
			}
		}
	}
}

func TestRunnerExecuteCanvas(t *testing.T) {
	g := graph.Graph{Edges: []graph.Edge{{From: "a", To: "b"}}}

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), g, Options{
		OriginX: 10, OriginY: -5,
		Width: 4, Height: 2,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for id, p := range result.Positions {
		if p[0] < 10 || p[0] > 14 || p[1] < -5 || p[1] > -3 {
			t.Errorf("node %s at %v, outside canvas [10,14]x[-5,-3]", id, p)
		}
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), graph.Graph{}, Options{Mode: "bogus"})
	if !errors.Is(err, errors.ErrCodeInvalidSchedule) {
		t.Fatalf("error = %v, want INVALID_SCHEDULE", err)
	}
}

func TestRunnerExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil)
	_, err := runner.Execute(ctx, graph.Graph{}, Options{})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestRunnerExecuteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "positions.json")

	g := graph.Graph{Edges: []graph.Edge{
		{From: "x", To: "y"},
		{From: "y", To: "z"},
	}}
	if err := graph.WriteGraphFile(g, input); err != nil {
		t.Fatalf("WriteGraphFile() error = %v", err)
	}

	runner := NewRunner(nil)
	result, err := runner.ExecuteFile(context.Background(), input, output, Options{})
	if err != nil {
		t.Fatalf("ExecuteFile() error = %v", err)
	}

	if result.Stats.LoadTime <= 0 {
		t.Error("LoadTime not recorded")
	}
	if result.Stats.ExportTime <= 0 {
		t.Error("ExportTime not recorded")
	}

	positions, err := graph.ReadPositionsFile(output)
	if err != nil {
		t.Fatalf("ReadPositionsFile() error = %v", err)
	}
	if len(positions) != 3 {
		t.Errorf("exported %d positions, want 3", len(positions))
	}
}

func TestRunnerExecuteFileMissingInput(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.ExecuteFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"), "", Options{})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want file-not-found", err)
	}
}

// recordingHooks captures layout events for assertions.
type recordingHooks struct {
	observability.NoopLayoutHooks

	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) OnLoadStart(_ context.Context, _ string) {
	h.record("load_start")
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, _ string, _, _ int, _ error) {
	h.record("load_complete")
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, algorithm string, _ int) {
	h.record("layout_start:" + algorithm)
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, _ string, _ time.Duration, _ error) {
	h.record("layout_complete")
}

func (h *recordingHooks) OnPackStart(_ context.Context, _ int) {
	h.record("pack_start")
}

func (h *recordingHooks) OnPackComplete(_ context.Context, _ int, _ time.Duration, _ error) {
	h.record("pack_complete")
}

func (h *recordingHooks) record(event string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func TestRunnerEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetLayoutHooks(hooks)
	defer observability.Reset()

	g := graph.Graph{
		Nodes: []graph.Node{{ID: "solo"}},
		Edges: []graph.Edge{{From: "a", To: "b"}},
	}

	runner := NewRunner(nil)
	if _, err := runner.Execute(context.Background(), g, Options{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{
		"layout_start:fruchterman-reingold",
		"pack_start",
		"pack_complete",
		"layout_complete",
	}
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.events) != len(want) {
		t.Fatalf("events = %v, want %v", hooks.events, want)
	}
	for i, e := range hooks.events {
		if e != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, e, want[i])
		}
	}
}
