package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphforce/pkg/graph"
	"github.com/matzehuels/graphforce/pkg/layout"
	"github.com/matzehuels/graphforce/pkg/layout/pack"
	"github.com/matzehuels/graphforce/pkg/observability"
)

// algorithmName identifies the layout algorithm in observability events.
const algorithmName = "fruchterman-reingold"

// =============================================================================
// Runner - Pipeline Execution
// =============================================================================

// Stats captures metrics about a pipeline execution.
type Stats struct {
	NodeCount      int           `json:"node_count"`
	EdgeCount      int           `json:"edge_count"`
	ComponentCount int           `json:"component_count"`
	LoadTime       time.Duration `json:"load_time,omitempty"`
	LayoutTime     time.Duration `json:"layout_time"`
	ExportTime     time.Duration `json:"export_time,omitempty"`
}

// Result contains the output of a pipeline execution.
type Result struct {
	Positions graph.Positions `json:"positions"`
	Stats     Stats           `json:"stats"`
}

// Runner executes the layout pipeline. The zero value is usable; Logger
// defaults to a silent logger.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a Runner with the given logger. A nil logger disables
// logging.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Execute lays out a graph and returns positions plus execution stats.
//
// Every graph goes through component decomposition: connected components and
// declared unconnected nodes each receive a bounding box on the canvas, and
// the force simulation runs per component. A fully connected graph is the
// degenerate case of a single component filling the whole canvas.
func (r *Runner) Execute(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.logger()
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := Stats{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
	}

	edges := g.EdgeList()
	unconnected := g.UnconnectedNodes()
	stats.ComponentCount = componentCount(edges, unconnected)

	lopts := opts.layoutOptions()
	lopts.NodeSizes = g.NodeSizes()
	lopts.Logger = opts.Logger

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, algorithmName, stats.NodeCount)
	if stats.ComponentCount > 1 {
		hooks.OnPackStart(ctx, stats.ComponentCount)
	}

	start := time.Now()
	positions, err := layout.Multi(edges, unconnected, layout.MultiOptions{
		Origin: opts.Origin(),
		Scale:  opts.Scale(),
		Pack: pack.Options{
			Power: opts.Power,
			PadBy: opts.PadBy,
		},
		Layout: lopts,
	})
	stats.LayoutTime = time.Since(start)

	if stats.ComponentCount > 1 {
		hooks.OnPackComplete(ctx, stats.ComponentCount, stats.LayoutTime, err)
	}
	hooks.OnLayoutComplete(ctx, algorithmName, stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.logger().Info("computed layout",
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"components", stats.ComponentCount,
		"duration", stats.LayoutTime)

	return &Result{Positions: positions, Stats: stats}, nil
}

// ExecuteFile runs the full load → layout → export pipeline between files.
// An empty outputPath skips the export stage; callers then write
// result.Positions themselves.
func (r *Runner) ExecuteFile(ctx context.Context, inputPath, outputPath string, opts Options) (*Result, error) {
	hooks := observability.Layout()

	// Stage 1: load
	hooks.OnLoadStart(ctx, inputPath)
	start := time.Now()
	g, err := graph.ReadGraphFile(inputPath)
	loadTime := time.Since(start)
	hooks.OnLoadComplete(ctx, inputPath, g.NodeCount(), g.EdgeCount(), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.logger().Info("loaded graph",
		"path", inputPath,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", loadTime)

	// Stage 2: layout
	result, err := r.Execute(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime

	// Stage 3: export
	if outputPath != "" {
		start = time.Now()
		if err := graph.WritePositionsFile(result.Positions, outputPath); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		result.Stats.ExportTime = time.Since(start)
		r.logger().Info("wrote positions",
			"path", outputPath,
			"duration", result.Stats.ExportTime)
	}

	return result, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}

// componentCount counts connected components plus singleton nodes.
func componentCount(edges []graph.Edge, unconnected []string) int {
	return len(graph.ConnectedComponents(graph.AdjacencyList(edges))) + len(unconnected)
}
