package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphforce/pkg/graph"
	"github.com/matzehuels/graphforce/pkg/pipeline"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output      string  // output file path ("-" or empty means stdout)
	config      string  // optional TOML config file
	iterations  int     // simulation iterations
	temperature float64 // initial temperature
	mode        string  // temperature schedule: "quadratic" or "linear"
	seed        uint64  // random seed
	k           float64 // optimal edge length (0 derives from canvas area)
	nodeSize    float64 // uniform node size
	originX     float64 // canvas origin x
	originY     float64 // canvas origin y
	width       float64 // canvas width
	height      float64 // canvas height
	power       float64 // component footprint exponent
	padBy       float64 // component box padding fraction
}

// newLayoutCmd creates the layout command for computing node positions.
// It reads a graph JSON file, runs the force simulation, and writes a
// positions JSON mapping.
//
// Default settings:
//   - iterations: 50, quadratic temperature schedule
//   - canvas: unit box at the origin
//   - seed: 42 (reproducible output)
func newLayoutCmd() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute force-directed node positions for a graph",
		Long: `Compute Fruchterman-Reingold node positions for a graph JSON file.

Disconnected graphs are handled by packing each connected component into its
own region of the canvas before running the simulation per component. Output
is a JSON object mapping node IDs to coordinates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file with layout defaults")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "number of simulation iterations")
	cmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", 0, "initial temperature")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "temperature schedule: quadratic (default), linear")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible layouts")
	cmd.Flags().Float64VarP(&opts.k, "k", "k", 0, "optimal edge length (default: derived from canvas area)")
	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", 0, "uniform node size")
	cmd.Flags().Float64Var(&opts.originX, "origin-x", 0, "canvas origin x")
	cmd.Flags().Float64Var(&opts.originY, "origin-y", 0, "canvas origin y")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height")
	cmd.Flags().Float64Var(&opts.power, "power", 0, "component footprint exponent")
	cmd.Flags().Float64Var(&opts.padBy, "pad", 0, "component box padding fraction")

	return cmd
}

// runLayout executes the layout pipeline for the given input file.
func runLayout(cmd *cobra.Command, input string, opts *layoutOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := loadConfig(opts.config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyLayoutFlags(cmd, opts, &popts)
	popts.Logger = logger

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)

	outputPath := opts.output
	if outputPath == "-" {
		outputPath = ""
	}

	result, err := runner.ExecuteFile(ctx, input, outputPath, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed layout for %d nodes in %d components",
		result.Stats.NodeCount, result.Stats.ComponentCount))

	if outputPath == "" {
		data, err := graph.MarshalPositions(result.Positions)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// applyLayoutFlags overlays flags the user set explicitly onto the config
// file values. Unset flags leave the config (or library defaults) intact.
func applyLayoutFlags(cmd *cobra.Command, opts *layoutOpts, popts *pipeline.Options) {
	if cmd.Flags().Changed("iterations") {
		popts.Iterations = opts.iterations
	}
	if cmd.Flags().Changed("temperature") {
		popts.InitialTemperature = opts.temperature
	}
	if cmd.Flags().Changed("mode") {
		popts.Mode = opts.mode
	}
	if cmd.Flags().Changed("seed") {
		popts.Seed = opts.seed
	}
	if cmd.Flags().Changed("k") {
		popts.K = opts.k
	}
	if cmd.Flags().Changed("node-size") {
		popts.NodeSize = opts.nodeSize
	}
	if cmd.Flags().Changed("origin-x") {
		popts.OriginX = opts.originX
	}
	if cmd.Flags().Changed("origin-y") {
		popts.OriginY = opts.originY
	}
	if cmd.Flags().Changed("width") {
		popts.Width = opts.width
	}
	if cmd.Flags().Changed("height") {
		popts.Height = opts.height
	}
	if cmd.Flags().Changed("power") {
		popts.Power = opts.power
	}
	if cmd.Flags().Changed("pad") {
		popts.PadBy = opts.padBy
	}
}
