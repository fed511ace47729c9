package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphforce/pkg/pipeline"
)

// fileConfig mirrors pipeline.Options for TOML config files. A config file
// sets defaults; command-line flags override it.
//
// Example:
//
//	iterations = 200
//	mode = "linear"
//	seed = 7
//
//	[canvas]
//	width = 16.0
//	height = 9.0
type fileConfig struct {
	K                  float64 `toml:"k"`
	InitialTemperature float64 `toml:"initial_temperature"`
	Iterations         int     `toml:"iterations"`
	Mode               string  `toml:"mode"`
	NodeSize           float64 `toml:"node_size"`
	Seed               uint64  `toml:"seed"`

	Canvas struct {
		OriginX float64 `toml:"origin_x"`
		OriginY float64 `toml:"origin_y"`
		Width   float64 `toml:"width"`
		Height  float64 `toml:"height"`
	} `toml:"canvas"`

	Packing struct {
		Power float64 `toml:"power"`
		PadBy float64 `toml:"pad_by"`
	} `toml:"packing"`
}

// loadConfig reads a TOML config file into pipeline options. An empty path
// returns zero options, leaving everything at library defaults.
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return opts, err
	}

	opts.K = cfg.K
	opts.InitialTemperature = cfg.InitialTemperature
	opts.Iterations = cfg.Iterations
	opts.Mode = cfg.Mode
	opts.NodeSize = cfg.NodeSize
	opts.Seed = cfg.Seed
	opts.OriginX = cfg.Canvas.OriginX
	opts.OriginY = cfg.Canvas.OriginY
	opts.Width = cfg.Canvas.Width
	opts.Height = cfg.Canvas.Height
	opts.Power = cfg.Packing.Power
	opts.PadBy = cfg.Packing.PadBy
	return opts, nil
}
