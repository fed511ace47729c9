package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigEmpty(t *testing.T) {
	opts, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error = %v", err)
	}
	if opts.Iterations != 0 || opts.Width != 0 {
		t.Errorf("empty path should return zero options, got %+v", opts)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
iterations = 200
mode = "linear"
seed = 7
node_size = 3.0

[canvas]
width = 16.0
height = 9.0
origin_x = -8.0

[packing]
power = 0.9
pad_by = 0.1
`
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if opts.Iterations != 200 {
		t.Errorf("Iterations = %d, want 200", opts.Iterations)
	}
	if opts.Mode != "linear" {
		t.Errorf("Mode = %q, want linear", opts.Mode)
	}
	if opts.Seed != 7 {
		t.Errorf("Seed = %d, want 7", opts.Seed)
	}
	if opts.NodeSize != 3.0 {
		t.Errorf("NodeSize = %g, want 3", opts.NodeSize)
	}
	if opts.Width != 16.0 || opts.Height != 9.0 {
		t.Errorf("canvas = %g x %g, want 16 x 9", opts.Width, opts.Height)
	}
	if opts.OriginX != -8.0 {
		t.Errorf("OriginX = %g, want -8", opts.OriginX)
	}
	if opts.Power != 0.9 || opts.PadBy != 0.1 {
		t.Errorf("packing = %g / %g, want 0.9 / 0.1", opts.Power, opts.PadBy)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("iterations = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
