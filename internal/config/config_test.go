package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Profile.SnapFraction != 0.05 {
		t.Errorf("default snap fraction = %v, want 0.05", cfg.Profile.SnapFraction)
	}
	if cfg.Profile.GridDivisor != 5 {
		t.Errorf("default grid divisor = %v, want 5", cfg.Profile.GridDivisor)
	}
	if cfg.Mesh.CacheEntries <= 0 {
		t.Errorf("default cache entries must be positive, got %d", cfg.Mesh.CacheEntries)
	}
	if !cfg.Blocks.AutoCenter {
		t.Error("auto-center should default to on")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "definitely-missing.yaml"))
	if err == nil {
		t.Error("explicit missing path should error")
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("empty path should fall back to defaults: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minevis.yaml")
	body := `
profile:
  snap_fraction: 0.1
  grid_divisor: 4
mesh:
  cache_entries: 8
  ramp: thermal
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Profile.SnapFraction != 0.1 {
		t.Errorf("snap fraction = %v, want 0.1", cfg.Profile.SnapFraction)
	}
	if cfg.Profile.GridDivisor != 4 {
		t.Errorf("grid divisor = %v, want 4", cfg.Profile.GridDivisor)
	}
	if cfg.Mesh.CacheEntries != 8 || cfg.Mesh.Ramp != "thermal" {
		t.Errorf("mesh config = %+v", cfg.Mesh)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}

	// Untouched values keep their defaults.
	if cfg.Profile.MinZoom != 0.5 || cfg.Profile.MaxZoom != 10 {
		t.Errorf("zoom limits should keep defaults: [%v, %v]", cfg.Profile.MinZoom, cfg.Profile.MaxZoom)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("profile: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid YAML should fail to load")
	}
}
