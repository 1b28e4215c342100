package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadNoFile(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if c.Addr != ":8080" {
		t.Errorf("addr: got %q", c.Addr)
	}
	if c.DBPath != filepath.Join("./data", "generations.db") {
		t.Errorf("db path not derived from data dir: %q", c.DBPath)
	}
	if c.Limits.MaxVoxels != 8_000_000 {
		t.Errorf("max voxels: got %d", c.Limits.MaxVoxels)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
addr: ":9090"
data_dir: "/tmp/vf"
limits:
  max_width: 64
  max_length: 64
  max_floors: 4
  max_voxels: 500000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":9090" {
		t.Errorf("addr: got %q", c.Addr)
	}
	if c.DBPath != filepath.Join("/tmp/vf", "generations.db") {
		t.Errorf("db path: got %q", c.DBPath)
	}
	if c.Limits.MaxWidth != 64 || c.Limits.MaxVoxels != 500000 {
		t.Errorf("limits not applied: %+v", c.Limits)
	}
	// Untouched keys keep their defaults.
	if c.DefaultStyle != "fantasy" {
		t.Errorf("default style lost: %q", c.DefaultStyle)
	}
}

func TestLoadEnvOverridesAddr(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7000")
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":7000" {
		t.Errorf("addr: got %q, want env override", c.Addr)
	}
}

func TestLoadRejectsBadLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "limits:\n  max_width: 10\n  max_length: 10\n  max_floors: 2\n  max_voxels: 99999999999\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "max_voxels") {
		t.Errorf("oversized max_voxels accepted: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing explicit config path should fail")
	}
}
