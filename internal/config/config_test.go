package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty (embedded catalog)", cfg.CatalogPath)
	}
}

func TestLoadCatalogPathOverride(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/tmp/custom-catalog.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CatalogPath != "/tmp/custom-catalog.json" {
		t.Errorf("CatalogPath = %q, want override", cfg.CatalogPath)
	}
}
