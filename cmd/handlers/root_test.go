package handlers

import "testing"

func TestLoadConfigAppliesFlagOverrides(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{
		"--workers", "3",
		"--max-articles", "5",
		"--output", "out/custom.html",
		"--filter", "Economic Policy",
		"--fresh",
		"--export",
	}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Fetch.Workers != 3 {
		t.Errorf("workers = %d, want 3", cfg.Fetch.Workers)
	}
	if cfg.Pipeline.MaxPerFeed != 5 {
		t.Errorf("max per feed = %d, want 5", cfg.Pipeline.MaxPerFeed)
	}
	if cfg.Output.IndexPath != "out/custom.html" {
		t.Errorf("index path = %q", cfg.Output.IndexPath)
	}
	if cfg.Output.Filter != "Economic Policy" {
		t.Errorf("filter = %q", cfg.Output.Filter)
	}
	if !cfg.Pipeline.Fresh || !cfg.Output.Export {
		t.Error("fresh/export flags not applied")
	}
	// Untouched settings keep their defaults.
	if cfg.Fetch.GovConcurrency != 3 {
		t.Errorf("gov concurrency = %d, want default 3", cfg.Fetch.GovConcurrency)
	}
}

func TestLoadConfigLeavesDefaultsWithoutFlags(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Fetch.Workers != 6 {
		t.Errorf("workers = %d, want default 6", cfg.Fetch.Workers)
	}
	if cfg.Pipeline.Fresh {
		t.Error("fresh should default to false")
	}
}
