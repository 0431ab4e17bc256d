package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithScanMode()(cfg)
	if cfg.mode != ModeScan {
		t.Fatalf("WithScanMode() mode = %v, want %v", cfg.mode, ModeScan)
	}

	WithReportMode()(cfg)
	if cfg.mode != ModeReport {
		t.Fatalf("WithReportMode() mode = %v, want %v", cfg.mode, ModeReport)
	}
}

func TestNewStartConfig_DefaultsToReport(t *testing.T) {
	cfg := newStartConfig(nil)
	if cfg.mode != ModeReport {
		t.Fatalf("newStartConfig() mode = %v, want %v", cfg.mode, ModeReport)
	}
}
