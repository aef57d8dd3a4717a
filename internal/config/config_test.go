package config

import (
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Backend != "auto" {
		t.Fatalf("expected backend auto, got %q", cfg.App.Backend)
	}
	if cfg.App.Width != 0 || cfg.App.Verbose {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"TASKDIALOG_CONTROL_BACKEND=comctl",
		"TASKDIALOG_CONTROL_WIDTH=120",
		"TASKDIALOG_CONTROL_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"-backend", "term", "-width", "200"}, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Backend != "term" {
		t.Fatalf("expected flag to override env, got %q", cfg.App.Backend)
	}
	if cfg.App.Width != 200 {
		t.Fatalf("expected width 200, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"TASKDIALOG_CONTROL_BACKEND=term",
		"TASKDIALOG_CONTROL_VERBOSE=true",
		"TASKDIALOG_CONTROL_LOG_FILE=custom.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Backend != "term" {
		t.Fatalf("expected backend from environment, got %q", cfg.App.Backend)
	}
	if !cfg.App.Verbose || !cfg.Features.Verbose {
		t.Fatalf("expected verbose from environment")
	}
	if cfg.Logging.FilePath != "custom.log" {
		t.Fatalf("expected log file from environment, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsMalformedEnvironmentFallsBack(t *testing.T) {
	env := []string{
		"TASKDIALOG_CONTROL_WIDTH=not-a-number",
		"TASKDIALOG_CONTROL_TRACE=not-a-bool",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected width fallback, got %d", cfg.App.Width)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace fallback to false")
	}
}

func TestLoadArgsRejectsNegativeWidth(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-backend", "term", "-trace"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.Flags["backend"] != "term" || cfg.Flags["trace"] != "true" {
		t.Fatalf("unexpected flags map: %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) || cfg.Args[0] != "-backend" {
		t.Fatalf("unexpected args copy: %v", cfg.Args)
	}
}

func TestValidateBackendNames(t *testing.T) {
	for _, name := range []string{"auto", "comctl", "term"} {
		cfg, err := LoadArgs([]string{"-backend", name}, nil)
		if err != nil {
			t.Fatalf("LoadArgs failed for %q: %v", name, err)
		}
		if err := Validate(cfg); err != nil {
			t.Fatalf("expected %q to validate, got %v", name, err)
		}
	}
	cfg, err := LoadArgs([]string{"-backend", "gtk"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for unknown backend")
	}
}
