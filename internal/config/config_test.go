package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/target"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
output_dir: target/python3-dll
targets:
  - arch: x86_64
    env: gnu
  - arch: aarch64
    env: msvc
    version: "3.11"
`)

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}

	if cfg.OutputDir != "target/python3-dll" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "target/python3-dll")
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("len(Targets) = %d, want 2", len(cfg.Targets))
	}

	desc, err := cfg.Targets[1].Descriptor()
	if err != nil {
		t.Fatalf("Descriptor() error = %v", err)
	}
	if desc.Arch != "aarch64" || desc.Env != "msvc" {
		t.Errorf("Descriptor() = %v, want aarch64-msvc", desc)
	}
	if desc.Version == nil || *desc.Version != (target.Version{Major: 3, Minor: 11}) {
		t.Errorf("Descriptor() version = %v, want 3.11", desc.Version)
	}
}

func TestLoadAndValidate_DefaultOutputDir(t *testing.T) {
	path := writeConfig(t, `
targets:
  - arch: x86_64
    env: gnu
`)

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want default %q", cfg.OutputDir, ".")
	}
}

func TestLoadAndValidate_MissingTargets(t *testing.T) {
	path := writeConfig(t, `output_dir: out`)

	_, err := LoadAndValidate(path)
	if err == nil {
		t.Fatal("LoadAndValidate() expected error for missing targets")
	}
	if !errors.IsKind(err, errors.KindValidation) {
		t.Errorf("error kind = %v, want KindValidation", err)
	}
}

func TestLoadAndValidate_UnknownField(t *testing.T) {
	path := writeConfig(t, `
targets:
  - arch: x86_64
    env: gnu
    flavor: extra
`)

	if _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate() expected error for unknown field")
	}
}

func TestLoadAndValidate_BadVersionPattern(t *testing.T) {
	path := writeConfig(t, `
targets:
  - arch: x86_64
    env: msvc
    version: "3"
`)

	if _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate() expected error for bad version pattern")
	}
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadAndValidate() expected error for missing file")
	}
}

func TestTargetEntry_DescriptorBadVersion(t *testing.T) {
	entry := TargetEntry{Arch: "x86_64", Env: "gnu", Version: "3.x"}
	if _, err := entry.Descriptor(); err == nil {
		t.Error("Descriptor() expected error for invalid version")
	}
}
