package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pyimplib/pyimplib/internal/errors"
)

func TestRun_NoArgsShowsUsage(t *testing.T) {
	if code := Run(nil); code != errors.ExitSuccess {
		t.Errorf("Run() = %d, want %d", code, errors.ExitSuccess)
	}
}

func TestRun_Version(t *testing.T) {
	if code := Run([]string{"version"}); code != errors.ExitSuccess {
		t.Errorf("Run(version) = %d, want %d", code, errors.ExitSuccess)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code := Run([]string{"frobnicate"}); code != errors.ExitConfigError {
		t.Errorf("Run(frobnicate) = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestRun_TargetsAndVersions(t *testing.T) {
	if code := Run([]string{"targets"}); code != errors.ExitSuccess {
		t.Errorf("Run(targets) = %d, want %d", code, errors.ExitSuccess)
	}
	if code := Run([]string{"versions"}); code != errors.ExitSuccess {
		t.Errorf("Run(versions) = %d, want %d", code, errors.ExitSuccess)
	}
}

func TestRun_GenerateMissingFlags(t *testing.T) {
	if code := Run([]string{"generate"}); code != errors.ExitConfigError {
		t.Errorf("Run(generate) = %d, want %d", code, errors.ExitConfigError)
	}
	if code := Run([]string{"generate", "--arch", "x86_64"}); code != errors.ExitConfigError {
		t.Errorf("Run(generate --arch x86_64) = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestRun_GenerateBadVersion(t *testing.T) {
	code := Run([]string{"generate", "--arch", "x86_64", "--env", "gnu", "--python", "3.x"})
	if code != errors.ExitConfigError {
		t.Errorf("Run(generate --python 3.x) = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestRun_GenerateUnsupportedTarget(t *testing.T) {
	code := Run([]string{"generate", "--arch", "x86_64", "--env", "linux", "--out", t.TempDir()})
	if code != errors.ExitEnvironmentError {
		t.Errorf("Run(generate --env linux) = %d, want %d", code, errors.ExitEnvironmentError)
	}
}

func TestRun_QuietVerboseConflict(t *testing.T) {
	code := Run([]string{"--quiet", "--verbose", "targets"})
	if code != errors.ExitConfigError {
		t.Errorf("Run(--quiet --verbose) = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestRun_GenerateEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are POSIX shell scripts")
	}

	binDir := t.TempDir()
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(filepath.Join(binDir, "x86_64-w64-mingw32-dlltool"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("ZIG_COMMAND", "")

	outDir := t.TempDir()
	code := Run([]string{"generate", "--arch", "x86_64", "--env", "gnu", "--out", outDir})
	if code != errors.ExitSuccess {
		t.Fatalf("Run(generate) = %d, want %d", code, errors.ExitSuccess)
	}

	if _, err := os.Stat(filepath.Join(outDir, "python3.def")); err != nil {
		t.Errorf("python3.def not written: %v", err)
	}
}

func TestParseValueFlags(t *testing.T) {
	var arch, env string
	flags := map[string]*string{"--arch": &arch, "--env": &env}

	if err := parseValueFlags([]string{"--arch", "x86_64", "--env=msvc"}, flags); err != nil {
		t.Fatalf("parseValueFlags() error = %v", err)
	}
	if arch != "x86_64" {
		t.Errorf("arch = %q, want %q", arch, "x86_64")
	}
	if env != "msvc" {
		t.Errorf("env = %q, want %q", env, "msvc")
	}
}

func TestParseValueFlags_MissingValue(t *testing.T) {
	var arch string
	if err := parseValueFlags([]string{"--arch"}, map[string]*string{"--arch": &arch}); err == nil {
		t.Error("parseValueFlags(--arch) expected error")
	}
}

func TestParseValueFlags_UnknownArgument(t *testing.T) {
	if err := parseValueFlags([]string{"--bogus", "x"}, map[string]*string{}); err == nil {
		t.Error("parseValueFlags(--bogus) expected error")
	}
}
