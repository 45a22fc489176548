package cli

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pyimplib/pyimplib/internal/config"
	"github.com/pyimplib/pyimplib/internal/defs"
	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/generate"
	"github.com/pyimplib/pyimplib/internal/target"
)

// cmdGenerate synthesizes a single import library.
func cmdGenerate(args []string, opts *GlobalOptions) int {
	var arch, env, version, outDir string
	flags := map[string]*string{
		"--arch":   &arch,
		"--env":    &env,
		"--python": &version,
		"--out":    &outDir,
	}

	if err := parseValueFlags(args, flags); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if arch == "" || env == "" {
		out.ErrorPrefix("generate requires --arch and --env")
		return errors.ExitConfigError
	}
	if outDir == "" {
		outDir = "."
	}

	desc := target.New(arch, env)
	if version != "" {
		v, err := target.ParseVersion(version)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitConfigError
		}
		desc = desc.WithVersion(v)
	}

	gen := generate.New()
	gen.SetVerbose(opts.Verbose)

	if err := gen.Generate(context.Background(), outDir, desc); err != nil {
		out.ErrorPrefix("%v", err)
		return exitCodeFor(err)
	}

	out.Success("generated %s for %s", desc.ImportLibraryName(), desc)
	return errors.ExitSuccess
}

// cmdBatch generates import libraries for every target in a configuration
// file. It stops on the first failure.
func cmdBatch(args []string, opts *GlobalOptions) int {
	configPath := config.DefaultFileName
	flags := map[string]*string{"--config": &configPath}

	if err := parseValueFlags(args, flags); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return exitCodeFor(err)
	}

	gen := generate.New()
	gen.SetVerbose(opts.Verbose)

	for _, entry := range cfg.Targets {
		desc, err := entry.Descriptor()
		if err != nil {
			out.ErrorPrefix("%v", err)
			return exitCodeFor(err)
		}

		if err := gen.Generate(context.Background(), cfg.OutputDir, desc); err != nil {
			out.ErrorPrefix("%s: %v", desc, err)
			return exitCodeFor(err)
		}
		out.Info("generated %s for %s", desc.ImportLibraryName(), desc)
	}

	out.Success("generated %d import libraries in %s", len(cfg.Targets), cfg.OutputDir)
	return errors.ExitSuccess
}

// cmdTargets lists the supported architecture and environment ABI
// combinations together with the toolchain each one resolves to.
func cmdTargets() int {
	out.Table(
		[]string{"ARCH", "ENV", "TOOLCHAIN"},
		[][]string{
			{"x86_64", "gnu", "x86_64-w64-mingw32-dlltool"},
			{"x86", "gnu", "i686-w64-mingw32-dlltool"},
			{"x86_64", "msvc", "lib.exe or llvm-dlltool"},
			{"x86", "msvc", "lib.exe or llvm-dlltool"},
			{"aarch64", "msvc", "lib.exe or llvm-dlltool"},
		},
	)
	out.Println("")
	out.Println("Setting ZIG_COMMAND overrides the table and uses `<driver> dlltool` for any target.")
	return errors.ExitSuccess
}

// cmdVersions lists the Python versions with embedded definition documents.
func cmdVersions() int {
	items := []string{"3 (version-agnostic python3.dll, Stable ABI)"}
	for _, v := range defs.SupportedVersions() {
		items = append(items, fmt.Sprintf("%s (python%d%d.dll)", v, v.Major, v.Minor))
	}
	out.List(items)
	return errors.ExitSuccess
}

func printUsage() {
	titleCase := cases.Title(language.English)

	out.Println("pyimplib %s - Python DLL import library generator", Version)
	out.Section("Usage:")
	out.Println("  pyimplib <command> [flags]")

	out.Section("Commands:")
	out.Table(
		[]string{"COMMAND", "DESCRIPTION"},
		[][]string{
			{"generate", "Generate an import library for one compile target"},
			{"batch", "Generate import libraries for every target in " + config.DefaultFileName},
			{"targets", "List supported architecture/environment combinations"},
			{"versions", "List supported Python versions"},
			{"version", "Print the pyimplib version"},
			{"help", "Show this help"},
		},
	)

	out.Section("Flags:")
	out.Println("  --arch <arch>       Target architecture (generate)")
	out.Println("  --env <env>         Target environment ABI (generate)")
	out.Println("  --python <ver>      Python version, e.g. 3.11 (generate)")
	out.Println("  --out <dir>         Output directory (generate)")
	out.Println("  --config <file>     Configuration file (batch)")
	out.Println("  -q, --quiet         Suppress informational output")
	out.Println("  -v, --verbose       Echo tool invocations")

	out.Section("Examples:")
	for _, example := range []struct{ cmd, what string }{
		{"pyimplib generate --arch x86_64 --env gnu --out target/python3-dll", "generate python3.dll.a"},
		{"pyimplib generate --arch aarch64 --env msvc --python 3.11", "generate python311.lib"},
		{"pyimplib batch --config pyimplib.yaml", "generate every configured target"},
	} {
		out.Println("  %-68s %s", example.cmd, titleCase.String(example.what))
	}
	out.Println("")
}
