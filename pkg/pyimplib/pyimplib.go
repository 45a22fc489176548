// Package pyimplib generates import libraries for the Python DLL
// (either python3.dll or pythonXY.dll) for MinGW-w64 and MSVC
// (cross-)compile targets.
//
// The generator works directly from embedded Python ABI definition data and
// does not require Python distribution files on the (cross-)compile host.
// MSVC cross targets need LLVM binutils (llvm-dlltool) on PATH unless a
// vendor lib.exe or a zig driver (via the ZIG_COMMAND environment variable)
// is available.
package pyimplib

import (
	"context"

	"github.com/pyimplib/pyimplib/internal/generate"
	"github.com/pyimplib/pyimplib/internal/target"
)

// Version is a major.minor Python version selecting the version-specific
// pythonXY.dll import library.
type Version = target.Version

// ParseVersion parses a "major.minor" string such as "3.10".
func ParseVersion(s string) (Version, error) {
	return target.ParseVersion(s)
}

// Generator builds python3.dll or pythonXY.dll import libraries for one
// compile target.
type Generator struct {
	desc target.Descriptor
}

// New creates an import library generator for the given compile target.
// Arch and env follow the conventional target triple component vocabulary
// (e.g. "x86_64", "x86", "aarch64"; "gnu", "msvc").
func New(arch, env string) *Generator {
	return &Generator{desc: target.New(arch, env)}
}

// Version selects the version-specific pythonXY.dll import library. The
// version-agnostic python3.dll is generated when v is nil (the default).
func (g *Generator) Version(v *Version) *Generator {
	g.desc.Version = v
	return g
}

// Generate writes the definition file and the import library into outDir,
// creating the directory as needed. The external conversion utility runs
// synchronously with inherited standard streams; a non-zero exit status is
// reported as an error carrying the attempted command line.
func (g *Generator) Generate(ctx context.Context, outDir string) error {
	return generate.New().Generate(ctx, outDir, g.desc)
}

// GenerateImportLibraryForTarget generates the version-agnostic python3.dll
// import library for the given compile target in outDir.
func GenerateImportLibraryForTarget(ctx context.Context, outDir, arch, env string) error {
	return New(arch, env).Generate(ctx, outDir)
}
