// Package generate orchestrates import library synthesis: it materializes
// the embedded definition document, resolves a toolchain, builds its
// invocation and runs it.
package generate

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pyimplib/pyimplib/internal/command"
	"github.com/pyimplib/pyimplib/internal/defs"
	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/output"
	"github.com/pyimplib/pyimplib/internal/target"
	"github.com/pyimplib/pyimplib/internal/toolchain"
)

// Generator runs the end-to-end artifact synthesis sequence. The zero value
// is not usable; construct with New.
type Generator struct {
	host    toolchain.Host
	out     *output.Writer
	verbose bool
}

// New creates a generator backed by the real host environment.
func New() *Generator {
	return &Generator{
		host: toolchain.SystemHost{},
		out:  output.New(),
	}
}

// NewWithHost creates a generator with a custom host seam. Tests use this
// to fabricate environment variables and vendor tool discovery.
func NewWithHost(host toolchain.Host) *Generator {
	return &Generator{host: host, out: output.New()}
}

// SetVerbose enables command echoing before execution.
func (g *Generator) SetVerbose(v bool) {
	g.verbose = v
}

// Generate synthesizes the import library for the target in outDir.
//
// Each step is a hard sequence point: ensure the output directory exists,
// write the definition file (overwriting unconditionally), resolve the
// toolchain, build its command, run it synchronously with inherited stdio.
// Every failure is terminal; nothing is retried and partial artifacts are
// left in place (the definition file may remain when the tool fails).
func (g *Generator) Generate(ctx context.Context, outDir string, desc target.Descriptor) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	asset, err := defs.Lookup(desc.Version)
	if err != nil {
		return err
	}

	defPath := filepath.Join(outDir, asset.FileName)
	if err := os.WriteFile(defPath, asset.Content, 0o644); err != nil {
		return err
	}

	libPath := filepath.Join(outDir, desc.ImportLibraryName())

	variant, err := toolchain.Resolve(g.host, desc.Arch, desc.Env)
	if err != nil {
		return err
	}

	inv := command.Build(variant, defPath, libPath)
	return g.run(ctx, inv)
}

// run executes the tool invocation, blocking until the child exits. Exit
// code 0 is the only success signal.
func (g *Generator) run(ctx context.Context, inv command.Invocation) error {
	if g.verbose {
		g.out.Info("Running: %s", inv)
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return errors.ToolInvocation(inv.String(), err)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.ToolExit(inv.String(), exitErr.ExitCode())
		}
		return errors.ToolInvocation(inv.String(), err)
	}

	return nil
}
