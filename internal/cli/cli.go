// Package cli provides command-line interface functionality for pyimplib.
package cli

import (
	"fmt"
	"strings"

	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/output"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

// GlobalOptions holds flags shared by all commands.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		fmt.Printf("pyimplib %s\n", Version)
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	out.SetQuiet(opts.Quiet)

	if len(remaining) == 0 {
		printUsage()
		return errors.ExitSuccess
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs, opts)
	case "batch":
		return cmdBatch(cmdArgs, opts)
	case "targets":
		return cmdTargets()
	case "versions":
		return cmdVersions()
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		printUsage()
		return errors.ExitConfigError
	}
}

// parseGlobalFlags extracts global flags, returning the remaining arguments.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			opts.Quiet = true
		case "-v", "--verbose":
			opts.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	return opts, remaining, nil
}

// parseValueFlags parses --flag value / --flag=value pairs from args using
// the provided flag set. Unrecognized arguments are an error.
func parseValueFlags(args []string, flags map[string]*string) error {
	i := 0
	for i < len(args) {
		arg := args[i]

		if eq := strings.IndexByte(arg, '='); eq > 0 {
			if dest, ok := flags[arg[:eq]]; ok {
				*dest = arg[eq+1:]
				i++
				continue
			}
		}

		if dest, ok := flags[arg]; ok {
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			*dest = args[i+1]
			i += 2
			continue
		}

		return fmt.Errorf("unexpected argument %q", arg)
	}
	return nil
}

// exitCodeFor maps an error to its CLI exit code.
func exitCodeFor(err error) int {
	if genErr, ok := err.(*errors.GenError); ok {
		return genErr.ExitCode()
	}
	return errors.ExitRuntimeError
}
