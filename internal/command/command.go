// Package command builds the exact argument vectors for the dlltool-family
// utilities.
package command

import (
	"fmt"
	"strings"

	"github.com/pyimplib/pyimplib/internal/toolchain"
)

// Invocation is a fully constructed external command: a program plus an
// ordered argument vector. Paths are passed as discrete arguments; nothing
// is ever joined into a shell string.
type Invocation struct {
	Path string
	Args []string
}

// String renders the command line for diagnostics.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Path
	}
	return i.Path + " " + strings.Join(i.Args, " ")
}

// Build constructs the invocation for a resolved toolchain variant, the
// written definition file and the desired import library path. Pure
// function; one argument layout per variant.
func Build(v toolchain.Variant, defPath, libPath string) Invocation {
	switch v.Kind {
	case toolchain.KindMinGW:
		return Invocation{
			Path: v.Tool,
			Args: []string{"--input-def", defPath, "--output-lib", libPath},
		}

	case toolchain.KindLLVM:
		return Invocation{
			Path: v.Tool,
			Args: []string{"-m", v.Machine, "-d", defPath, "-l", libPath},
		}

	case toolchain.KindVendorLib:
		return Invocation{
			Path: v.Tool,
			Args: []string{
				"/MACHINE:" + v.Machine,
				"/DEF:" + defPath,
				"/OUT:" + libPath,
			},
		}

	case toolchain.KindZigWrapper:
		// Same arguments as llvm-dlltool, invoked as "<driver> dlltool".
		args := append([]string{}, v.Args...)
		args = append(args, "dlltool", "-m", v.Machine, "-d", defPath, "-l", libPath)
		return Invocation{Path: v.Tool, Args: args}

	default:
		panic(fmt.Sprintf("command: unknown toolchain kind %d", v.Kind))
	}
}
