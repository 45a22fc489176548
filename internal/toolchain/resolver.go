package toolchain

import (
	"strings"

	"github.com/pyimplib/pyimplib/internal/errors"
)

// Resolve picks the best matching dlltool flavor for the target, consulting
// the host for environment overrides and installed vendor tools.
//
// Priority order, first match wins:
//
//  1. ZIG_COMMAND set → ZigWrapper, unconditionally. When the build uses an
//     alternate driver as its linker, its toolchain utilities must match, so
//     the override applies even to otherwise unsupported arch/env
//     combinations. That permissiveness is deliberate: the wrapped driver
//     itself rejects machine identifiers it does not understand.
//  2. (x86_64|x86, gnu) → the corresponding prefixed MinGW-w64 dlltool.
//  3. (any, msvc) → a vendor lib.exe if the host has one, else llvm-dlltool.
//  4. Anything else → UnsupportedTarget.
func Resolve(host Host, arch, env string) (Variant, error) {
	machine := LLVMMachine(arch)

	if cmdline, ok := host.LookupEnv(ZigCommandEnv); ok {
		if v, ok := zigVariant(cmdline, machine); ok {
			return v, nil
		}
	}

	switch {
	case arch == "x86_64" && env == "gnu":
		return Variant{Kind: KindMinGW, Tool: dlltoolGNU}, nil

	case arch == "x86" && env == "gnu":
		return Variant{Kind: KindMinGW, Tool: dlltoolGNU32}, nil

	case env == "msvc":
		if path, ok := host.FindVendorTool(arch); ok {
			return Variant{Kind: KindVendorLib, Tool: path, Machine: VendorMachine(arch)}, nil
		}
		return Variant{Kind: KindLLVM, Tool: dlltoolLLVM, Machine: machine}, nil

	default:
		return Variant{}, errors.UnsupportedTarget(arch, env)
	}
}

// zigVariant tokenizes an alternate driver command line on whitespace into a
// program and leading arguments. An empty or blank command line is treated
// as unset.
func zigVariant(cmdline, machine string) (Variant, bool) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return Variant{}, false
	}

	return Variant{
		Kind:    KindZigWrapper,
		Tool:    fields[0],
		Args:    fields[1:],
		Machine: machine,
	}, true
}
