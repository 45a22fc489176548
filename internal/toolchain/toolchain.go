// Package toolchain resolves which dlltool-family utility fits a compile
// target and the host it is resolved on.
package toolchain

// Canonical MinGW-w64 dlltool program name (64-bit).
const dlltoolGNU = "x86_64-w64-mingw32-dlltool"

// Canonical MinGW-w64 dlltool program name (32-bit).
const dlltoolGNU32 = "i686-w64-mingw32-dlltool"

// Canonical dlltool program name for the MSVC environment ABI (LLVM dlltool).
const dlltoolLLVM = "llvm-dlltool"

// ZigCommandEnv names the environment variable that designates an alternate
// toolchain driver command line (e.g. "zig" or "python3 -m ziglang").
const ZigCommandEnv = "ZIG_COMMAND"

// Kind discriminates the closed set of toolchain variants.
type Kind int

const (
	// KindMinGW is a prefixed MinGW-w64 dlltool binary.
	KindMinGW Kind = iota
	// KindLLVM is the llvm-dlltool binary.
	KindLLVM
	// KindVendorLib is a vendor-supplied lib.exe archiver located on the host.
	KindVendorLib
	// KindZigWrapper is a zig (or zig-compatible) driver invoked as
	// "<driver> dlltool".
	KindZigWrapper
)

func (k Kind) String() string {
	switch k {
	case KindMinGW:
		return "mingw"
	case KindLLVM:
		return "llvm"
	case KindVendorLib:
		return "vendor-lib"
	case KindZigWrapper:
		return "zig-wrapper"
	default:
		return "unknown"
	}
}

// Variant is a resolved toolchain utility. It is a closed tagged union:
// every use site switches exhaustively over Kind. A variant is chosen once
// per generation call and never mutated afterward.
type Variant struct {
	Kind Kind

	// Tool is the program to invoke: a prefixed dlltool name for MinGW,
	// "llvm-dlltool" for LLVM, the discovered lib.exe path for VendorLib,
	// or the driver program for ZigWrapper.
	Tool string

	// Args are leading driver arguments for ZigWrapper (the remainder of a
	// tokenized driver command line such as "python3 -m ziglang").
	Args []string

	// Machine is the target machine identifier in the vocabulary understood
	// by this variant's tool family. Empty for MinGW, which infers the
	// machine from its own binary prefix.
	Machine string
}

// LLVMMachine translates a target architecture name to the machine
// vocabulary of the LLVM, MinGW and zig dlltool family. Unknown
// architectures pass through unchanged; the invoked tool reports them.
func LLVMMachine(arch string) string {
	switch arch {
	case "x86_64":
		return "i386:x86-64"
	case "x86":
		return "i386"
	case "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// VendorMachine translates a target architecture name to the machine
// vocabulary of the vendor lib.exe archiver family. The two tool families
// use incompatible spellings for the same architectures, so this table is
// kept independent of LLVMMachine. Unknown architectures pass through.
func VendorMachine(arch string) string {
	switch arch {
	case "x86_64":
		return "X64"
	case "x86":
		return "X86"
	case "aarch64":
		return "ARM64"
	default:
		return arch
	}
}
