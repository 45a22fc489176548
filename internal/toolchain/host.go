package toolchain

import "os"

// Host is the seam between the resolver's decision table and the impure
// parts of toolchain resolution: environment variables and installed-binary
// discovery. Tests substitute a fabricated host to exercise the table
// deterministically.
type Host interface {
	// LookupEnv reports the value of an environment variable.
	LookupEnv(key string) (string, bool)

	// FindVendorTool locates a vendor-supplied lib.exe archiver for the
	// given target architecture. It reports the tool path and whether one
	// was found.
	FindVendorTool(arch string) (string, bool)
}

// SystemHost inspects the real process environment and the host filesystem.
// Environment reads are a snapshot taken at call time; nothing is cached.
type SystemHost struct{}

func (SystemHost) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FindVendorTool probes for a Visual Studio lib.exe. Discovery only happens
// on Windows hosts and only for architectures translatable to an
// *-pc-windows-msvc triple; everywhere else it reports not found and the
// resolver falls through to llvm-dlltool.
func (SystemHost) FindVendorTool(arch string) (string, bool) {
	return findLibExe(arch)
}
