//go:build !windows

package toolchain

// findLibExe never finds a vendor archiver on non-Windows hosts; the
// resolver falls through to llvm-dlltool for MSVC cross targets.
func findLibExe(arch string) (string, bool) {
	return "", false
}
