// Package target describes the compile target an import library is built for.
package target

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pyimplib/pyimplib/internal/errors"
)

// Import library file extension for the GNU environment ABI (MinGW-w64).
const implibExtGNU = ".dll.a"

// Import library file extension for the MSVC environment ABI.
const implibExtMSVC = ".lib"

// versionRegex validates "major.minor" Python version strings.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// Version is a major.minor Python version, selecting the version-specific
// pythonXY.dll artifact family.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "major.minor" string such as "3.10".
func ParseVersion(s string) (Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.Configf("invalid Python version %q, expected major.minor", s)
	}

	major, err := strconv.ParseUint(m[1], 10, 8)
	if err != nil {
		return Version{}, errors.Configf("invalid Python major version in %q", s)
	}
	minor, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return Version{}, errors.Configf("invalid Python minor version in %q", s)
	}

	return Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

// Descriptor identifies a compile target by the architecture and environment
// ABI components of its target triple, plus an optional Python version.
// A nil Version selects the version-agnostic python3.dll artifact family.
// Descriptors are immutable once constructed.
type Descriptor struct {
	Arch    string
	Env     string
	Version *Version
}

// New creates a descriptor for the given architecture and environment ABI.
// The vocabulary follows the conventional compiler target triple components,
// e.g. "x86_64", "x86", "aarch64" and "gnu", "msvc".
func New(arch, env string) Descriptor {
	return Descriptor{Arch: arch, Env: env}
}

// WithVersion returns a copy of the descriptor selecting the version-specific
// pythonXY.dll artifact family.
func (d Descriptor) WithVersion(v Version) Descriptor {
	d.Version = &v
	return d
}

// LibraryBaseName returns "python3" or "pythonXY" depending on whether a
// version was requested.
func (d Descriptor) LibraryBaseName() string {
	if d.Version != nil {
		return fmt.Sprintf("python%d%d", d.Version.Major, d.Version.Minor)
	}
	return "python3"
}

// ImportLibraryName returns the import library file name for the target.
// The extension is a pure function of the environment ABI: ".lib" for msvc,
// ".dll.a" for everything else.
func (d Descriptor) ImportLibraryName() string {
	ext := implibExtGNU
	if d.Env == "msvc" {
		ext = implibExtMSVC
	}
	return d.LibraryBaseName() + ext
}

func (d Descriptor) String() string {
	if d.Version != nil {
		return fmt.Sprintf("%s-%s (python %s)", d.Arch, d.Env, d.Version)
	}
	return fmt.Sprintf("%s-%s", d.Arch, d.Env)
}
