// Package defs provides the embedded Python DLL symbol definition documents.
//
// One document exists per supported Python version plus a version-agnostic
// one describing the python3.dll Stable ABI. The documents are fixed at
// compile time and never generated or modified at runtime.
package defs

import (
	"embed"
	"fmt"
	"sort"

	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/target"
)

//go:embed assets/*.def
var assets embed.FS

// Asset is a symbol definition document ready to be written to disk.
type Asset struct {
	FileName string
	Content  []byte
}

// supported enumerates the version-specific definition documents.
// The version-agnostic python3.def is always available.
var supported = map[target.Version]string{
	{Major: 3, Minor: 7}:  "python37.def",
	{Major: 3, Minor: 8}:  "python38.def",
	{Major: 3, Minor: 9}:  "python39.def",
	{Major: 3, Minor: 10}: "python310.def",
	{Major: 3, Minor: 11}: "python311.def",
}

// Lookup returns the definition document for the requested Python version.
// A nil version selects the version-agnostic python3.def document. Versions
// outside the supported set fail with an UnsupportedVersion error.
func Lookup(v *target.Version) (Asset, error) {
	name := "python3.def"
	if v != nil {
		versioned, ok := supported[*v]
		if !ok {
			return Asset{}, errors.UnsupportedVersion(v.Major, v.Minor)
		}
		name = versioned
	}

	content, err := assets.ReadFile("assets/" + name)
	if err != nil {
		// Unreachable for names present in the supported table.
		return Asset{}, fmt.Errorf("read embedded definition %s: %w", name, err)
	}

	return Asset{FileName: name, Content: content}, nil
}

// SupportedVersions returns the version-specific definition documents
// available, in ascending version order.
func SupportedVersions() []target.Version {
	versions := make([]target.Version, 0, len(supported))
	for v := range supported {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		if versions[i].Major != versions[j].Major {
			return versions[i].Major < versions[j].Major
		}
		return versions[i].Minor < versions[j].Minor
	})
	return versions
}
