//go:build windows

package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// vsTargetDirs maps target architecture names to the VC tools target
// subdirectory holding lib.exe for that architecture. Only architectures
// translatable to an *-pc-windows-msvc triple are probed.
var vsTargetDirs = map[string]string{
	"x86_64":  "x64",
	"x86":     "x86",
	"aarch64": "arm64",
}

// vsHostDirs maps the running process architecture (GOARCH) to the VC tools
// host directory name.
var vsHostDirs = map[string]string{
	"amd64": "Hostx64",
	"386":   "Hostx86",
	"arm64": "Hostarm64",
}

// findLibExe locates a Visual Studio lib.exe for the target architecture
// using vswhere, the canonical VS instance locator. Returns not found when
// vswhere, the VC tools, or the target architecture directory are missing.
func findLibExe(arch string) (string, bool) {
	targetDir, ok := vsTargetDirs[arch]
	if !ok {
		return "", false
	}
	hostDir, ok := vsHostDirs[runtime.GOARCH]
	if !ok {
		return "", false
	}

	installDir, ok := vsInstallDir()
	if !ok {
		return "", false
	}

	toolsVersion, ok := vcToolsVersion(installDir)
	if !ok {
		return "", false
	}

	libExe := filepath.Join(installDir, "VC", "Tools", "MSVC", toolsVersion,
		"bin", hostDir, targetDir, "lib.exe")
	if _, err := os.Stat(libExe); err != nil {
		return "", false
	}

	return libExe, true
}

// vsInstallDir asks vswhere for the newest VS instance with the VC tools
// component installed.
func vsInstallDir() (string, bool) {
	programFiles := os.Getenv("ProgramFiles(x86)")
	if programFiles == "" {
		programFiles = os.Getenv("ProgramFiles")
	}
	if programFiles == "" {
		return "", false
	}

	vswhere := filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", "vswhere.exe")
	out, err := exec.Command(vswhere,
		"-latest",
		"-products", "*",
		"-requires", "Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
		"-property", "installationPath",
	).Output()
	if err != nil {
		return "", false
	}

	installDir := strings.TrimSpace(string(out))
	return installDir, installDir != ""
}

// vcToolsVersion reads the default VC tools version marker of a VS instance.
func vcToolsVersion(installDir string) (string, bool) {
	marker := filepath.Join(installDir, "VC", "Auxiliary", "Build",
		"Microsoft.VCToolsVersion.default.txt")
	data, err := os.ReadFile(marker)
	if err != nil {
		return "", false
	}

	version := strings.TrimSpace(string(data))
	return version, version != ""
}
