// Package domain contains the core data model and the pure decision logic
// of the build pipeline.
package domain

import "path/filepath"

const (
	// CrabDirName is the name of the internal workspace directory.
	CrabDirName = ".crab"

	// BuildInfoFileName is the name of the build info store file.
	BuildInfoFileName = "buildinfo.json"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "crab.yaml"

	// CargoManifestName is the file name of a crate manifest.
	CargoManifestName = "Cargo.toml"

	// PkgDirName is the output directory wasm-pack creates inside a crate.
	PkgDirName = "pkg"

	// CargoTargetDirName is cargo's shared build output directory.
	CargoTargetDirName = "target"

	// WasmTriple is the compilation target triple for WebAssembly output.
	WasmTriple = "wasm32-unknown-unknown"

	// DepInfoExt is the extension of the compiler-emitted dependency file.
	DepInfoExt = ".d"

	// EmitSuffix is appended to the requesting asset's path to name the
	// emitted JavaScript asset.
	EmitSuffix = ".crab.js"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Tool names probed and invoked by the pipeline.
const (
	ToolCargo       = "cargo"
	ToolWasmPack    = "wasm-pack"
	ToolWasmBindgen = "wasm-bindgen"
)

// DefaultCrabPath returns the default root directory for crab metadata,
// relative to the project root.
func DefaultCrabPath() string {
	return CrabDirName
}

// DefaultBuildInfoPath returns the default path for the build info store,
// relative to the project root.
func DefaultBuildInfoPath() string {
	return filepath.Join(CrabDirName, BuildInfoFileName)
}
