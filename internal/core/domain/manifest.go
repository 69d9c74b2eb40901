package domain

import "strings"

// CdylibCrateType is the crate-type required for WebAssembly output.
const CdylibCrateType = "cdylib"

// CrateManifest is the parsed representation of a crate's Cargo.toml, reduced
// to the fields the pipeline decides on.
type CrateManifest struct {
	// Name is the crate name as declared under [package].
	Name string
	// CrateTypes is the declared [lib] crate-type list.
	CrateTypes []string
	// Dir is the absolute directory containing the manifest.
	Dir string
}

// ModuleName returns the crate name normalized to the identifier the wasm
// toolchain uses for generated files: every dash becomes an underscore.
func (m CrateManifest) ModuleName() string {
	return strings.ReplaceAll(m.Name, "-", "_")
}

// HasCdylib reports whether the manifest declares the dynamic-library
// crate-type required for wasm compilation.
func (m CrateManifest) HasCdylib() bool {
	for _, t := range m.CrateTypes {
		if t == CdylibCrateType {
			return true
		}
	}
	return false
}
