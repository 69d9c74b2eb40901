package domain

// Toolchain reports which external build tools are present on the executing
// host. It is probed fresh for every build and never cached across builds,
// since tools may be installed or removed between runs.
type Toolchain struct {
	HasCargo       bool
	HasWasmPack    bool
	HasWasmBindgen bool
}

// MissingTools returns the tools a user must install to make a build
// possible, in a stable order. The primary toolchain (wasm-pack) satisfies a
// build on its own; without it both cargo and wasm-bindgen are required.
func (t Toolchain) MissingTools() []string {
	if t.HasWasmPack || (t.HasCargo && t.HasWasmBindgen) {
		return nil
	}

	if t.HasCargo || t.HasWasmBindgen {
		// One half of the fallback pair is present. Installing wasm-pack is
		// the supported remediation, not completing the fallback pair.
		return []string{ToolWasmPack}
	}

	return []string{ToolWasmPack, ToolCargo, ToolWasmBindgen}
}
