package domain

import (
	"path/filepath"
	"strings"
)

// AssetKind classifies a requested file by what the pipeline can do with it.
type AssetKind uint8

const (
	// KindUnsupported marks a file the pipeline cannot handle.
	KindUnsupported AssetKind = iota
	// KindCrateManifest marks a Cargo.toml manifest, built as a crate.
	KindCrateManifest
	// KindRustSource marks a .rs file, built via its enclosing crate.
	KindRustSource
	// KindConfig marks a generic TOML file, parsed but not built.
	KindConfig
)

// String returns a human readable name for the asset kind.
func (k AssetKind) String() string {
	switch k {
	case KindCrateManifest:
		return "crate-manifest"
	case KindRustSource:
		return "rust-source"
	case KindConfig:
		return "config"
	default:
		return "unsupported"
	}
}

// ClassifyAsset decides the asset kind purely from the file name. Manifest
// matching tolerates case, matching cargo's own behavior on case-insensitive
// filesystems.
func ClassifyAsset(path string) AssetKind {
	base := filepath.Base(path)
	if strings.EqualFold(base, CargoManifestName) {
		return KindCrateManifest
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".rs":
		return KindRustSource
	case ".toml":
		return KindConfig
	default:
		return KindUnsupported
	}
}

// Target is the consumption context of the generated module.
type Target string

const (
	// TargetNode targets a server-side JavaScript runtime.
	TargetNode Target = "node"
	// TargetBrowser targets a bundled browser build.
	TargetBrowser Target = "browser"
)

// ParseTarget parses a user-supplied target name.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "node", "nodejs":
		return TargetNode, nil
	case "browser", "bundler":
		return TargetBrowser, nil
	default:
		return "", ErrInvalidTarget
	}
}

// PackTarget returns the --target value passed to wasm-pack. The browser
// case uses the bundler format rather than wasm-pack's raw web format, since
// the host bundler cannot trace the dynamic import the web format requires.
func (t Target) PackTarget() string {
	if t == TargetNode {
		return "nodejs"
	}
	return "bundler"
}

// BindgenTarget returns the --target value passed to wasm-bindgen.
func (t Target) BindgenTarget() string {
	if t == TargetNode {
		return "nodejs"
	}
	return "web"
}
