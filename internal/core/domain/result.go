package domain

import "time"

// BuildResult describes where a strategy left the generated module. It is
// assembled incrementally by the strategy that ran and is immutable
// afterwards.
type BuildResult struct {
	// CrateDir is the absolute directory of the built crate.
	CrateDir string
	// OutDir is the absolute directory holding the generated JS and wasm.
	OutDir string
	// ModuleName is the dash-normalized crate name used in generated file names.
	ModuleName string
}

// AssetBuild is the complete per-asset result handed to the host.
type AssetBuild struct {
	// Asset is the absolute path of the requesting asset.
	Asset string
	// Kind is the classified asset kind.
	Kind AssetKind
	// Result is the strategy's build result. Zero for config assets.
	Result BuildResult
	// Artifacts are the four artifact paths relative to the asset directory.
	// Zero for config assets.
	Artifacts OutputArtifacts
	// Dependencies are the absolute source paths the asset depends on,
	// excluding the asset itself.
	Dependencies []string
	// Content is the emitted JavaScript asset content. Empty for config assets.
	Content string
	// Config holds the parsed document for config assets, nil otherwise.
	Config map[string]any
	// Elapsed is the wall time the build took.
	Elapsed time.Duration
}
