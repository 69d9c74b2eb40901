package domain

import "time"

// BuildInfo is the persisted per-asset record driving incremental rebuilds.
// The fingerprint covers the asset itself plus every path the compiler listed
// in the dependency file; a matching fingerprint means the generated module is
// still current and the asset can be skipped.
type BuildInfo struct {
	// Asset is the absolute path of the requesting asset.
	Asset string `json:"asset"`
	// Fingerprint is the hash over the asset and its dependency contents.
	Fingerprint string `json:"fingerprint"`
	// Dependencies are the absolute paths extracted from the last build's
	// dependency file.
	Dependencies []string `json:"dependencies"`
	// ModuleName is the dash-normalized crate name of the last build.
	ModuleName string `json:"module_name"`
	// BuiltAt is when the last successful build completed.
	BuiltAt time.Time `json:"built_at"`
}
