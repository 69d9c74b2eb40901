package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfiguration is returned when the profile override carries a value
	// outside the recognized set.
	ErrInvalidConfiguration = zerr.New("unrecognized build profile")

	// ErrInvalidManifest is returned when a crate manifest is unreadable or does not
	// declare a cdylib library target.
	ErrInvalidManifest = zerr.New("crate manifest does not declare a cdylib library target")

	// ErrToolchainMissing is returned when no usable combination of build tools is installed.
	ErrToolchainMissing = zerr.New("required build tools are not installed")

	// ErrBuildFailed is returned when an external build tool exits non-zero or the
	// fallback strategy fails for any reason.
	ErrBuildFailed = zerr.New("wasm build failed")

	// ErrDependencyParse is returned when the compiler-emitted dependency file is
	// unreadable or malformed.
	ErrDependencyParse = zerr.New("malformed dependency file")

	// ErrUnsupportedAsset is returned when a file is neither a crate manifest, a Rust
	// source file, nor a generic TOML configuration file.
	ErrUnsupportedAsset = zerr.New("unsupported asset type")

	// ErrInvalidTarget is returned when a target is invalid.
	ErrInvalidTarget = zerr.New("invalid target, expected 'node' or 'browser'")

	// ErrProjectNotFound is returned when the project file cannot be found.
	ErrProjectNotFound = zerr.New("could not find crab.yaml")

	// ErrProjectReadFailed is returned when the project file cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project file")

	// ErrProjectParseFailed is returned when the project file cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidProject is returned when the project configuration fails validation.
	ErrInvalidProject = zerr.New("invalid project configuration")

	// ErrNoAssetsSpecified is returned when no assets are specified for the build command.
	ErrNoAssetsSpecified = zerr.New("no assets specified")

	// ErrAssetNotFound is returned when a requested asset does not exist.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCommandTimedOut is returned when an external tool exceeds its time budget.
	ErrCommandTimedOut = zerr.New("command timed out")

	// ErrMetadataQueryFailed is returned when cargo metadata cannot be queried or parsed.
	ErrMetadataQueryFailed = zerr.New("failed to query cargo metadata")

	// ErrEmitWriteFailed is returned when the emitted asset cannot be written.
	ErrEmitWriteFailed = zerr.New("failed to write emitted asset")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")
)
