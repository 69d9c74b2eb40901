package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Profile names a build optimization configuration understood by the wasm
// toolchain.
type Profile string

const (
	// ProfileDev builds without optimizations and with debug info.
	ProfileDev Profile = "dev"
	// ProfileRelease builds with full optimizations.
	ProfileRelease Profile = "release"
	// ProfileProfiling builds with optimizations and debug info for profilers.
	ProfileProfiling Profile = "profiling"
)

// Flag returns the profile flag passed to wasm-pack.
func (p Profile) Flag() string {
	return "--" + string(p)
}

// BuildOptions is the resolved build configuration for a single asset build.
// ReleaseMode and Profile are always consistent: release and profiling
// profiles imply release mode, the dev profile implies non-release mode.
type BuildOptions struct {
	// ReleaseMode reports whether the build is optimized.
	ReleaseMode bool
	// Profile is the named toolchain profile.
	Profile Profile
	// TargetSubdir is the profile subdirectory cargo writes artifacts to.
	TargetSubdir string
	// CargoFlag is the profile flag passed to cargo build.
	CargoFlag string
}

var (
	devOptions = BuildOptions{
		ReleaseMode:  false,
		Profile:      ProfileDev,
		TargetSubdir: "debug",
		CargoFlag:    "--debug",
	}
	releaseOptions = BuildOptions{
		ReleaseMode:  true,
		Profile:      ProfileRelease,
		TargetSubdir: "release",
		CargoFlag:    "--release",
	}
	profilingOptions = BuildOptions{
		ReleaseMode:  true,
		Profile:      ProfileProfiling,
		TargetSubdir: "release",
		CargoFlag:    "--release",
	}
)

// EnvOverrides holds the two optional environment signals controlling profile
// resolution. They are captured once at startup and passed down so resolution
// itself stays pure.
type EnvOverrides struct {
	// Profile is the profile-specific override (CRAB_BUILD_PROFILE).
	Profile string
	// Mode is the general mode override (NODE_ENV).
	Mode string
}

// ResolveBuildOptions derives the build options from the captured overrides.
//
// The profile override is authoritative: a value outside dev/debug/release/
// profiling (case-insensitive) is a configuration error. The mode override is
// advisory and consulted only when the profile override is empty: dev and
// development select the dev profile, release and production select release,
// and any other value is silently ignored. With neither override set the
// build defaults to release.
func ResolveBuildOptions(env EnvOverrides) (BuildOptions, error) {
	if env.Profile != "" {
		switch strings.ToLower(env.Profile) {
		case "dev", "debug":
			return devOptions, nil
		case "release":
			return releaseOptions, nil
		case "profiling":
			return profilingOptions, nil
		default:
			return BuildOptions{}, zerr.With(
				zerr.Wrap(ErrInvalidConfiguration, "expected dev, debug, release or profiling"),
				"profile", env.Profile,
			)
		}
	}

	switch strings.ToLower(env.Mode) {
	case "dev", "development":
		return devOptions, nil
	case "release", "production":
		return releaseOptions, nil
	default:
		return releaseOptions, nil
	}
}
