package config

import (
	"os"

	"go.trai.ch/crab/internal/core/domain"
)

// Environment variable names consulted once at startup.
const (
	// EnvProfile is the authoritative profile override.
	EnvProfile = "CRAB_BUILD_PROFILE"
	// EnvMode is the advisory general mode override.
	EnvMode = "NODE_ENV"
)

// CaptureEnv reads the two override variables into an explicit value.
// Everything downstream receives the captured copy, so profile resolution
// stays pure and nothing re-reads the process environment mid-build.
func CaptureEnv() domain.EnvOverrides {
	return domain.EnvOverrides{
		Profile: os.Getenv(EnvProfile),
		Mode:    os.Getenv(EnvMode),
	}
}
