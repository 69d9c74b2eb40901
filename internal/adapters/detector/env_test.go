package detector_test

import (
	"testing"

	"go.trai.ch/crab/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces linear mode", ciValue: "true"},
		{name: "CI=1 forces linear mode", ciValue: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			if mode := detector.DetectEnvironment(); mode != detector.ModeLinear {
				t.Errorf("DetectEnvironment() = %v with CI=%s, want ModeLinear", mode, tt.ciValue)
			}
		})
	}
}

func TestDetectEnvironment_NoTTY(t *testing.T) {
	t.Setenv("CI", "")

	// Test processes never run on a TTY stdout, so detection must pick the
	// linear renderer even without CI markers.
	if mode := detector.DetectEnvironment(); mode != detector.ModeLinear {
		t.Errorf("DetectEnvironment() = %v without TTY, want ModeLinear", mode)
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (TUI)",
			autoDetected: detector.ModeTUI,
			userFlag:     "auto",
			expected:     detector.ModeTUI,
		},
		{
			name:         "auto respects auto-detection (Linear)",
			autoDetected: detector.ModeLinear,
			userFlag:     "auto",
			expected:     detector.ModeLinear,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "",
			expected:     detector.ModeTUI,
		},
		{
			name:         "tui overrides auto-detection",
			autoDetected: detector.ModeLinear,
			userFlag:     "tui",
			expected:     detector.ModeTUI,
		},
		{
			name:         "linear overrides auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "linear",
			expected:     detector.ModeLinear,
		},
		{
			name:         "ci is alias for linear",
			autoDetected: detector.ModeTUI,
			userFlag:     "ci",
			expected:     detector.ModeLinear,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "invalid",
			expected:     detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.autoDetected, tt.userFlag)
			if got != tt.expected {
				t.Errorf("ResolveMode(%v, %q) = %v, want %v",
					tt.autoDetected, tt.userFlag, got, tt.expected)
			}
		})
	}
}
