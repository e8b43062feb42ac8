package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depscope/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	for _, value := range []string{"true", "1"} {
		t.Run("CI="+value, func(t *testing.T) {
			t.Setenv("CI", value)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NeverAuto(t *testing.T) {
	t.Setenv("CI", "")
	assert.NotEqual(t, detector.ModeAuto, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{name: "auto keeps detection", autoDetected: detector.ModeInteractive, userFlag: "auto", expected: detector.ModeInteractive},
		{name: "empty keeps detection", autoDetected: detector.ModeLinear, userFlag: "", expected: detector.ModeLinear},
		{name: "interactive override", autoDetected: detector.ModeLinear, userFlag: "interactive", expected: detector.ModeInteractive},
		{name: "tty alias", autoDetected: detector.ModeLinear, userFlag: "tty", expected: detector.ModeInteractive},
		{name: "linear override", autoDetected: detector.ModeInteractive, userFlag: "linear", expected: detector.ModeLinear},
		{name: "ci alias", autoDetected: detector.ModeInteractive, userFlag: "ci", expected: detector.ModeLinear},
		{name: "plain override", autoDetected: detector.ModeInteractive, userFlag: "plain", expected: detector.ModePlain},
		{name: "unknown falls back", autoDetected: detector.ModeLinear, userFlag: "fancy", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "interactive", detector.ModeInteractive.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
	assert.Equal(t, "plain", detector.ModePlain.String())
}
