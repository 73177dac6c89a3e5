// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pwbench/logging"
)

// TestNew_Levels checks the configured level and the verbose override.
func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    zapcore.Level
	}{
		{"info", false, zapcore.InfoLevel},
		{"warn", false, zapcore.WarnLevel},
		{"error", false, zapcore.ErrorLevel},
		{"info", true, zapcore.DebugLevel},
		{"debug", false, zapcore.DebugLevel},
	}
	for _, tc := range tests {
		for _, dev := range []bool{false, true} {
			logger, err := logging.New(tc.level, dev, tc.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.want), tc.level)
			assert.False(t, logger.Core().Enabled(tc.want-1), tc.level)
		}
	}
}

// TestNew_BadLevel checks an unknown level is rejected.
func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("loud", false, false)
	assert.Error(t, err)
}
