package telemetry_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/truthdiscovery/telemetry"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesToGivenOutput(t *testing.T) {
	var buf bytes.Buffer
	telemetry.Configure(telemetry.Config{Level: telemetry.LevelInfo, Format: telemetry.FormatJSON, Output: &buf})

	telemetry.Log().Info().Msg("hello")

	require.Contains(t, buf.String(), "hello")
}

func TestConfigureDebugLevelEmitsDebugLines(t *testing.T) {
	var buf bytes.Buffer
	telemetry.Configure(telemetry.Config{Level: telemetry.LevelDebug, Format: telemetry.FormatJSON, Output: &buf})

	telemetry.Log().Debug().Msg("verbose detail")

	require.Contains(t, buf.String(), "verbose detail")
}
