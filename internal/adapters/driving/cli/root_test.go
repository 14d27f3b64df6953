package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tiler/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "tiler", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := commandNames(rootCmd)

	for _, want := range []string{"version", "scale", "measure", "grid", "settings", "project", "preview", "mcp"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	defer logger.SetVerbose(false)

	_, err := executeCommand("--verbose", "version")
	assert.NoError(t, err)
	assert.True(t, logger.IsVerbose())

	_, err = executeCommand("version")
	assert.NoError(t, err)
	assert.False(t, logger.IsVerbose())
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand("frobnicate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NotNil(t, scaleService)
	assert.NotNil(t, tilingService)
	assert.NotNil(t, settingsService)
	assert.NotNil(t, projectService)
	assert.NotNil(t, documentService)
	assert.NotNil(t, newMeasureSession)
	assert.Nil(t, configWatcher)
}
