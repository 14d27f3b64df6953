package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

func TestGridCmd_Use(t *testing.T) {
	assert.Equal(t, "grid", gridCmd.Use)
}

func TestGridCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("grid", "--width", "1000", "--height", "800", "--scale", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Document: 1000 x 800 px")
	assert.Contains(t, out, "Page: 210.0 x 297.0 px, gutter 10.0 px")
	assert.Contains(t, out, "Grid: 3 rows x 6 cols (18 pages)")
	assert.Contains(t, out, "Print orientation: portrait")
	assert.Contains(t, out, "R1C1")
	assert.Contains(t, out, "-10.0, -10.0")
	assert.Contains(t, out, "R3C6")
}

func TestGridCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("grid", "--width", "1000", "--height", "800", "--scale", "1",
		"--gutter", "0", "--orientation", "landscape", "--json")
	require.NoError(t, err)

	var grid domain.TileGrid
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &grid))
	assert.InDelta(t, 297.0, grid.Page.Width, 1e-9)
	assert.InDelta(t, 210.0, grid.Page.Height, 1e-9)
	assert.Zero(t, grid.Page.Gutter)
	// ceil(1000/297) x ceil(800/210)
	assert.Equal(t, 4, grid.Cols)
	assert.Equal(t, 4, grid.Rows)
	assert.Len(t, grid.Tiles, 16)
	assert.Equal(t, domain.OrientationLandscape, grid.Page.Orientation)
}

func TestGridCmd_UsesStoredSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.SetScale(1))
	require.NoError(t, settingsService.SetPaper("A3"))
	require.NoError(t, settingsService.SetGutter(0))

	out, err := executeCommand("grid", "--width", "1000", "--height", "800")

	require.NoError(t, err)
	assert.Contains(t, out, "Page: 297.0 x 420.0 px, gutter 0.0 px")
}

func TestGridCmd_FromDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writePNG(t, 640, 480)

	out, err := executeCommand("grid", "--document", path, "--scale", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Document: 640 x 480 px")
}

func TestGridCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name    string
		args    []string
		wantErr error
		message string
	}{
		{
			name:    "no size",
			args:    []string{"grid", "--scale", "1"},
			message: "either --document or both --width and --height are required",
		},
		{
			name:    "scale not set",
			args:    []string{"grid", "--width", "100", "--height", "100"},
			wantErr: domain.ErrScaleNotSet,
		},
		{
			name:    "unknown paper",
			args:    []string{"grid", "--width", "100", "--height", "100", "--scale", "1", "--paper", "B7"},
			wantErr: domain.ErrUnknownPaper,
		},
		{
			name:    "too many pages",
			args:    []string{"grid", "--width", "100000", "--height", "100000", "--scale", "1"},
			wantErr: domain.ErrTooManyTiles,
		},
		{
			name:    "page too small",
			args:    []string{"grid", "--width", "100", "--height", "100", "--scale", "100"},
			wantErr: domain.ErrPageTooSmall,
		},
		{
			name:    "unsupported document",
			args:    []string{"grid", "--document", "testdata-missing.txt", "--scale", "1"},
			message: "failed to read document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}
