package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tiler/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

func newTestPlanner(t *testing.T, seed map[string]any) *Planner {
	t.Helper()
	settings := NewSettingsService(memory.NewConfigStore(seed))
	return NewPlanner(NewTileGridGenerator(), settings)
}

func gutter(mm float64) *float64 {
	return &mm
}

func TestPlanner_Plan_UsesStoredSettings(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{
		"scale.factor":       1.0,
		"tiling.paper":       "A4",
		"tiling.orientation": "portrait",
		"tiling.gutter_mm":   10.0,
	})

	grid, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 1000, DocHeight: 800})
	require.NoError(t, err)

	assert.Equal(t, domain.PageSpec{Width: 210, Height: 297, Gutter: 10, Orientation: domain.OrientationPortrait}, grid.Page)
	// Drawable 190x277.
	assert.Equal(t, 6, grid.Cols)
	assert.Equal(t, 3, grid.Rows)
	assert.Equal(t, -10.0, grid.Tiles[0].X)
}

func TestPlanner_Plan_RequestOverridesSettings(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{"scale.factor": 1.0})

	grid, err := planner.Plan(context.Background(), driving.PlanRequest{
		DocWidth:    1000,
		DocHeight:   1000,
		Scale:       0.5,
		PaperName:   "a5",
		Orientation: domain.OrientationLandscape,
		GutterMM:    gutter(0),
	})
	require.NoError(t, err)

	// A5 landscape is 210x148 mm, 420x296 px at 0.5 mm/px.
	assert.Equal(t, 420.0, grid.Page.Width)
	assert.Equal(t, 296.0, grid.Page.Height)
	assert.Zero(t, grid.Page.Gutter)
	assert.Equal(t, domain.OrientationLandscape, grid.Page.Orientation)
	assert.Equal(t, domain.OrientationLandscape, grid.PrintOrientation())
}

func TestPlanner_Plan_FoldsCalibrationIntoGutter(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{
		"scale.factor":                        2.0,
		"tiling.gutter_mm":                    10.0,
		"calibration.portrait.horizontal_mm":  1.0,
		"calibration.landscape.horizontal_mm": 3.0,
		"calibration.landscape.vertical_mm":   6.0,
	})
	ctx := context.Background()

	landscape, err := planner.Plan(ctx, driving.PlanRequest{
		DocWidth: 500, DocHeight: 500, Orientation: domain.OrientationLandscape,
	})
	require.NoError(t, err)
	// (10 + max(3, 6)) mm at 2 mm/px.
	assert.InDelta(t, 8.0, landscape.Page.Gutter, 1e-12)

	portrait, err := planner.Plan(ctx, driving.PlanRequest{
		DocWidth: 500, DocHeight: 500, Orientation: domain.OrientationPortrait,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.5, portrait.Page.Gutter, 1e-12)
}

func TestPlanner_Plan_AutoKeepsNaturalOrientation(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{"scale.factor": 1.0})

	grid, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 500, DocHeight: 500})
	require.NoError(t, err)

	assert.Equal(t, 210.0, grid.Page.Width)
	assert.Equal(t, 297.0, grid.Page.Height)
	assert.Equal(t, domain.OrientationPortrait, grid.Page.Orientation)
}

func TestPlanner_Plan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		seed    map[string]any
		req     driving.PlanRequest
		wantErr error
	}{
		{
			name:    "scale not set",
			req:     driving.PlanRequest{DocWidth: 100, DocHeight: 100},
			wantErr: domain.ErrScaleNotSet,
		},
		{
			name:    "unknown paper",
			seed:    map[string]any{"scale.factor": 1.0},
			req:     driving.PlanRequest{DocWidth: 100, DocHeight: 100, PaperName: "napkin"},
			wantErr: domain.ErrUnknownPaper,
		},
		{
			name:    "invalid orientation",
			seed:    map[string]any{"scale.factor": 1.0},
			req:     driving.PlanRequest{DocWidth: 100, DocHeight: 100, Orientation: "diagonal"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "page too small",
			seed:    map[string]any{"scale.factor": 10.0},
			req:     driving.PlanRequest{DocWidth: 100, DocHeight: 100},
			wantErr: domain.ErrPageTooSmall,
		},
		{
			name:    "too many tiles",
			seed:    map[string]any{"scale.factor": 1.0, "tiling.max_tiles": 10},
			req:     driving.PlanRequest{DocWidth: 10000, DocHeight: 10000},
			wantErr: domain.ErrTooManyTiles,
		},
		{
			name:    "gutter consumes page",
			seed:    map[string]any{"scale.factor": 1.0},
			req:     driving.PlanRequest{DocWidth: 100, DocHeight: 100, GutterMM: gutter(105)},
			wantErr: domain.ErrInvalidTilingConfig,
		},
		{
			name:    "document too large on both axes",
			seed:    map[string]any{"scale.factor": 0.1, "tiling.max_tiles": 0},
			req:     driving.PlanRequest{DocWidth: 1e300, DocHeight: 1e300},
			wantErr: domain.ErrInvalidTilingConfig,
		},
		{
			name:    "document too large on one axis",
			seed:    map[string]any{"scale.factor": 0.1},
			req:     driving.PlanRequest{DocWidth: 1e300, DocHeight: 1000},
			wantErr: domain.ErrInvalidTilingConfig,
		},
		{
			name:    "empty document",
			seed:    map[string]any{"scale.factor": 1.0},
			req:     driving.PlanRequest{DocWidth: 0, DocHeight: 100},
			wantErr: domain.ErrInvalidTilingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := newTestPlanner(t, tt.seed)

			grid, err := planner.Plan(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, grid)
		})
	}
}

func TestPlanner_Plan_FractionalPixelPagesCoverOnce(t *testing.T) {
	for _, scale := range []float64{0.3, 0.7} {
		planner := newTestPlanner(t, map[string]any{"scale.factor": scale, "tiling.max_tiles": 0})

		grid, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 5000, DocHeight: 5000})
		require.NoError(t, err)

		for x := 0; x < 5000; x++ {
			hits := grid.Covering(domain.Point{X: float64(x), Y: 0})
			require.Len(t, hits, 1, "scale %v x=%d", scale, x)
		}
		for y := 0; y < 5000; y++ {
			hits := grid.Covering(domain.Point{X: 0, Y: float64(y)})
			require.Len(t, hits, 1, "scale %v y=%d", scale, y)
		}
	}
}

func TestPlanner_Plan_MaxTilesZeroDisablesLimit(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{"scale.factor": 1.0, "tiling.max_tiles": 0})

	grid, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 5000, DocHeight: 5000})
	require.NoError(t, err)
	assert.Greater(t, grid.Len(), domain.DefaultMaxTiles)
}

func TestPlanner_Plan_CancelledContext(t *testing.T) {
	planner := newTestPlanner(t, map[string]any{"scale.factor": 1.0})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planner.Plan(ctx, driving.PlanRequest{DocWidth: 100, DocHeight: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanner_Plan_NilSettingsUsesDefaults(t *testing.T) {
	planner := NewPlanner(nil, nil)

	grid, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 100, DocHeight: 100, Scale: 1})
	require.NoError(t, err)
	assert.Equal(t, 210.0, grid.Page.Width)
	assert.Equal(t, domain.DefaultGutterMM, grid.Page.Gutter)
}

type failingSettings struct {
	driving.SettingsService
}

func (failingSettings) Get() (*domain.Settings, error) {
	return nil, errors.New("disk on fire")
}

func TestPlanner_Plan_SettingsError(t *testing.T) {
	planner := NewPlanner(nil, failingSettings{})

	_, err := planner.Plan(context.Background(), driving.PlanRequest{DocWidth: 100, DocHeight: 100, Scale: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}

func TestPlanner_Generate(t *testing.T) {
	planner := NewPlanner(nil, nil)

	grid, err := planner.Generate(3000, 2000, domain.PageSpec{Width: 2100, Height: 2970})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Len())
}
