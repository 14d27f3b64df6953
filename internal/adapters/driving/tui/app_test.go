package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// testRequest is a 1000x800 px drawing at 1 mm/px on A4.
var testRequest = driving.PlanRequest{DocWidth: 1000, DocHeight: 800, PaperName: "A4"}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newPlannedApp creates an app and applies its first plan.
func newPlannedApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts(1), testRequest)
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	app.Update(app.planGrid()())
	require.NoError(t, app.Err())
	return app
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts(1), testRequest)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewPreview, app.CurrentView())
	assert.Equal(t, testRequest, app.Request())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, testRequest)

	assert.ErrorIs(t, err, ErrMissingTilingService)
	assert.Nil(t, app)
}

func TestNewApp_UsesStoredUnits(t *testing.T) {
	ports := newTestPorts(1)
	require.NoError(t, ports.Settings.SetUnits(domain.UnitInches))

	app, err := NewApp(ports, testRequest)

	require.NoError(t, err)
	assert.Equal(t, domain.UnitInches, app.Preview().Units())
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts(1), testRequest)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts(1), testRequest)

	cmd := app.Init()

	assert.NotNil(t, cmd)
	assert.Equal(t, status.StatePlanning, app.StatusBar().State())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts(1), testRequest)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_PlanGrid(t *testing.T) {
	app, _ := NewApp(newTestPorts(1), testRequest)

	msg := app.planGrid()()

	planned, ok := msg.(messages.GridPlanned)
	require.True(t, ok)
	require.NoError(t, planned.Err)
	assert.Equal(t, domain.ScaleFactor(1), planned.Scale)
	// A4 portrait at 1 mm/px with the default 10 mm gutter.
	assert.Equal(t, 3, planned.Grid.Rows)
	assert.Equal(t, 6, planned.Grid.Cols)
}

func TestApp_PlanGrid_ExplicitScaleWins(t *testing.T) {
	req := testRequest
	req.Scale = 2
	app, _ := NewApp(newTestPorts(1), req)

	planned := app.planGrid()().(messages.GridPlanned)

	require.NoError(t, planned.Err)
	assert.Equal(t, domain.ScaleFactor(2), planned.Scale)
}

func TestApp_Update_GridPlanned(t *testing.T) {
	app := newPlannedApp(t)

	require.NotNil(t, app.Preview().Grid())
	assert.Equal(t, status.StateReady, app.StatusBar().State())
	summary := app.StatusBar().Summary()
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 6, summary.Cols)

	view := app.View()
	assert.Contains(t, view, "Page preview")
	assert.Contains(t, view, "3 x 6 pages")
}

func TestApp_Update_GridPlannedError(t *testing.T) {
	app, _ := NewApp(newTestPorts(0), testRequest)
	app.SetDimensions(120, 40)

	app.Update(app.planGrid()())

	assert.ErrorIs(t, app.Err(), domain.ErrScaleNotSet)
	assert.Equal(t, status.StateError, app.StatusBar().State())
	assert.Contains(t, app.View(), "Error: scale not set")
}

func TestApp_Update_Navigation(t *testing.T) {
	app := newPlannedApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app.Update(tea.KeyMsg{Type: tea.KeyDown})

	row, col := app.Preview().Position()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestApp_Update_ToggleUnits(t *testing.T) {
	app := newPlannedApp(t)

	app.Update(runeKey('u'))

	assert.Equal(t, domain.UnitInches, app.Preview().Units())
}

func TestApp_Update_OrientationReplans(t *testing.T) {
	tiling := &MockTilingService{}
	app, err := NewApp(&Ports{Tiling: tiling}, testRequest)
	require.NoError(t, err)

	_, cmd := app.Update(runeKey('o'))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, domain.OrientationPortrait, app.Request().Orientation)
	require.Len(t, tiling.Requests, 1)
	assert.Equal(t, domain.OrientationPortrait, tiling.Requests[0].Orientation)
	assert.Equal(t, status.StatePlanning, app.StatusBar().State())
}

func TestNextOrientation(t *testing.T) {
	assert.Equal(t, domain.OrientationPortrait, nextOrientation(""))
	assert.Equal(t, domain.OrientationPortrait, nextOrientation(domain.OrientationAuto))
	assert.Equal(t, domain.OrientationLandscape, nextOrientation(domain.OrientationPortrait))
	assert.Equal(t, domain.OrientationAuto, nextOrientation(domain.OrientationLandscape))
}

func TestApp_Update_Help(t *testing.T) {
	app := newPlannedApp(t)

	app.Update(runeKey('?'))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Equal(t, status.StateHelp, app.StatusBar().State())
	assert.Contains(t, app.View(), "orientation")

	// Navigation keys are ignored while help is shown.
	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	row, col := app.Preview().Position()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewPreview, app.CurrentView())
	assert.Equal(t, status.StateReady, app.StatusBar().State())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newPlannedApp(t)

	model, cmd := app.Update(messages.ErrorOccurred{Err: errors.New("something went wrong")})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.EqualError(t, app.Err(), "something went wrong")
	assert.Equal(t, status.StateError, app.StatusBar().State())
}

func TestApp_Update_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"q key", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newPlannedApp(t)

			_, cmd := app.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}
