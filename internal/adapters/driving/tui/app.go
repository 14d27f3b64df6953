package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// App is the page preview application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// request is the layout being previewed. The orientation key edits it.
	request driving.PlanRequest

	styles *styles.Styles
	keymap *keymap.KeyMap

	previewView *preview.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a preview of the grid described by req.
func NewApp(ports *Ports, req driving.PlanRequest) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		request:     req,
		styles:      s,
		keymap:      km,
		previewView: preview.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewPreview,
	}

	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			a.previewView.SetUnits(settings.Display.Units)
		}
	}

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StatePlanning)
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tiler - Page Preview"),
		a.planGrid(),
	)
}

// planGrid plans the current request in the background.
func (a *App) planGrid() tea.Cmd {
	ctx := a.ctx
	req := a.request
	tiling := a.ports.Tiling
	settings := a.ports.Settings

	return func() tea.Msg {
		grid, err := tiling.Plan(ctx, req)
		if err != nil {
			return messages.GridPlanned{Err: err}
		}

		scale := req.Scale
		if scale == 0 && settings != nil {
			if s, err := settings.Get(); err == nil {
				scale = s.Scale
			}
		}
		return messages.GridPlanned{Grid: grid, Scale: scale}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.previewView.SetDimensions(msg.Width, msg.Height-1)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.GridPlanned:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.previewView.SetGrid(msg.Grid, msg.Scale)
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage("")
		a.statusBar.SetSummary(status.Summary{
			Rows:        msg.Grid.Rows,
			Cols:        msg.Grid.Cols,
			Scale:       msg.Scale,
			Orientation: msg.Grid.PrintOrientation(),
		})
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHelp {
			a.statusBar.SetState(status.StateHelp)
		} else {
			a.restoreStatus()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewPreview {
		a.previewView, cmd = a.previewView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// Global quit with ctrl+c
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			return a.Update(messages.ViewChanged{View: messages.ViewPreview})
		}
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		return a.Update(messages.ViewChanged{View: messages.ViewHelp})
	case keymap.Matches(k, a.keymap.Units):
		a.previewView.ToggleUnits()
		return a, nil
	case keymap.Matches(k, a.keymap.Orientation):
		a.request.Orientation = nextOrientation(a.request.Orientation)
		a.statusBar.SetState(status.StatePlanning)
		return a, a.planGrid()
	}

	var cmd tea.Cmd
	a.previewView, cmd = a.previewView.Update(msg)
	return a, cmd
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// restoreStatus puts the status bar back after leaving the help view.
func (a *App) restoreStatus() {
	if a.err != nil {
		a.setError(a.err)
		return
	}
	a.statusBar.SetState(status.StateReady)
}

// nextOrientation cycles auto, portrait, landscape.
func nextOrientation(o domain.Orientation) domain.Orientation {
	switch o {
	case domain.OrientationPortrait:
		return domain.OrientationLandscape
	case domain.OrientationLandscape:
		return domain.OrientationAuto
	default:
		return domain.OrientationPortrait
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.previewView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to preview"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Request returns the layout being previewed.
func (a *App) Request() driving.PlanRequest {
	return a.request
}

// Preview returns the preview view.
func (a *App) Preview() *preview.View {
	return a.previewView
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
