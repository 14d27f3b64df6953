// Package preview provides the page grid preview view.
package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tiler/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tiler/internal/core/domain"
)

// View renders a tile grid as a map of numbered pages next to the
// details of the selected page.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	grid  *domain.TileGrid
	scale domain.ScaleFactor
	units domain.Unit

	row, col int

	width  int
	height int
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		units:  domain.UnitMillimetres,
	}
}

// SetGrid replaces the grid, keeping the selection when it still fits.
func (v *View) SetGrid(grid *domain.TileGrid, scale domain.ScaleFactor) {
	v.grid = grid
	v.scale = scale
	if grid == nil {
		v.row, v.col = 0, 0
		return
	}
	v.row = clamp(v.row, grid.Rows)
	v.col = clamp(v.col, grid.Cols)
}

// Grid returns the displayed grid.
func (v *View) Grid() *domain.TileGrid {
	return v.grid
}

// SetUnits sets the unit physical sizes are shown in.
func (v *View) SetUnits(u domain.Unit) {
	if u.IsValid() {
		v.units = u
	}
}

// Units returns the display unit.
func (v *View) Units() domain.Unit {
	return v.units
}

// ToggleUnits switches between millimetres and inches.
func (v *View) ToggleUnits() {
	if v.units == domain.UnitInches {
		v.units = domain.UnitMillimetres
	} else {
		v.units = domain.UnitInches
	}
}

// SetDimensions sets the available terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the highlighted tile.
func (v *View) Selected() (domain.Tile, bool) {
	if v.grid == nil {
		return domain.Tile{}, false
	}
	return v.grid.At(v.row, v.col)
}

// Position returns the highlighted row and column.
func (v *View) Position() (row, col int) {
	return v.row, v.col
}

// Init implements the view lifecycle.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the selection in response to navigation keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.grid == nil || v.grid.Len() == 0 {
		return v, nil
	}

	k := keyMsg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.row = clamp(v.row-1, v.grid.Rows)
	case keymap.Matches(k, v.keymap.Down):
		v.row = clamp(v.row+1, v.grid.Rows)
	case keymap.Matches(k, v.keymap.Left):
		v.col = clamp(v.col-1, v.grid.Cols)
	case keymap.Matches(k, v.keymap.Right):
		v.col = clamp(v.col+1, v.grid.Cols)
	case keymap.Matches(k, v.keymap.First):
		v.row, v.col = 0, 0
	case keymap.Matches(k, v.keymap.Last):
		v.row, v.col = v.grid.Rows-1, v.grid.Cols-1
	}
	return v, nil
}

// View renders the map and the details pane.
func (v *View) View() string {
	if v.grid == nil {
		return v.styles.Muted.Render("No grid planned.")
	}

	header := v.styles.Title.Render("Page preview") + "  " +
		v.styles.Muted.Render(fmt.Sprintf("%.0f x %.0f px document", v.grid.DocWidth, v.grid.DocHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, v.renderMap(), "  ", v.renderDetails())
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

// renderMap draws one numbered cell per page in grid layout.
func (v *View) renderMap() string {
	digits := len(fmt.Sprint(v.grid.Len()))

	lines := make([]string, 0, v.grid.Rows)
	for row := 0; row < v.grid.Rows; row++ {
		cells := make([]string, 0, v.grid.Cols)
		for col := 0; col < v.grid.Cols; col++ {
			tile, ok := v.grid.At(row, col)
			if !ok {
				continue
			}
			label := fmt.Sprintf(" %*d ", digits, v.grid.Number(row, col))
			cells = append(cells, v.cellStyle(tile).Render(label))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (v *View) cellStyle(t domain.Tile) lipgloss.Style {
	switch {
	case t.Row == v.row && t.Col == v.col:
		return v.styles.SelectedCell
	case v.overhangs(t):
		return v.styles.EdgeCell
	default:
		return v.styles.Cell
	}
}

// overhangs reports whether the tile's drawable area reaches past the
// document edge, i.e. the printed page is partly blank.
func (v *View) overhangs(t domain.Tile) bool {
	d := t.Drawable()
	return d.X+d.Width > v.grid.DocWidth || d.Y+d.Height > v.grid.DocHeight
}

func (v *View) renderDetails() string {
	tile, ok := v.Selected()
	if !ok {
		return ""
	}

	page := tile.Page()
	drawable := tile.Drawable()

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Page %s  (%d of %d)",
		tile.Label(), v.grid.Number(tile.Row, tile.Col), v.grid.Len())))
	b.WriteString("\n\n")
	v.writeRect(&b, "Page", page)
	v.writeRect(&b, "Drawable", drawable)
	b.WriteString(v.styles.Muted.Render("Gutter    "))
	b.WriteString(fmt.Sprintf("%.1f px\n", tile.Gutter))

	if v.scale.IsSet() {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Sheet     "))
		b.WriteString(v.physical(page.Width, page.Height) + "\n")
		b.WriteString(v.styles.Muted.Render("Printable "))
		b.WriteString(v.physical(drawable.Width, drawable.Height))
	}

	return v.styles.Details.Render(b.String())
}

func (v *View) writeRect(b *strings.Builder, name string, r domain.Rect) {
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-10s", name)))
	b.WriteString(fmt.Sprintf("x %.1f  y %.1f\n", r.X, r.Y))
	b.WriteString(strings.Repeat(" ", 10))
	b.WriteString(fmt.Sprintf("%.1f x %.1f px\n", r.Width, r.Height))
}

func (v *View) physical(widthPx, heightPx float64) string {
	w := v.units.FromMillimetres(v.scale.Millimetres(widthPx))
	h := v.units.FromMillimetres(v.scale.Millimetres(heightPx))
	return fmt.Sprintf("%.1f x %.1f %s", w, h, v.units)
}

func clamp(i, n int) int {
	if i < 0 || n <= 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
