package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSpec_Drawable(t *testing.T) {
	p := PageSpec{Width: 400, Height: 300, Gutter: 20}
	assert.Equal(t, 360.0, p.DrawableWidth())
	assert.Equal(t, 260.0, p.DrawableHeight())
}

func TestPageSpec_Validate(t *testing.T) {
	tests := []struct {
		name       string
		page       PageSpec
		docW, docH float64
		wantErr    bool
	}{
		{"valid", PageSpec{Width: 400, Height: 300, Gutter: 20}, 1000, 800, false},
		{"zero gutter", PageSpec{Width: 400, Height: 300}, 1000, 800, false},
		{"zero page width", PageSpec{Width: 0, Height: 300}, 1000, 800, true},
		{"negative page height", PageSpec{Width: 400, Height: -1}, 1000, 800, true},
		{"zero doc width", PageSpec{Width: 400, Height: 300}, 0, 800, true},
		{"zero doc height", PageSpec{Width: 400, Height: 300}, 1000, 0, true},
		{"negative gutter", PageSpec{Width: 400, Height: 300, Gutter: -1}, 1000, 800, true},
		{"gutter eats width", PageSpec{Width: 400, Height: 900, Gutter: 200}, 1000, 800, true},
		{"gutter eats height", PageSpec{Width: 400, Height: 300, Gutter: 150}, 1000, 800, true},
		{"gutter just fits", PageSpec{Width: 400, Height: 300, Gutter: 149.5}, 1000, 800, false},
		{"NaN gutter", PageSpec{Width: 400, Height: 300, Gutter: math.NaN()}, 1000, 800, true},
		{"infinite page", PageSpec{Width: math.Inf(1), Height: 300}, 1000, 800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate(tt.docW, tt.docH)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTilingConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTile_Drawable(t *testing.T) {
	page := PageSpec{Width: 400, Height: 300, Gutter: 20}
	tile := NewTile(0, 0, Edges{Left: 0, Top: 0, Right: 360, Bottom: 260}, page)

	assert.Equal(t, 0.0, tile.DrawableX())
	assert.Equal(t, 0.0, tile.DrawableY())
	assert.Equal(t, 360.0, tile.DrawableWidth())
	assert.Equal(t, 260.0, tile.DrawableHeight())
	assert.Equal(t, Rect{X: -20, Y: -20, Width: 400, Height: 300}, tile.Page())
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 360, Height: 260}, tile.Drawable())
}

func TestNewTile_PageOriginOutsideArea(t *testing.T) {
	page := PageSpec{Width: 700, Height: 990, Gutter: 100.0 / 3}
	area := Edges{Left: 633.3333333333334, Top: 0, Right: 1266.6666666666667, Bottom: 923.3333333333334}

	tile := NewTile(0, 1, area, page)

	assert.InDelta(t, 600.0, tile.X, 1e-9)
	assert.InDelta(t, -100.0/3, tile.Y, 1e-9)
	assert.Equal(t, area, tile.Area)
	assert.True(t, tile.Area.Contains(Point{X: 633.3333333333334, Y: 0}))
	assert.False(t, tile.Area.Contains(Point{X: 1266.6666666666667, Y: 0}))
}

func TestTile_Label(t *testing.T) {
	assert.Equal(t, "R1C1", Tile{}.Label())
	assert.Equal(t, "R3C2", Tile{Row: 2, Col: 1}.Label())
}

func testGrid() *TileGrid {
	page := PageSpec{Width: 20, Height: 10}
	g := &TileGrid{DocWidth: 40, DocHeight: 20, Page: page, Rows: 2, Cols: 2}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			area := Edges{
				Left: float64(c) * 20, Top: float64(r) * 10,
				Right: float64(c+1) * 20, Bottom: float64(r+1) * 10,
			}
			g.Tiles = append(g.Tiles, NewTile(r, c, area, page))
		}
	}
	return g
}

func TestTileGrid_At(t *testing.T) {
	g := testGrid()

	tile, ok := g.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, tile.Row)
	assert.Equal(t, 0, tile.Col)
	assert.Equal(t, 3, g.Number(1, 0))

	_, ok = g.At(2, 0)
	assert.False(t, ok)
	_, ok = g.At(0, -1)
	assert.False(t, ok)
	assert.Equal(t, 4, g.Len())
}

func TestTileGrid_Covering(t *testing.T) {
	g := testGrid()

	tiles := g.Covering(Point{25, 5})
	assert.Len(t, tiles, 1)
	assert.Equal(t, "R1C2", tiles[0].Label())

	assert.Empty(t, g.Covering(Point{100, 100}))
}

func TestTileGrid_PrintOrientation(t *testing.T) {
	g := testGrid()
	assert.Equal(t, OrientationLandscape, g.PrintOrientation())

	g.Page = PageSpec{Width: 11, Height: 10}
	assert.Equal(t, OrientationPortrait, g.PrintOrientation())

	g.Page = PageSpec{}
	assert.Equal(t, OrientationPortrait, g.PrintOrientation())
}
