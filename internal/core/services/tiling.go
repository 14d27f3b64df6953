package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/logger"
)

// TileGridGenerator tiles a document with fixed-size pages whose
// drawable areas cover it without gaps or overlaps. It holds no state
// and is safe for concurrent use.
type TileGridGenerator struct{}

// NewTileGridGenerator creates a new grid generator.
func NewTileGridGenerator() *TileGridGenerator {
	return &TileGridGenerator{}
}

// maxGridSide bounds the rows or columns of one grid. Larger counts
// come from absurd document sizes and cannot be represented safely.
const maxGridSide = math.MaxInt32

// GridSize returns the rows and columns needed to cover a document
// with the page's drawable area. The page must be valid. Counts that
// are not finite or exceed maxGridSide, on either axis or in total,
// return ErrInvalidTilingConfig.
func GridSize(docWidth, docHeight float64, page domain.PageSpec) (rows, cols int, err error) {
	rows, err = gridSide("rows", docHeight, page.DrawableHeight())
	if err != nil {
		return 0, 0, err
	}
	cols, err = gridSide("columns", docWidth, page.DrawableWidth())
	if err != nil {
		return 0, 0, err
	}
	if float64(rows)*float64(cols) > maxGridSide {
		return 0, 0, fmt.Errorf("%w: %d rows x %d columns is too many pages",
			domain.ErrInvalidTilingConfig, rows, cols)
	}
	return rows, cols, nil
}

// gridSide counts the steps needed to reach length. The count is
// bumped while the last grid line still falls short, since the
// quotient can round down below the true value.
func gridSide(name string, length, step float64) (int, error) {
	n := math.Ceil(length / step)
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 || n > maxGridSide {
		return 0, fmt.Errorf("%w: %g px needs %g %s of %g px", domain.ErrInvalidTilingConfig, length, n, name, step)
	}
	for n*step < length && n < maxGridSide {
		n++
	}
	return int(n), nil
}

// gridLine returns the position of grid line i. Neighbouring tiles
// compute their shared edge with the same call, so it is bit-identical.
func gridLine(i int, step float64) float64 {
	return float64(i) * step
}

// Generate sweeps the document row by row. Drawable areas are cut at the
// grid lines index*step, so every drawable rectangle begins exactly where
// its neighbour ends. Page origins sit one gutter outside them. Every
// page keeps the full page size, including the last row and column which
// overhang the document edge.
//
// Sizes whose grid would exceed maxGridSide pages return
// ErrInvalidTilingConfig rather than allocating. The cost is
// O(rows * cols); callers with untrusted sizes should also bound the
// tile count first (see GridSize).
func (g *TileGridGenerator) Generate(docWidth, docHeight float64, page domain.PageSpec) (*domain.TileGrid, error) {
	if err := page.Validate(docWidth, docHeight); err != nil {
		return nil, err
	}

	stepX := page.DrawableWidth()
	stepY := page.DrawableHeight()
	rows, cols, err := GridSize(docWidth, docHeight, page)
	if err != nil {
		return nil, err
	}

	logger.Debug("Tiling %gx%g px with %gx%g px pages, gutter %g: step %gx%g, %d rows x %d cols",
		docWidth, docHeight, page.Width, page.Height, page.Gutter, stepX, stepY, rows, cols)

	tiles := make([]domain.Tile, 0, rows*cols)
	for row := 0; row < rows; row++ {
		top, bottom := gridLine(row, stepY), gridLine(row+1, stepY)
		for col := 0; col < cols; col++ {
			area := domain.Edges{
				Left:   gridLine(col, stepX),
				Top:    top,
				Right:  gridLine(col+1, stepX),
				Bottom: bottom,
			}
			tiles = append(tiles, domain.NewTile(row, col, area, page))
		}
	}

	return &domain.TileGrid{
		DocWidth:  docWidth,
		DocHeight: docHeight,
		Page:      page,
		Rows:      rows,
		Cols:      cols,
		Tiles:     tiles,
	}, nil
}
