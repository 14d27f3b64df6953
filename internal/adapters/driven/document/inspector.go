package document

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driven"
	"github.com/custodia-labs/tiler/internal/logger"
)

// Ensure Inspector implements the interface.
var _ driven.DocumentInspector = (*Inspector)(nil)

// FormatPDF is the format name reported for PDF documents.
const FormatPDF = "pdf"

const pointsPerInch = 72.0

var pdfMagic = []byte("%PDF-")

// Inspector reads document dimensions from disk.
type Inspector struct {
	dpi int
}

// NewInspector creates an inspector that renders PDF pages at dpi.
// A non-positive dpi uses domain.DefaultDPI.
func NewInspector(dpi int) *Inspector {
	if dpi <= 0 {
		dpi = domain.DefaultDPI
	}
	return &Inspector{dpi: dpi}
}

// DPI returns the resolution used for PDF pages.
func (i *Inspector) DPI() int {
	return i.dpi
}

// Inspect returns the format and pixel size of the document at path.
// For PDFs the first page is measured.
func (i *Inspector) Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var info *domain.DocumentInfo
	if bytes.Equal(head[:n], pdfMagic) {
		info, err = i.inspectPDF(f)
	} else {
		info, err = inspectImage(f)
	}
	if err != nil {
		return nil, err
	}

	info.Path = path
	logger.Debug("Document %s: %s %dx%d px", path, info.Format, info.Width, info.Height)
	return info, nil
}

func inspectImage(r io.Reader) (*domain.DocumentInfo, error) {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: unrecognised image format", domain.ErrUnsupportedDocument)
		}
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty %s image", domain.ErrUnsupportedDocument, format)
	}
	return &domain.DocumentInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (i *Inspector) inspectPDF(rs io.ReadSeeker) (*domain.DocumentInfo, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	dims, err := api.PageDims(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf page size: %w", err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: pdf has no pages", domain.ErrUnsupportedDocument)
	}
	if len(dims) > 1 {
		logger.Info("PDF has %d pages, using page 1", len(dims))
	}

	return &domain.DocumentInfo{
		Format: FormatPDF,
		Width:  i.pointsToPixels(dims[0].Width),
		Height: i.pointsToPixels(dims[0].Height),
	}, nil
}

func (i *Inspector) pointsToPixels(pt float64) int {
	return int(math.Round(pt / pointsPerInch * float64(i.dpi)))
}
