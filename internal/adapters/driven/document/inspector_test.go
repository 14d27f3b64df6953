package document

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func encodeImage(t *testing.T, w, h int, encode func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, nil)
}

// minimalPDF builds a single-page PDF with a correct cross-reference table.
func minimalPDF(widthPt, heightPt float64) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << >> >>", widthPt, heightPt),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestNewInspector_DefaultDPI(t *testing.T) {
	assert.Equal(t, domain.DefaultDPI, NewInspector(0).DPI())
	assert.Equal(t, 150, NewInspector(150).DPI())
}

func TestInspector_Images(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		encode func(io.Writer, image.Image) error
		format string
	}{
		{"png", "plan.png", png.Encode, "png"},
		{"bmp", "plan.bmp", bmp.Encode, "bmp"},
		{"tiff", "plan.tif", encodeTIFF, "tiff"},
		{"extension is ignored", "plan.pdf", png.Encode, "png"},
	}

	inspector := NewInspector(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, encodeImage(t, 320, 200, tt.encode))

			info, err := inspector.Inspect(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, &domain.DocumentInfo{Path: path, Format: tt.format, Width: 320, Height: 200}, info)
		})
	}
}

func TestInspector_PDF(t *testing.T) {
	// A4 in points.
	path := writeFile(t, "drawing.pdf", minimalPDF(595.28, 841.89))

	info, err := NewInspector(72).Inspect(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, info.Format)
	assert.Equal(t, 595, info.Width)
	assert.Equal(t, 842, info.Height)

	info, err = NewInspector(300).Inspect(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2480, info.Width)
	assert.Equal(t, 3508, info.Height)
}

func TestInspector_Unsupported(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("not a drawing"))

	_, err := NewInspector(0).Inspect(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocument)
}

func TestInspector_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.png", nil)

	_, err := NewInspector(0).Inspect(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocument)
}

func TestInspector_MissingFile(t *testing.T) {
	_, err := NewInspector(0).Inspect(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedDocument)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInspector(0).Inspect(ctx, "whatever.png")
	assert.ErrorIs(t, err, context.Canceled)
}
