// Package document reads the pixel dimensions of drawing files.
//
// Raster formats are decoded with image.DecodeConfig, so only the header is
// read. PNG, JPEG and GIF come from the standard library; BMP, TIFF and WebP
// are registered from golang.org/x/image. PDFs are measured with pdfcpu and
// converted from points to pixels at a configurable DPI.
package document
