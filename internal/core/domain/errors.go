package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Scale Errors.

	// ErrInvalidReference indicates a calibration was requested with a
	// non-positive pixel distance or a non-positive known physical distance.
	// The previously stored scale must be left untouched.
	ErrInvalidReference = errors.New("invalid scale reference")

	// ErrScaleNotSet indicates a physical measurement was requested before
	// any scale factor was established. Callers must not substitute a default.
	ErrScaleNotSet = errors.New("scale not set")

	// Tiling Errors.

	// ErrInvalidTilingConfig indicates non-positive document or page
	// dimensions, a negative gutter, or a gutter that consumes the page.
	// No partial grid is produced.
	ErrInvalidTilingConfig = errors.New("invalid tiling configuration")

	// ErrPageTooSmall indicates the page, converted to document pixels,
	// falls below the configured minimum.
	ErrPageTooSmall = errors.New("page too small at this scale")

	// ErrTooManyTiles indicates the estimated tile count exceeds the
	// configured limit.
	ErrTooManyTiles = errors.New("too many tiles")

	// ErrUnknownPaper indicates a paper size name is not in the catalogue.
	ErrUnknownPaper = errors.New("unknown paper size")

	// Document Errors.

	// ErrUnsupportedDocument indicates the document format cannot be inspected.
	ErrUnsupportedDocument = errors.New("unsupported document format")
)
