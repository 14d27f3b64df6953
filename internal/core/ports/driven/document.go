package driven

import (
	"context"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

// DocumentInspector reads the pixel dimensions of a drawing file.
type DocumentInspector interface {
	// Inspect returns the format and pixel size of the document at path.
	// Returns domain.ErrUnsupportedDocument for unrecognised formats.
	Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error)
}
