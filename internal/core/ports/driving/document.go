package driving

import (
	"context"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

// DocumentService reads drawing dimensions for the tiling flows.
type DocumentService interface {
	// Inspect returns the pixel size of the document at path.
	Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error)
}
