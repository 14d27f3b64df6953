package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driven"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService reads document dimensions through an optional inspector.
type DocumentService struct {
	inspector driven.DocumentInspector
}

// NewDocumentService creates a document service. A nil inspector makes
// every Inspect call fail with domain.ErrUnsupportedDocument.
func NewDocumentService(inspector driven.DocumentInspector) *DocumentService {
	return &DocumentService{inspector: inspector}
}

// Inspect returns the pixel size of the document at path.
func (s *DocumentService) Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: document path is required", domain.ErrInvalidInput)
	}
	if s.inspector == nil {
		return nil, fmt.Errorf("%w: no document inspector configured", domain.ErrUnsupportedDocument)
	}
	return s.inspector.Inspect(ctx, path)
}
