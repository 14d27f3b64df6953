package driven

import (
	"context"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

// ProjectStore persists saved tiling projects.
type ProjectStore interface {
	// Save creates or replaces a project keyed by ID.
	Save(ctx context.Context, project domain.Project) error

	// Get retrieves a project by ID.
	// Returns domain.ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// List returns all projects ordered by most recent update first.
	List(ctx context.Context) ([]domain.Project, error)

	// Delete removes a project by ID.
	// Returns domain.ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error
}
