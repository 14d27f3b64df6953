package driving

import (
	"context"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

// ProjectService manages saved tiling projects.
type ProjectService interface {
	// Save creates or updates a project. An empty ID is assigned.
	Save(ctx context.Context, project domain.Project) (*domain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// List returns all projects, most recently updated first.
	List(ctx context.Context) ([]domain.Project, error)

	// Delete removes a project.
	Delete(ctx context.Context, id string) error
}
