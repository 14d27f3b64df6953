package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driven"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages saved tiling projects.
type ProjectService struct {
	store driven.ProjectStore
	now   func() time.Time
}

// NewProjectService creates a new project service.
func NewProjectService(store driven.ProjectStore) *ProjectService {
	return &ProjectService{
		store: store,
		now:   time.Now,
	}
}

// Save creates or updates a project. A new project gets a generated ID
// and creation time; an existing one keeps its creation time.
func (s *ProjectService) Save(ctx context.Context, project domain.Project) (*domain.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}
	if project.DocWidth < 0 || project.DocHeight < 0 {
		return nil, fmt.Errorf("%w: document size must not be negative", domain.ErrInvalidInput)
	}
	if project.Scale != 0 {
		if err := project.Scale.Validate(); err != nil {
			return nil, err
		}
	}
	if project.PaperName != "" {
		paper, err := domain.LookupPaper(project.PaperName)
		if err != nil {
			return nil, err
		}
		project.PaperName = paper.Name
	}
	if project.Orientation != "" && !project.Orientation.IsValid() {
		return nil, fmt.Errorf("%w: orientation %q", domain.ErrInvalidInput, project.Orientation)
	}

	now := s.now().UTC()
	if project.ID == "" {
		project.ID = uuid.New().String()
		project.CreatedAt = now
	} else if existing, err := s.store.Get(ctx, project.ID); err == nil {
		project.CreatedAt = existing.CreatedAt
	} else if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	if err := s.store.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return &project, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: project id is required", domain.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}
