package mcp

import (
	"context"

	"github.com/custodia-labs/tiler/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/core/services"
)

// mockTilingService is a mock implementation of driving.TilingService.
type mockTilingService struct {
	grid    *domain.TileGrid
	err     error
	lastReq driving.PlanRequest
}

func (m *mockTilingService) Generate(_, _ float64, _ domain.PageSpec) (*domain.TileGrid, error) {
	return m.grid, m.err
}

func (m *mockTilingService) Plan(_ context.Context, req driving.PlanRequest) (*domain.TileGrid, error) {
	m.lastReq = req
	return m.grid, m.err
}

// mockProjectService is a mock implementation of driving.ProjectService.
type mockProjectService struct {
	projects []domain.Project
	project  *domain.Project
	err      error
}

func (m *mockProjectService) Save(_ context.Context, p domain.Project) (*domain.Project, error) {
	return &p, m.err
}

func (m *mockProjectService) Get(_ context.Context, _ string) (*domain.Project, error) {
	return m.project, m.err
}

func (m *mockProjectService) List(_ context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	info *domain.DocumentInfo
	err  error
}

func (m *mockDocumentService) Inspect(_ context.Context, path string) (*domain.DocumentInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	info := *m.info
	info.Path = path
	return &info, nil
}

// newTestPorts wires the real services over in-memory stores.
func newTestPorts() *Ports {
	settings := services.NewSettingsService(memory.NewConfigStore())
	return &Ports{
		Scale:    services.NewScaleResolver(),
		Tiling:   services.NewPlanner(nil, settings),
		Settings: settings,
		Project:  services.NewProjectService(memory.NewProjectStore()),
	}
}
