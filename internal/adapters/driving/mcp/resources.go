package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for tiler resources.
	uriScheme = "tiler://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "papers",
		Name:        "papers",
		Description: "Supported paper sizes in millimetres",
		MIMEType:    mimeJSON,
	}, s.handlePapersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current scale, page layout and printer calibration",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "Saved tiling projects",
		MIMEType:    mimeJSON,
	}, s.handleProjectsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "projects/{projectId}",
		Name:        "project",
		Description: "A single saved project",
		MIMEType:    mimeJSON,
	}, s.handleProjectResource)
}

// handlePapersResource returns the paper catalogue.
func (s *Server) handlePapersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, domain.AllPapers())
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	info := struct {
		Paper       string                             `json:"paper"`
		Orientation string                             `json:"orientation"`
		GutterMM    float64                            `json:"gutter_mm"`
		MaxTiles    int                                `json:"max_tiles"`
		Scale       float64                            `json:"scale"`
		ScaleSet    bool                               `json:"scale_set"`
		Ratio       string                             `json:"ratio"`
		Units       string                             `json:"units"`
		Calibration map[string]domain.PrintCalibration `json:"calibration"`
	}{
		Paper:       settings.Tiling.PaperName,
		Orientation: settings.Tiling.Orientation.String(),
		GutterMM:    settings.Tiling.GutterMM,
		MaxTiles:    settings.Tiling.MaxTiles,
		Scale:       float64(settings.Scale),
		ScaleSet:    settings.Scale.IsSet(),
		Ratio:       settings.Scale.Ratio(),
		Units:       settings.Display.Units.String(),
		Calibration: map[string]domain.PrintCalibration{
			"portrait":  settings.Calibration.Portrait,
			"landscape": settings.Calibration.Landscape,
		},
	}

	return jsonResult(req.Params.URI, info)
}

// handleProjectsResource returns all saved projects.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Project == nil {
		return jsonResult(req.Params.URI, []domain.Project{})
	}

	projects, err := s.ports.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return jsonResult(req.Params.URI, projects)
}

// handleProjectResource returns one saved project.
func (s *Server) handleProjectResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Project == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractProjectID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	project, err := s.ports.Project.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return jsonResult(req.Params.URI, project)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractProjectID extracts the project ID from a URI like tiler://projects/{projectId}.
func extractProjectID(uri string) string {
	const prefix = uriScheme + "projects/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
