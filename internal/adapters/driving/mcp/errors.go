// Package mcp provides an MCP (Model Context Protocol) server adapter for tiler.
// It lets AI assistants calibrate drawing scales, measure distances and plan
// print grids through the same services as the CLI.
package mcp

import "errors"

// ErrMissingScaleService is returned when the scale service is not provided.
var ErrMissingScaleService = errors.New("mcp: scale service is required")

// ErrMissingTilingService is returned when the tiling service is not provided.
var ErrMissingTilingService = errors.New("mcp: tiling service is required")
