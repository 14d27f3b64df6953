package tui

import "errors"

// ErrMissingTilingService is returned when the tiling service is not provided.
var ErrMissingTilingService = errors.New("tui: tiling service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
