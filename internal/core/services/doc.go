// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// ScaleResolver and TileGridGenerator are pure computations with no
// driven dependencies. Planner, SettingsService and ProjectService
// compose them with configuration and storage.
package services
