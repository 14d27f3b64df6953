// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration (TOML file)
//   - ProjectStore: Saved project persistence (SQLite)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentInspector: Reads document dimensions. Without it, callers
//     must pass explicit pixel sizes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
