// Package domain defines the core calendar entities for icsmerge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Calendar: A parsed calendar document with metadata and components
//   - Component: One structural element, either an *Event or a *Block
//   - Event: A VEVENT with its ordered property list
//   - Block: Any opaque non-event component (VTIMEZONE, VTODO, X- blocks)
//   - Property: One content line (name, value, parameters)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
