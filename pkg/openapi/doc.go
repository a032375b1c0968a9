// Package openapi exposes the public contracts for the loader and parser
// stages plus the domain wrappers the collection pipeline consumes.
// Implementations live under internal/openapi so the kin-openapi dependency
// stays hidden from consumers.
package openapi
