// Package generator coordinates the full pipeline from OpenAPI document to
// UI property model: load, parse, visit every operation through the
// collector, and assemble the resource selector, the per-resource operation
// selectors, and the global field list. It applies sensible defaults while
// remaining open to dependency injection.
package generator
