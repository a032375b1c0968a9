// Package propgen compiles OpenAPI documents into a two-level UI property
// model: a resource selector, per-resource operation selectors, and the flat
// list of input properties whose visibility is bound to the selected
// (resource, operation) pair.
package propgen

import (
	"context"

	"github.com/goliatone/go-propgen/pkg/generator"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

// Result re-exports the generator output for convenience.
type Result = generator.Result

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate loads the OpenAPI source and compiles the full property model. It
// is the simplest entry point for callers that just want the model.
func Generate(ctx context.Context, source pkgopenapi.Source, options ...generator.Option) (generator.Result, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{Source: source})
}

// GenerateFromDocument compiles a property model from a pre-loaded document,
// bypassing the loader stage.
func GenerateFromDocument(ctx context.Context, doc pkgopenapi.Document, options ...generator.Option) (generator.Result, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{Document: &doc})
}
