package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-propgen/internal/derive"
	internalLoader "github.com/goliatone/go-propgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-propgen/internal/openapi/parser"
	"github.com/goliatone/go-propgen/pkg/collector"
	"github.com/goliatone/go-propgen/pkg/diag"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithSink injects the diagnostic sink shared with the collector.
func WithSink(sink diag.Sink) Option {
	return func(g *Generator) {
		g.sink = sink
	}
}

// WithCollectorOptions forwards options to the collector constructed for
// each Generate call.
func WithCollectorOptions(options ...collector.Option) Option {
	return func(g *Generator) {
		g.collectorOptions = append(g.collectorOptions, options...)
	}
}

// Generator coordinates loader, parser, and collector into the one-shot
// document compilation.
type Generator struct {
	loader           pkgopenapi.Loader
	parser           pkgopenapi.Parser
	sink             diag.Sink
	collectorOptions []collector.Option
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if g.sink == nil {
		g.sink = diag.Nop()
	}
}

// Request describes the inputs required to compile a property model.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have a
	// payload.
	Document *pkgopenapi.Document
}

// Result is the compiled property model: the resource selector, one
// operation selector per resource, and the flat field list in traversal
// order. Properties() flattens the three sections in UI rendering order.
type Result struct {
	Resource   props.Property
	Operations []props.Property
	Fields     []props.Property
	Stats      collector.Stats
}

// Properties returns the full property list in rendering order.
func (r Result) Properties() []props.Property {
	result := make([]props.Property, 0, 1+len(r.Operations)+len(r.Fields))
	result = append(result, r.Resource)
	result = append(result, r.Operations...)
	result = append(result, r.Fields...)
	return result
}

// FilterResources narrows the model to the named resources, dropping the
// selectors and fields of everything else. Unknown names are ignored.
func (r Result) FilterResources(names ...string) Result {
	keep := make(map[string]struct{}, len(names))
	for _, name := range names {
		keep[name] = struct{}{}
	}

	filtered := Result{Stats: r.Stats}

	filtered.Resource = r.Resource.Clone()
	filtered.Resource.Options = nil
	for _, option := range r.Resource.Options {
		if _, ok := keep[option.Value]; ok {
			filtered.Resource.Options = append(filtered.Resource.Options, option.Clone())
		}
	}

	keepProperty := func(p props.Property) bool {
		if p.Display == nil || len(p.Display.Show.Resource) == 0 {
			return true
		}
		for _, resource := range p.Display.Show.Resource {
			if _, ok := keep[resource]; ok {
				return true
			}
		}
		return false
	}

	for _, operation := range r.Operations {
		if keepProperty(operation) {
			filtered.Operations = append(filtered.Operations, operation.Clone())
		}
	}
	for _, field := range r.Fields {
		if keepProperty(field) {
			filtered.Fields = append(filtered.Fields, field.Clone())
		}
	}
	return filtered
}

// Generate executes the loader → parser → collector sequence and assembles
// the property model. The zero-resource condition is fatal: a document that
// yields no usable operations produces an error, never an empty model.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	api, err := g.parser.Parse(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("generator: parse document: %w", err)
	}

	options := append([]collector.Option{collector.WithSink(g.sink)}, g.collectorOptions...)
	col := collector.New(options...)
	for _, op := range api.Operations {
		col.Visit(op)
	}

	operations, err := col.Operations()
	if err != nil {
		return Result{}, fmt.Errorf("generator: derive operations: %w", err)
	}

	return Result{
		Resource:   resourceSelector(api, col.Resources()),
		Operations: operations,
		Fields:     col.Fields(),
		Stats:      col.Stats(),
	}, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("generator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("generator: load document: %w", err)
	}
	return doc, nil
}

// resourceSelector builds the top-level options property whose value drives
// which operation selector is visible. Choices follow the aggregate's
// first-seen resource order; descriptions come from the document's tag
// declarations when present.
func resourceSelector(api pkgopenapi.API, resources []string) props.Property {
	choices := make([]props.Option, 0, len(resources))
	for _, resource := range resources {
		choices = append(choices, props.Option{
			Name:        derive.DefaultLabeler(resource),
			Value:       resource,
			Description: api.TagDescription(resource),
		})
	}
	return props.Property{
		DisplayName: "Resource",
		Name:        "resource",
		Type:        props.TypeOptions,
		Options:     choices,
	}
}
