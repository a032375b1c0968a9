package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// methodOrder fixes the per-path traversal sequence. kin-openapi does not
// preserve document order, so paths are walked lexicographically and methods
// in this sequence to keep generated output reproducible.
var methodOrder = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "HEAD", "OPTIONS", "TRACE"}

// Parse converts a Document into the ordered API view.
func (p *Parser) Parse(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.API, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.API{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgopenapi.API{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return pkgopenapi.API{}, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return pkgopenapi.API{}, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if err := p.resolveReferences(ctx, spec); err != nil {
		return pkgopenapi.API{}, err
	}

	api := pkgopenapi.API{}
	if spec.Info != nil {
		api.Title = spec.Info.Title
		api.Version = spec.Info.Version
	}
	for _, tag := range spec.Tags {
		if tag == nil {
			continue
		}
		api.Tags = append(api.Tags, pkgopenapi.Tag{
			Name:        tag.Name,
			Description: tag.Description,
		})
	}

	if spec.Paths != nil {
		pathMap := spec.Paths.Map()
		paths := make([]string, 0, len(pathMap))
		for path := range pathMap {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			item := pathMap[path]
			if item == nil {
				continue
			}
			for _, method := range methodOrder {
				operation := item.GetOperation(method)
				if operation == nil {
					continue
				}
				converted, err := p.convertOperation(method, path, item, operation)
				if err != nil {
					// Operations missing routing identity are left out.
					continue
				}
				api.Operations = append(api.Operations, converted)
			}
		}
	}

	if len(api.Operations) == 0 && !p.options.AllowPartialDocuments {
		return pkgopenapi.API{}, errors.New("openapi parser: no operations extracted")
	}

	return api, nil
}

func (p *Parser) resolveReferences(ctx context.Context, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) convertOperation(method, path string, item *openapi3.PathItem, operation *openapi3.Operation) (pkgopenapi.Operation, error) {
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	op, err := pkgopenapi.NewOperation(opID, method, path)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Deprecated = operation.Deprecated
	op.Extensions = cloneExtensions(operation.Extensions)
	if len(operation.Tags) > 0 {
		op.Tags = append([]string(nil), operation.Tags...)
	}
	op.Parameters = p.extractParameters(item.Parameters, operation.Parameters)
	op.RequestBody = p.extractRequestSchema(operation.RequestBody)
	return op, nil
}

// extractParameters merges path-level parameters with operation-level ones,
// preserving declaration order. Operation parameters shadow path parameters
// with the same (name, in) pair.
func (p *Parser) extractParameters(shared, own openapi3.Parameters) []pkgopenapi.Parameter {
	seen := make(map[string]struct{}, len(own))
	key := func(name, in string) string { return in + ":" + name }

	var result []pkgopenapi.Parameter
	appendParam := func(ref *openapi3.ParameterRef) {
		if ref == nil || ref.Value == nil {
			return
		}
		value := ref.Value
		if _, dup := seen[key(value.Name, value.In)]; dup {
			return
		}
		seen[key(value.Name, value.In)] = struct{}{}

		param := pkgopenapi.Parameter{
			Name:        value.Name,
			In:          value.In,
			Description: value.Description,
			Required:    value.Required,
		}
		if value.Schema != nil {
			schema := convertSchema(value.Schema)
			param.Schema = &schema
		}
		result = append(result, param)
	}

	for _, ref := range own {
		appendParam(ref)
	}
	for _, ref := range shared {
		appendParam(ref)
	}
	return result
}

func (p *Parser) extractRequestSchema(requestBody *openapi3.RequestBodyRef) *pkgopenapi.Schema {
	if requestBody == nil {
		return nil
	}
	if requestBody.Value == nil {
		return &pkgopenapi.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			schema := convertSchema(mt.Schema)
			return &schema
		}
	}
	for _, mt := range content {
		schema := convertSchema(mt.Schema)
		return &schema
	}
	return &pkgopenapi.Schema{}
}

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func cloneExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	cloned := make(map[string]any, len(raw))
	for key, value := range raw {
		cloned[key] = value
	}
	return cloned
}
