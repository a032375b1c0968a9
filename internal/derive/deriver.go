package derive

import (
	"errors"
	"fmt"
	"sort"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

// Options configures the behaviour of the Deriver. Construction lives in the
// packages that wire the deriver, mirroring the loader/parser split.
type Options struct {
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
	}
}

// Deriver converts parameter and request-body schemas into primitive
// property descriptors. It is the default field deriver behind the
// collector's FieldDeriver contract.
type Deriver struct {
	opts Options
}

// New creates a Deriver with the supplied options.
func New(options Options) *Deriver {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Deriver{opts: opts}
}

// FromParameters converts operation parameters into properties, one per
// parameter, preserving declaration order. A parameter without a schema is
// treated as a plain string input.
func (d *Deriver) FromParameters(params []pkgopenapi.Parameter) ([]props.Property, error) {
	if len(params) == 0 {
		return nil, nil
	}

	result := make([]props.Property, 0, len(params))
	for _, param := range params {
		if param.Name == "" {
			return nil, errors.New("derive: parameter without a name")
		}
		schema := pkgopenapi.Schema{Type: "string"}
		if param.Schema != nil {
			schema = *param.Schema
		}
		property := d.fromSchema(param.Name, schema, param.Required)
		if description := sanitizeDescription(param.Description); description != "" {
			property.Description = description
		}
		result = append(result, property)
	}
	return result, nil
}

// FromRequestBody converts a request-body schema into one property per
// top-level object property. Derivation fails for absent or non-object
// schemas; callers are expected to substitute an advisory in that case.
func (d *Deriver) FromRequestBody(schema *pkgopenapi.Schema) ([]props.Property, error) {
	if schema == nil {
		return nil, errors.New("derive: request body has no schema")
	}
	if schema.Type != "" && schema.Type != "object" {
		return nil, fmt.Errorf("derive: unsupported request body schema (%s)", schema.DebugString())
	}
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("derive: request body schema has no properties (%s)", schema.DebugString())
	}

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]props.Property, 0, len(names))
	for _, name := range names {
		_, required := requiredSet[name]
		result = append(result, d.fromSchema(name, schema.Properties[name], required))
	}
	return result, nil
}

func (d *Deriver) fromSchema(name string, schema pkgopenapi.Schema, required bool) props.Property {
	property := props.Property{
		DisplayName: d.opts.Labeler(name),
		Name:        name,
		Required:    required,
		Description: sanitizeDescription(schema.Description),
		Default:     schema.Default,
	}

	if len(schema.Enum) > 0 {
		property.Type = props.TypeOptions
		property.Options = d.choicesFromEnum(schema.Enum)
		return property
	}

	switch schema.Type {
	case "integer", "number":
		property.Type = props.TypeNumber
	case "boolean":
		property.Type = props.TypeBoolean
	case "array":
		property.Type = props.TypeJSON
	case "object":
		if len(schema.Properties) > 0 {
			property.Type = props.TypeCollection
			property.Properties = d.nestedProperties(schema)
		} else {
			property.Type = props.TypeJSON
		}
	default:
		property.Type = props.TypeString
	}
	return property
}

func (d *Deriver) nestedProperties(schema pkgopenapi.Schema) []props.Property {
	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	nested := make([]props.Property, 0, len(names))
	for _, name := range names {
		_, required := requiredSet[name]
		nested = append(nested, d.fromSchema(name, schema.Properties[name], required))
	}
	return nested
}

func (d *Deriver) choicesFromEnum(enum []any) []props.Option {
	choices := make([]props.Option, 0, len(enum))
	for _, value := range enum {
		raw := fmt.Sprintf("%v", value)
		choices = append(choices, props.Option{
			Name:  d.opts.Labeler(raw),
			Value: raw,
		})
	}
	return choices
}
