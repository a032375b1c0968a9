package openapi

import (
	"errors"
	"fmt"
)

// Source identifies where an OpenAPI document originated so loaders can
// operate on files, fs.FS entries, or URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin. Exposing this type
// instead of kin-openapi structs keeps the public API decoupled from the
// parsing backend.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Tag is a tag declaration from the document root, carrying the description
// shown alongside the resource it names.
type Tag struct {
	Name        string
	Description string
}

// API is the parsed document view the generator traverses: document metadata,
// declared tags, and every operation in deterministic order.
type API struct {
	Title      string
	Version    string
	Tags       []Tag
	Operations []Operation
}

// TagDescription returns the declared description for a tag name, or "" when
// the document does not declare the tag.
func (a API) TagDescription(name string) string {
	for _, tag := range a.Tags {
		if tag.Name == name {
			return tag.Description
		}
	}
	return ""
}

// Parameter models one operation parameter. Location follows the OpenAPI
// "in" values: query, path, header, or cookie.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	Schema      *Schema
}

// Operation models the subset of OpenAPI operation metadata the collector
// needs: routing context, grouping tags, parameters, and an optional request
// body schema. A nil RequestBody means the operation declares no body.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Deprecated  bool
	Tags        []string
	Parameters  []Parameter
	RequestBody *Schema
	Extensions  map[string]any
}

// NewOperation validates the routing identity every operation must carry.
// Optional metadata is assigned on the returned value afterwards.
func NewOperation(id, method, path string) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{ID: id, Method: method, Path: path}, nil
}

// MustNewOperation panics when construction fails, assisting fixtures/tests.
func MustNewOperation(id, method, path string) Operation {
	op, err := NewOperation(id, method, path)
	if err != nil {
		panic(err)
	}
	return op
}

// HasRequestBody reports whether the operation declares a request body.
func (op Operation) HasRequestBody() bool {
	return op.RequestBody != nil
}

// Schema represents request bodies, parameters, and nested fields within an
// operation.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Description string
	Default     any
}

// Clone creates a deep copy of the schema tree to avoid accidental mutation.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	return cloned
}

// DebugString renders the schema for diagnostics without exposing backend
// structures.
func (s Schema) DebugString() string {
	summary := fmt.Sprintf("type=%s", s.Type)
	if s.Ref != "" {
		summary += fmt.Sprintf(",ref=%s", s.Ref)
	}
	if len(s.Required) > 0 {
		summary += fmt.Sprintf(",required=%d", len(s.Required))
	}
	if len(s.Properties) > 0 {
		summary += fmt.Sprintf(",properties=%d", len(s.Properties))
	}
	if s.Items != nil {
		summary += ",items=true"
	}
	return summary
}
