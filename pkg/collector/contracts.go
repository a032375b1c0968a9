package collector

import (
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

// FieldDeriver converts raw parameter and request-body schemas into
// primitive property descriptors. FromRequestBody is expected to fail for
// absent or unsupported schemas; the assembler substitutes an advisory
// property in that case.
type FieldDeriver interface {
	FromParameters(params []pkgopenapi.Parameter) ([]props.Property, error)
	FromRequestBody(schema *pkgopenapi.Schema) ([]props.Property, error)
}

// Namer derives the four display strings of an option descriptor from an
// operation.
type Namer interface {
	Name(op pkgopenapi.Operation) string
	Value(op pkgopenapi.Operation) string
	Action(op pkgopenapi.Operation) string
	Description(op pkgopenapi.Operation) string
}

// SkipPolicy decides whether an operation should be left out of the
// generated model entirely.
type SkipPolicy interface {
	Skip(op pkgopenapi.Operation) bool
}

// SkipPolicyFunc adapts a function into a SkipPolicy.
type SkipPolicyFunc func(op pkgopenapi.Operation) bool

// Skip delegates to the underlying function.
func (fn SkipPolicyFunc) Skip(op pkgopenapi.Operation) bool {
	return fn(op)
}

// ResourceMapper derives the canonical resource identifier from an operation
// tag.
type ResourceMapper interface {
	Resource(tag string) string
}

// ResourceMapperFunc adapts a function into a ResourceMapper.
type ResourceMapperFunc func(tag string) string

// Resource delegates to the underlying function.
func (fn ResourceMapperFunc) Resource(tag string) string {
	return fn(tag)
}

// PathRewriter converts path placeholders into the templated-expression form
// used by routing templates.
type PathRewriter func(path string) string
