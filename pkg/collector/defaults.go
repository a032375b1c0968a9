package collector

import (
	"strings"

	"github.com/goliatone/go-propgen/internal/derive"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

const internalExtensionKey = "x-internal"

// defaultNamer derives option strings from the operation summary with the
// operation id as fallback material.
type defaultNamer struct{}

func (defaultNamer) Name(op pkgopenapi.Operation) string {
	if summary := strings.TrimSpace(op.Summary); summary != "" {
		return summary
	}
	return derive.DefaultLabeler(op.ID)
}

func (defaultNamer) Value(op pkgopenapi.Operation) string {
	return op.ID
}

func (defaultNamer) Action(op pkgopenapi.Operation) string {
	if summary := strings.TrimSpace(op.Summary); summary != "" {
		return summary
	}
	return strings.ToUpper(op.Method) + " " + op.Path
}

func (defaultNamer) Description(op pkgopenapi.Operation) string {
	return strings.TrimSpace(op.Description)
}

// defaultSkipPolicy leaves out deprecated operations and operations marked
// x-internal.
type defaultSkipPolicy struct{}

func (defaultSkipPolicy) Skip(op pkgopenapi.Operation) bool {
	if op.Deprecated {
		return true
	}
	if value, ok := op.Extensions[internalExtensionKey]; ok {
		if flagged, ok := value.(bool); ok && flagged {
			return true
		}
	}
	return false
}

// defaultResourceMapper uses the trimmed tag as the resource identifier.
type defaultResourceMapper struct{}

func (defaultResourceMapper) Resource(tag string) string {
	return strings.TrimSpace(tag)
}
