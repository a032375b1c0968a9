package collector

import (
	"fmt"
	"strings"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

const (
	additionalQueryParamsName        = "additionalQueryParameters"
	additionalQueryParamsDisplayName = "Additional Query Parameters"
	additionalBodyFieldsName         = "additionalBodyFields"
	additionalBodyFieldsDisplayName  = "Additional Body Fields"

	// noBodyAdvisory is reproduced byte-exact for downstream compatibility.
	noBodyAdvisory = "There's no body available for request, kindly use HTTP Request node to send body"
)

// assembleFields produces the ordered field list for one operation: required
// parameters inline, optional parameters folded into one collection,
// followed by the request-body fields under the same policy. Body derivation
// failure is a recoverable case substituted with a single advisory property.
func (c *Collector) assembleFields(op pkgopenapi.Operation) ([]props.Property, error) {
	var fields []props.Property

	paramFields, err := c.deriver.FromParameters(op.Parameters)
	if err != nil {
		return nil, fmt.Errorf("collector: derive parameters: %w", err)
	}
	required, optional := partitionRequired(paramFields)
	fields = append(fields, required...)
	if len(optional) > 0 {
		fields = append(fields, collectionProperty(additionalQueryParamsDisplayName, additionalQueryParamsName, optional))
	}

	if !op.HasRequestBody() {
		return fields, nil
	}

	bodyFields, err := c.deriver.FromRequestBody(op.RequestBody)
	if err != nil {
		c.sink.Warn("request body not derivable, advisory emitted",
			"path", op.Path,
			"method", op.Method,
			"operation", op.ID,
			"error", err.Error(),
		)
		return append(fields, advisoryProperty(op.Method, op.Path)), nil
	}

	required, optional = partitionRequired(bodyFields)
	fields = append(fields, required...)
	if len(optional) > 0 {
		fields = append(fields, collectionProperty(additionalBodyFieldsDisplayName, additionalBodyFieldsName, optional))
	}
	return fields, nil
}

// partitionRequired splits fields by their required flag, preserving the
// original order within each partition.
func partitionRequired(fields []props.Property) (required, optional []props.Property) {
	for _, field := range fields {
		if field.Required {
			required = append(required, field)
		} else {
			optional = append(optional, field)
		}
	}
	return required, optional
}

// collectionProperty folds optional fields into a single collection input so
// the generated pane stays compact.
func collectionProperty(displayName, name string, nested []props.Property) props.Property {
	return props.Property{
		DisplayName: displayName,
		Name:        name,
		Type:        props.TypeCollection,
		Placeholder: "Add Field",
		Default:     map[string]any{},
		Properties:  nested,
	}
}

// advisoryProperty is the non-interactive substitute emitted when a request
// body cannot be derived.
func advisoryProperty(method, path string) props.Property {
	return props.Property{
		DisplayName: fmt.Sprintf("%s %s<br/><br/>%s", strings.ToUpper(method), path, noBodyAdvisory),
		Name:        "requestBodyNotice",
		Type:        props.TypeNotice,
		Default:     "",
	}
}

// endpointNotice renders the raw endpoint ahead of an operation's fields
// when the collector is configured to always show it.
func endpointNotice(op pkgopenapi.Operation) props.Property {
	return props.Property{
		DisplayName: fmt.Sprintf("%s %s", strings.ToUpper(op.Method), op.Path),
		Name:        "endpointNotice",
		Type:        props.TypeNotice,
		Default:     "",
	}
}
