package derive

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

func TestFromParameters_PreservesOrderAndFlags(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	params := []pkgopenapi.Parameter{
		{Name: "petId", In: "path", Required: true, Schema: &pkgopenapi.Schema{Type: "integer"}},
		{Name: "limit", In: "query", Schema: &pkgopenapi.Schema{Type: "integer", Default: 20}},
		{Name: "verbose", In: "query", Schema: &pkgopenapi.Schema{Type: "boolean"}},
	}

	fields, err := d.FromParameters(params)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	want := []props.Property{
		{DisplayName: "Pet Id", Name: "petId", Type: props.TypeNumber, Required: true},
		{DisplayName: "Limit", Name: "limit", Type: props.TypeNumber, Default: 20},
		{DisplayName: "Verbose", Name: "verbose", Type: props.TypeBoolean},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("parameter fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromParameters_NilSchemaIsString(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	fields, err := d.FromParameters([]pkgopenapi.Parameter{{Name: "q", In: "query"}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if fields[0].Type != props.TypeString {
		t.Fatalf("expected string fallback, got %q", fields[0].Type)
	}
}

func TestFromParameters_EnumBecomesOptions(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	fields, err := d.FromParameters([]pkgopenapi.Parameter{{
		Name:   "status",
		In:     "query",
		Schema: &pkgopenapi.Schema{Type: "string", Enum: []any{"available", "sold"}},
	}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	field := fields[0]
	if field.Type != props.TypeOptions {
		t.Fatalf("expected options type, got %q", field.Type)
	}
	want := []props.Option{
		{Name: "Available", Value: "available"},
		{Name: "Sold", Value: "sold"},
	}
	if diff := cmp.Diff(want, field.Options); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestFromParameters_DescriptionsAreSanitized(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	fields, err := d.FromParameters([]pkgopenapi.Parameter{{
		Name:        "q",
		In:          "query",
		Description: `Search term <script>alert("x")</script>`,
	}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got := fields[0].Description; got != "Search term" {
		t.Fatalf("markup not stripped, got %q", got)
	}
}

func TestFromRequestBody_ObjectSchema(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	schema := &pkgopenapi.Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]pkgopenapi.Schema{
			"name":   {Type: "string"},
			"age":    {Type: "integer"},
			"labels": {Type: "array", Items: &pkgopenapi.Schema{Type: "string"}},
		},
	}

	fields, err := d.FromRequestBody(schema)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	want := []props.Property{
		{DisplayName: "Age", Name: "age", Type: props.TypeNumber},
		{DisplayName: "Labels", Name: "labels", Type: props.TypeJSON},
		{DisplayName: "Name", Name: "name", Type: props.TypeString, Required: true},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("body fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRequestBody_NestedObjectBecomesCollection(t *testing.T) {
	t.Parallel()

	d := New(Options{})
	schema := &pkgopenapi.Schema{
		Type: "object",
		Properties: map[string]pkgopenapi.Schema{
			"address": {
				Type:     "object",
				Required: []string{"city"},
				Properties: map[string]pkgopenapi.Schema{
					"city":   {Type: "string"},
					"street": {Type: "string"},
				},
			},
		},
	}

	fields, err := d.FromRequestBody(schema)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	address := fields[0]
	if address.Type != props.TypeCollection {
		t.Fatalf("expected nested collection, got %q", address.Type)
	}
	if len(address.Properties) != 2 || address.Properties[0].Name != "city" || !address.Properties[0].Required {
		t.Fatalf("nested properties mismatch: %+v", address.Properties)
	}
}

func TestFromRequestBody_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema *pkgopenapi.Schema
	}{
		{name: "absent schema", schema: nil},
		{name: "non-object schema", schema: &pkgopenapi.Schema{Type: "string"}},
		{name: "object without properties", schema: &pkgopenapi.Schema{Type: "object"}},
	}

	d := New(Options{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := d.FromRequestBody(tc.schema); err == nil {
				t.Fatal("expected derivation failure")
			}
		})
	}
}
