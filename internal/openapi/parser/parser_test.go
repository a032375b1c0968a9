package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/testsupport"
)

const petstoreDoc = `
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
tags:
  - name: pets
    description: Everything about pets
paths:
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
    get:
      operationId: getPet
      summary: Get Pet
      tags: [pets]
      responses:
        "200":
          description: ok
  /pets:
    get:
      operationId: listPets
      summary: List Pets
      tags: [pets]
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: ok
    post:
      operationId: createPet
      summary: Create Pet
      tags: [pets]
      deprecated: true
      x-internal: true
      requestBody:
        content:
          text/plain:
            schema:
              type: string
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
                status:
                  type: string
                  enum: [available, sold]
      responses:
        "201":
          description: created
`

func parsePetstore(t *testing.T) pkgopenapi.API {
	t.Helper()

	p := New(pkgopenapi.NewParserOptions(pkgopenapi.WithReferenceResolution(false)))
	api, err := p.Parse(context.Background(), testsupport.DocumentFromString(t, petstoreDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return api
}

func TestParse_DeterministicOperationOrder(t *testing.T) {
	t.Parallel()

	api := parsePetstore(t)

	var ids []string
	for _, op := range api.Operations {
		ids = append(ids, op.ID)
	}
	// Paths walk lexicographically, methods GET before POST.
	want := []string{"listPets", "createPet", "getPet"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("operation order mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CapturesInfoAndTags(t *testing.T) {
	t.Parallel()

	api := parsePetstore(t)

	if api.Title != "Petstore" || api.Version != "1.0.0" {
		t.Fatalf("unexpected info: %q %q", api.Title, api.Version)
	}
	if got := api.TagDescription("pets"); got != "Everything about pets" {
		t.Fatalf("tag description = %q", got)
	}
}

func TestParse_MergesPathLevelParameters(t *testing.T) {
	t.Parallel()

	api := parsePetstore(t)

	getPet := findOperation(t, api, "getPet")
	if len(getPet.Parameters) != 1 {
		t.Fatalf("expected inherited path parameter, got %+v", getPet.Parameters)
	}
	param := getPet.Parameters[0]
	if param.Name != "petId" || param.In != "path" || !param.Required {
		t.Fatalf("unexpected parameter: %+v", param)
	}
	if param.Schema == nil || param.Schema.Type != "integer" {
		t.Fatalf("parameter schema not converted: %+v", param.Schema)
	}
}

func TestParse_RequestBodyPrefersJSON(t *testing.T) {
	t.Parallel()

	api := parsePetstore(t)

	createPet := findOperation(t, api, "createPet")
	if !createPet.HasRequestBody() {
		t.Fatal("expected request body schema")
	}
	body := createPet.RequestBody
	if body.Type != "object" {
		t.Fatalf("expected json media type to win, got %q", body.Type)
	}
	status, ok := body.Properties["status"]
	if !ok || len(status.Enum) != 2 {
		t.Fatalf("enum not carried through: %+v", body.Properties)
	}
	if len(body.Required) != 1 || body.Required[0] != "name" {
		t.Fatalf("required list mismatch: %+v", body.Required)
	}
}

func TestParse_CarriesDeprecationAndExtensions(t *testing.T) {
	t.Parallel()

	api := parsePetstore(t)

	createPet := findOperation(t, api, "createPet")
	if !createPet.Deprecated {
		t.Fatal("deprecated flag lost")
	}
	if flag, ok := createPet.Extensions["x-internal"].(bool); !ok || !flag {
		t.Fatalf("x-internal extension lost: %+v", createPet.Extensions)
	}
}

func TestParse_OperationIDFallback(t *testing.T) {
	t.Parallel()

	doc := testsupport.DocumentFromString(t, `
openapi: 3.0.3
info:
  title: Anonymous
  version: 0.1.0
paths:
  /ping:
    get:
      responses:
        "200":
          description: ok
`)

	p := New(pkgopenapi.NewParserOptions(pkgopenapi.WithReferenceResolution(false)))
	api, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(api.Operations) != 1 || api.Operations[0].ID != "get:/ping" {
		t.Fatalf("fallback id mismatch: %+v", api.Operations)
	}
}

func TestParse_RejectsDocumentsWithoutPaths(t *testing.T) {
	t.Parallel()

	doc := testsupport.DocumentFromString(t, `
openapi: 3.0.3
info:
  title: Empty
  version: 0.1.0
paths: {}
`)

	p := New(pkgopenapi.NewParserOptions())
	if _, err := p.Parse(context.Background(), doc); err == nil {
		t.Fatal("expected error for path-less document")
	}

	lenient := New(pkgopenapi.NewParserOptions(pkgopenapi.WithPartialDocuments(true)))
	api, err := lenient.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial parse: %v", err)
	}
	if len(api.Operations) != 0 {
		t.Fatalf("expected no operations, got %d", len(api.Operations))
	}
}

func findOperation(t *testing.T, api pkgopenapi.API, id string) pkgopenapi.Operation {
	t.Helper()

	for _, op := range api.Operations {
		if op.ID == id {
			return op
		}
	}
	t.Fatalf("operation %q not found", id)
	return pkgopenapi.Operation{}
}
