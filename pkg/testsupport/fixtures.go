package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source. Testing helpers fail fast to keep contract tests concise.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// DocumentFromString wraps an inline OpenAPI payload in a Document so tests
// can avoid fixture files for small documents.
func DocumentFromString(t *testing.T, raw string) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS("inline"), []byte(raw))
	if err != nil {
		t.Fatalf("inline document: %v", err)
	}
	return doc
}

// MustLoadProperties loads a JSON golden file into a property slice.
func MustLoadProperties(t *testing.T, path string) []props.Property {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out []props.Property
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}
