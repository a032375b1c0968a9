package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

func TestLoad_FromFS(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"specs/petstore.yaml": &fstest.MapFile{Data: []byte("openapi: 3.0.3\n")},
	}
	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/petstore.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := string(doc.Raw()); got != "openapi: 3.0.3\n" {
		t.Fatalf("unexpected payload: %q", got)
	}
	if doc.Source().Kind() != pkgopenapi.SourceKindFS {
		t.Fatalf("unexpected source kind: %v", doc.Source().Kind())
	}
}

func TestLoad_FSRequiresFilesystem(t *testing.T) {
	t.Parallel()

	l := New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("missing.yaml")); err == nil {
		t.Fatal("expected error when no filesystem is configured")
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	t.Parallel()

	l := New(pkgopenapi.NewLoaderOptions())
	_, err := l.Load(context.Background(), pkgopenapi.SourceFromURL("https://example.com/openapi.json"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected disabled-http error, got %v", err)
	}
}

func TestLoad_HTTPFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"openapi":"3.0.3"}`))
	}))
	defer server.Close()

	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(0)))
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := string(doc.Raw()); got != `{"openapi":"3.0.3"}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestLoad_HTTPServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(0)))
	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestLoad_NilSource(t *testing.T) {
	t.Parallel()

	l := New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
