package props

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleProperty() Property {
	return Property{
		DisplayName: "Filters",
		Name:        "filters",
		Type:        TypeCollection,
		Default:     map[string]any{"page": 1, "tags": []any{"a"}},
		Properties: []Property{
			{DisplayName: "Status", Name: "status", Type: TypeOptions, Options: []Option{
				{Name: "Open", Value: "open", Routing: &Routing{Method: "GET", URL: "/open"}},
			}},
		},
		Display: &DisplayOptions{Show: Show{
			Resource:  []string{"pet"},
			Operation: []string{"listPets"},
		}},
	}
}

func TestPropertyClone_Independence(t *testing.T) {
	t.Parallel()

	original := sampleProperty()
	cloned := original.Clone()

	if diff := cmp.Diff(original, cloned); diff != "" {
		t.Fatalf("clone must be structurally identical (-original +clone):\n%s", diff)
	}

	cloned.Display.Show.Resource[0] = "tampered"
	cloned.Properties[0].Options[0].Routing.URL = "/tampered"
	cloned.Default.(map[string]any)["page"] = 99
	cloned.Default.(map[string]any)["tags"].([]any)[0] = "tampered"

	if original.Display.Show.Resource[0] != "pet" {
		t.Fatal("display condition leaked into the original")
	}
	if original.Properties[0].Options[0].Routing.URL != "/open" {
		t.Fatal("nested routing leaked into the original")
	}
	if original.Default.(map[string]any)["page"] != 1 {
		t.Fatal("default map leaked into the original")
	}
	if original.Default.(map[string]any)["tags"].([]any)[0] != "a" {
		t.Fatal("default slice leaked into the original")
	}
}

func TestCloneProperties_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if got := CloneProperties(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestOptionClone_RoutingDetached(t *testing.T) {
	t.Parallel()

	original := Option{Name: "Create", Value: "create", Routing: &Routing{Method: "POST", URL: "/pets"}}
	cloned := original.Clone()
	cloned.Routing.Method = "PUT"

	if original.Routing.Method != "POST" {
		t.Fatal("routing pointer shared between option and clone")
	}
}
