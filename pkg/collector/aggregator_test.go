package collector

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/props"
)

func TestResourceAggregate_InsertionOrder(t *testing.T) {
	t.Parallel()

	agg := newResourceAggregate()
	agg.add("zebra", props.Option{Value: "z1"})
	agg.add("ant", props.Option{Value: "a1"})
	agg.add("zebra", props.Option{Value: "z2"})
	agg.add("moth", props.Option{Value: "m1"})

	if agg.size() != 3 {
		t.Fatalf("expected 3 resources, got %d", agg.size())
	}
	if diff := cmp.Diff([]string{"zebra", "ant", "moth"}, agg.resources()); diff != "" {
		t.Fatalf("first-seen order not preserved (-want +got):\n%s", diff)
	}

	var order []string
	for resource, options := range agg.each() {
		order = append(order, resource)
		if resource == "zebra" {
			if len(options) != 2 || options[0].Value != "z1" || options[1].Value != "z2" {
				t.Fatalf("option append order lost: %+v", options)
			}
		}
	}
	if diff := cmp.Diff([]string{"zebra", "ant", "moth"}, order); diff != "" {
		t.Fatalf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestResourceAggregate_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	agg := newResourceAggregate()
	option := props.Option{Name: "List", Value: "list"}
	agg.add("pet", option)
	agg.add("pet", option)

	for _, options := range agg.each() {
		if len(options) != 2 {
			t.Fatalf("duplicates must be preserved, got %d options", len(options))
		}
	}
}
