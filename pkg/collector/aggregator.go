package collector

import (
	"iter"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/goliatone/go-propgen/pkg/props"
)

// optionBucket holds the option sequence of one resource. Buckets are
// appended through a pointer so insertion order in the backing map is
// recorded once per resource.
type optionBucket struct {
	options []props.Option
}

// resourceAggregate maps resource identifiers to their ordered option
// sequences. Resources keep first-seen order, options keep append order, and
// identical options are preserved rather than deduplicated.
type resourceAggregate struct {
	buckets *sequencedmap.Map[string, *optionBucket]
}

func newResourceAggregate() *resourceAggregate {
	return &resourceAggregate{
		buckets: sequencedmap.New[string, *optionBucket](),
	}
}

// add appends an option to the resource's sequence, creating the sequence on
// first use.
func (a *resourceAggregate) add(resource string, option props.Option) {
	bucket, ok := a.buckets.Get(resource)
	if !ok {
		bucket = &optionBucket{}
		a.buckets.Set(resource, bucket)
	}
	bucket.options = append(bucket.options, option)
}

// size reports the number of distinct resources.
func (a *resourceAggregate) size() int {
	return a.buckets.Len()
}

// resources returns the resource identifiers in first-seen order.
func (a *resourceAggregate) resources() []string {
	result := make([]string, 0, a.buckets.Len())
	for resource := range a.buckets.Keys() {
		result = append(result, resource)
	}
	return result
}

// each yields (resource, options) pairs in insertion order.
func (a *resourceAggregate) each() iter.Seq2[string, []props.Option] {
	return func(yield func(string, []props.Option) bool) {
		for resource, bucket := range a.buckets.All() {
			if !yield(resource, bucket.options) {
				return
			}
		}
	}
}
