package collector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-propgen/internal/derive"
	"github.com/goliatone/go-propgen/pkg/diag"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
	"github.com/goliatone/go-propgen/pkg/props"
)

// ErrNoResources reports that the traversal registered no resources at all,
// meaning the source document yielded no usable operations. Downstream
// generation must stop rather than emit an empty model.
var ErrNoResources = errors.New("collector: no resources registered")

// Option customises the collector configuration.
type Option func(*Collector)

// WithFieldDeriver injects a custom field deriver.
func WithFieldDeriver(deriver FieldDeriver) Option {
	return func(c *Collector) {
		c.deriver = deriver
	}
}

// WithNamer injects a custom option namer.
func WithNamer(namer Namer) Option {
	return func(c *Collector) {
		c.namer = namer
	}
}

// WithSkipPolicy injects a custom skip policy.
func WithSkipPolicy(policy SkipPolicy) Option {
	return func(c *Collector) {
		c.skip = policy
	}
}

// WithResourceMapper injects a custom tag→resource mapping.
func WithResourceMapper(mapper ResourceMapper) Option {
	return func(c *Collector) {
		c.resources = mapper
	}
}

// WithPathRewriter overrides the routing URL rewriter.
func WithPathRewriter(rewriter PathRewriter) Option {
	return func(c *Collector) {
		c.rewrite = rewriter
	}
}

// WithSink injects the diagnostic sink the collector reports through.
func WithSink(sink diag.Sink) Option {
	return func(c *Collector) {
		c.sink = sink
	}
}

// WithEndpointNotice toggles the variant that prepends one informational
// property showing the raw endpoint ahead of every operation's fields.
func WithEndpointNotice(enabled bool) Option {
	return func(c *Collector) {
		c.endpointNotice = enabled
	}
}

// Stats counts traversal outcomes so callers can surface how much of a
// document survived collection.
type Stats struct {
	Visited int
	Skipped int
	Dropped int
}

// Collector accumulates option descriptors grouped by resource and the
// global ordered field list while visiting operations one at a time.
type Collector struct {
	deriver        FieldDeriver
	namer          Namer
	skip           SkipPolicy
	resources      ResourceMapper
	rewrite        PathRewriter
	sink           diag.Sink
	endpointNotice bool

	aggregate *resourceAggregate
	fields    []props.Property
	stats     Stats
}

// New constructs a Collector applying any provided options. Missing
// collaborators are initialised with the built-in implementations.
func New(options ...Option) *Collector {
	c := &Collector{
		aggregate: newResourceAggregate(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Collector) applyDefaults() {
	if c.deriver == nil {
		c.deriver = derive.New(derive.Options{})
	}
	if c.namer == nil {
		c.namer = defaultNamer{}
	}
	if c.skip == nil {
		c.skip = defaultSkipPolicy{}
	}
	if c.resources == nil {
		c.resources = defaultResourceMapper{}
	}
	if c.rewrite == nil {
		c.rewrite = RewritePathVariables
	}
	if c.sink == nil {
		c.sink = diag.Nop()
	}
}

// Visit processes exactly one operation. It never fails: any error while
// collecting is logged at warning severity with the operation's diagnostic
// context and the operation is dropped so the traversal can continue.
func (c *Collector) Visit(op pkgopenapi.Operation) {
	c.stats.Visited++
	if err := c.collect(op); err != nil {
		c.stats.Dropped++
		c.sink.Warn("operation dropped",
			"path", op.Path,
			"method", op.Method,
			"operation", op.ID,
			"error", err.Error(),
		)
	}
}

func (c *Collector) collect(op pkgopenapi.Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collector: panic while collecting: %v", r)
		}
	}()

	if c.skip.Skip(op) {
		c.stats.Skipped++
		c.sink.Info("operation skipped",
			"path", op.Path,
			"method", op.Method,
			"operation", op.ID,
		)
		return nil
	}

	option := props.Option{
		Name:        c.namer.Name(op),
		Value:       c.namer.Value(op),
		Action:      c.namer.Action(op),
		Description: c.namer.Description(op),
		Routing: &props.Routing{
			Method: strings.ToUpper(op.Method),
			URL:    c.rewrite(op.Path),
		},
	}

	fields, err := c.assembleFields(op)
	if err != nil {
		return err
	}
	if c.endpointNotice {
		fields = append([]props.Property{endpointNotice(op)}, fields...)
	}

	if len(op.Tags) == 0 {
		return fmt.Errorf("collector: operation %q has no tags to group under", op.ID)
	}

	for _, tag := range op.Tags {
		resource := c.resources.Resource(tag)

		// Each resource receives an independent copy so visibility tagging
		// cannot leak across resources.
		copied := props.CloneProperties(fields)
		for i := range copied {
			copied[i].Display = &props.DisplayOptions{
				Show: props.Show{
					Resource:  []string{resource},
					Operation: []string{option.Value},
				},
			}
		}

		c.aggregate.add(resource, option.Clone())
		c.fields = append(c.fields, copied...)
	}
	return nil
}

// Operations derives the finalized option set: one options-type selector per
// resource, visible only when that resource is selected, whose choices are
// the resource's option sequence. It fails with ErrNoResources when nothing
// was registered.
func (c *Collector) Operations() ([]props.Property, error) {
	if c.aggregate.size() == 0 {
		return nil, ErrNoResources
	}

	result := make([]props.Property, 0, c.aggregate.size())
	for resource, options := range c.aggregate.each() {
		result = append(result, props.Property{
			DisplayName: "Operation",
			Name:        "operation",
			Type:        props.TypeOptions,
			Options:     props.CloneOptions(options),
			Display: &props.DisplayOptions{
				Show: props.Show{
					Resource: []string{resource},
				},
			},
		})
	}
	return result, nil
}

// Fields returns the global ordered field list as a defensive copy.
func (c *Collector) Fields() []props.Property {
	return props.CloneProperties(c.fields)
}

// Resources returns the registered resource identifiers in first-seen order.
func (c *Collector) Resources() []string {
	return c.aggregate.resources()
}

// Stats reports the traversal counters accumulated so far.
func (c *Collector) Stats() Stats {
	return c.stats
}
