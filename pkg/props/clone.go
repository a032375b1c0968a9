package props

// Clone creates a deep copy of the routing template.
func (r *Routing) Clone() *Routing {
	if r == nil {
		return nil
	}
	cloned := *r
	return &cloned
}

// Clone creates a deep copy of the option, including its routing template.
func (o Option) Clone() Option {
	cloned := o
	cloned.Routing = o.Routing.Clone()
	return cloned
}

// CloneOptions deep-copies a slice of options.
func CloneOptions(options []Option) []Option {
	if len(options) == 0 {
		return nil
	}
	cloned := make([]Option, len(options))
	for i, option := range options {
		cloned[i] = option.Clone()
	}
	return cloned
}

// Clone creates a deep copy of the display condition.
func (d *DisplayOptions) Clone() *DisplayOptions {
	if d == nil {
		return nil
	}
	cloned := DisplayOptions{}
	if len(d.Show.Resource) > 0 {
		cloned.Show.Resource = append([]string(nil), d.Show.Resource...)
	}
	if len(d.Show.Operation) > 0 {
		cloned.Show.Operation = append([]string(nil), d.Show.Operation...)
	}
	return &cloned
}

// Clone creates a deep copy of the property tree so callers can tag or
// mutate the copy without affecting the original.
func (p Property) Clone() Property {
	cloned := p
	cloned.Default = cloneValue(p.Default)
	cloned.Options = CloneOptions(p.Options)
	cloned.Properties = CloneProperties(p.Properties)
	cloned.Display = p.Display.Clone()
	return cloned
}

// CloneProperties deep-copies a slice of properties.
func CloneProperties(properties []Property) []Property {
	if len(properties) == 0 {
		return nil
	}
	cloned := make([]Property, len(properties))
	for i, property := range properties {
		cloned[i] = property.Clone()
	}
	return cloned
}

// cloneValue copies the container shapes that show up in schema defaults.
// Scalars are immutable and pass through unchanged.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(v))
		for key, item := range v {
			cloned[key] = cloneValue(item)
		}
		return cloned
	case []any:
		cloned := make([]any, len(v))
		for i, item := range v {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return value
	}
}
