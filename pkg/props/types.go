package props

// Type is the simplified enum for UI-friendly property kinds.
type Type string

const (
	TypeString     Type = "string"
	TypeNumber     Type = "number"
	TypeBoolean    Type = "boolean"
	TypeOptions    Type = "options"
	TypeCollection Type = "collection"
	TypeJSON       Type = "json"
	TypeNotice     Type = "notice"
)

// Routing is the request template bound to an option at creation time: an
// uppercased HTTP method plus a URL template with path variables rewritten
// into expression form. It is never mutated after construction.
type Routing struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// Option is one selectable entry inside an options-type property. For
// operation selectors the Routing template describes the request the
// selection stands for.
type Option struct {
	Name        string   `json:"name"`
	Value       string   `json:"value"`
	Action      string   `json:"action,omitempty"`
	Description string   `json:"description,omitempty"`
	Routing     *Routing `json:"routing,omitempty"`
}

// Show lists the constraint values under which a property is visible. A
// property is shown when every non-empty list contains the currently
// selected value.
type Show struct {
	Resource  []string `json:"resource,omitempty"`
	Operation []string `json:"operation,omitempty"`
}

// DisplayOptions binds a property to the (resource, operation) selection
// that makes it visible.
type DisplayOptions struct {
	Show Show `json:"show"`
}

// Property models a single generated input inside the property list.
// Options carries the choices for options-type properties while Properties
// holds the nested inputs of collection-type properties; primitive
// properties leave both empty.
type Property struct {
	DisplayName string          `json:"displayName"`
	Name        string          `json:"name"`
	Type        Type            `json:"type"`
	Required    bool            `json:"required,omitempty"`
	Default     any             `json:"default,omitempty"`
	Description string          `json:"description,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Options     []Option        `json:"options,omitempty"`
	Properties  []Property      `json:"properties,omitempty"`
	Display     *DisplayOptions `json:"displayOptions,omitempty"`
}
