package selector

// Node is the capability a tree node exposes to the matcher.
type Node interface {
	// Tag returns the element's type name.
	Tag() string

	// ID returns the value of the id attribute, or "".
	ID() string

	// Classes returns the element's class names.
	Classes() []string

	// Namespace returns the element's namespace prefix, or "" for the
	// default namespace.
	Namespace() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)
}

// Element is a Node that can also walk to its parent and previous sibling.
// Both methods return nil when no such element exists.
type Element interface {
	Node
	ParentElement() Element
	PreviousElement() Element
}
