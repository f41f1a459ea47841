package beaver

import "fmt"

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case CommentKind:
		return "comment"
	case TextKind:
		return "text"
	default:
		return "unknown"
	}
}

func NewElement(name string) *Element {
	return &Element{kind: ElementKind, name: name}
}

func NewComment(data string) *Element {
	return &Element{kind: CommentKind, value: data}
}

func NewText(data string) *Element {
	return &Element{kind: TextKind, value: data}
}

func (e *Element) Kind() Kind {
	return e.kind
}

// Name returns the tag name. It is empty for comments and text.
func (e *Element) Name() string {
	return e.name
}

// Value returns the content of a comment or text
func (e *Element) Value() string {
	return e.value
}

func (e *Element) Attributes() []*Attribute {
	return e.attributes
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) AddChild(child *Element) error {
	if e.kind != ElementKind {
		return fmt.Errorf("cannot add a child to a %s: %w", e.kind, ErrInvalidOperation)
	}
	if child == e {
		return fmt.Errorf("cannot add an element to itself: %w", ErrInvalidOperation)
	}
	e.children = append(e.children, child)
	return nil
}

// AddAttribute appends attr. Attributes with the same name are kept.
func (e *Element) AddAttribute(attr *Attribute) error {
	if e.kind != ElementKind {
		return fmt.Errorf("cannot add an attribute to a %s: %w", e.kind, ErrInvalidOperation)
	}
	e.attributes = append(e.attributes, attr)
	return nil
}

// GetAttribute returns the first attribute named name
func (e *Element) GetAttribute(name string) (*Attribute, bool) {
	for _, attr := range e.attributes {
		if attr.name == name {
			return attr, true
		}
	}
	return nil, false
}
