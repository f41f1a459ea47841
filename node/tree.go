package node

import (
	"fmt"
)

func New() *Tree {
	return &Tree{}
}

func (t *Tree) create(e entry) ID {
	t.entries = append(t.entries, e)
	return ID(len(t.entries) - 1)
}

func (t *Tree) lookup(id ID) (*entry, error) {
	if id < 0 || int(id) >= len(t.entries) {
		return nil, fmt.Errorf("node %d: %w", id, ErrInvalidNode)
	}
	return &t.entries[id], nil
}

func (t *Tree) get(id ID) *entry {
	e, err := t.lookup(id)
	if err != nil {
		return nil
	}
	return e
}

// CreateDefinition creates a document definition without identifiers.
// Use SetPublicID and SetSystemID to populate them.
func (t *Tree) CreateDefinition() ID {
	return t.create(entry{typ: DefinitionType})
}

func (t *Tree) CreateElement(name string) ID {
	return t.create(entry{typ: ElementType, name: name})
}

func (t *Tree) CreateComment(data string) ID {
	return t.create(entry{typ: CommentType, data: data})
}

func (t *Tree) CreateText(data string) ID {
	return t.create(entry{typ: TextType, data: data})
}

func (t *Tree) CreateAttribute(name, value string) ID {
	return t.create(entry{typ: AttributeType, name: name, data: value})
}

func (t *Tree) SetPublicID(id ID, v string) error {
	e, err := t.definition(id)
	if err != nil {
		return err
	}
	e.publicID = v
	e.hasPublicID = true
	return nil
}

func (t *Tree) SetSystemID(id ID, v string) error {
	e, err := t.definition(id)
	if err != nil {
		return err
	}
	e.systemID = v
	e.hasSystemID = true
	return nil
}

func (t *Tree) definition(id ID) (*entry, error) {
	e, err := t.lookup(id)
	if err != nil {
		return nil, err
	}
	if e.typ != DefinitionType {
		return nil, fmt.Errorf("%s %d is not a definition: %w", e.typ, id, ErrInvalidOperation)
	}
	return e, nil
}

func (t *Tree) element(id ID) (*entry, error) {
	e, err := t.lookup(id)
	if err != nil {
		return nil, err
	}
	if e.typ != ElementType {
		return nil, fmt.Errorf("%s %d is not an element: %w", e.typ, id, ErrInvalidOperation)
	}
	return e, nil
}

// AddChild appends child to the children of parent. Only elements may
// have children, and only elements, comments and text may be children.
func (t *Tree) AddChild(parent, child ID) error {
	p, err := t.element(parent)
	if err != nil {
		return err
	}
	c, err := t.lookup(child)
	if err != nil {
		return err
	}
	switch c.typ {
	case ElementType, CommentType, TextType:
	default:
		return fmt.Errorf("cannot add %s %d as a child: %w", c.typ, child, ErrInvalidOperation)
	}
	if parent == child {
		return fmt.Errorf("cannot add element %d to itself: %w", child, ErrInvalidOperation)
	}
	p.children = append(p.children, child)
	return nil
}

// AddAttribute appends attr to the attributes of element. Attributes
// with the same name are not merged.
func (t *Tree) AddAttribute(element, attr ID) error {
	p, err := t.element(element)
	if err != nil {
		return err
	}
	a, err := t.lookup(attr)
	if err != nil {
		return err
	}
	if a.typ != AttributeType {
		return fmt.Errorf("cannot add %s %d as an attribute: %w", a.typ, attr, ErrInvalidOperation)
	}
	p.attributes = append(p.attributes, attr)
	return nil
}

// SetAttribute replaces the value of the first attribute of element
// named name, or appends a new attribute if there is none. The ID of
// the affected attribute is returned.
func (t *Tree) SetAttribute(element ID, name, value string) (ID, error) {
	p, err := t.element(element)
	if err != nil {
		return InvalidID, err
	}
	for _, id := range p.attributes {
		if a := &t.entries[id]; a.name == name {
			a.data = value
			return id, nil
		}
	}
	id := t.CreateAttribute(name, value)
	// p may be stale after the arena grew
	p = &t.entries[element]
	p.attributes = append(p.attributes, id)
	return id, nil
}

// AddRoot appends id to the top level sequence
func (t *Tree) AddRoot(id ID) error {
	e, err := t.lookup(id)
	if err != nil {
		return err
	}
	if e.typ == AttributeType {
		return fmt.Errorf("cannot add attribute %d as a root: %w", id, ErrInvalidOperation)
	}
	t.roots = append(t.roots, id)
	return nil
}

// Roots returns the top level nodes in insertion order
func (t *Tree) Roots() []ID {
	return t.roots
}

// Len returns the number of nodes in the arena, including
// attributes and nodes that were never attached.
func (t *Tree) Len() int {
	return len(t.entries)
}

func (t *Tree) Type(id ID) Type {
	if e := t.get(id); e != nil {
		return e.typ
	}
	return InvalidType
}

// Name returns the name of an element or attribute
func (t *Tree) Name(id ID) string {
	if e := t.get(id); e != nil {
		return e.name
	}
	return ""
}

// Data returns the content of a comment or text node
func (t *Tree) Data(id ID) string {
	if e := t.get(id); e != nil && (e.typ == CommentType || e.typ == TextType) {
		return e.data
	}
	return ""
}

// Value returns the value of an attribute
func (t *Tree) Value(id ID) string {
	if e := t.get(id); e != nil && e.typ == AttributeType {
		return e.data
	}
	return ""
}

func (t *Tree) PublicID(id ID) (string, bool) {
	if e := t.get(id); e != nil && e.typ == DefinitionType {
		return e.publicID, e.hasPublicID
	}
	return "", false
}

func (t *Tree) SystemID(id ID) (string, bool) {
	if e := t.get(id); e != nil && e.typ == DefinitionType {
		return e.systemID, e.hasSystemID
	}
	return "", false
}

func (t *Tree) Children(id ID) []ID {
	if e := t.get(id); e != nil {
		return e.children
	}
	return nil
}

func (t *Tree) Attributes(id ID) []ID {
	if e := t.get(id); e != nil {
		return e.attributes
	}
	return nil
}

// Walk visits every root and its descendants depth first. Attributes
// are not visited; use Attributes on the element. If fn returns an
// error, the walk stops and the error is returned.
func (t *Tree) Walk(fn WalkFunc) error {
	for _, id := range t.roots {
		if err := t.walk(id, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) walk(id ID, depth int, fn WalkFunc) error {
	if err := fn(id, depth); err != nil {
		return err
	}
	for _, child := range t.Children(id) {
		if err := t.walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
