package treebuilder

import (
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/sax"
)

// parsedElement exposes an element of the tree under construction
// to sax handlers
type parsedElement struct {
	tree *node.Tree
	id   node.ID
}

func (e parsedElement) Name() string {
	return e.tree.Name(e.id)
}

func (e parsedElement) Attributes() []sax.ParsedAttribute {
	ids := e.tree.Attributes(e.id)
	if len(ids) == 0 {
		return nil
	}
	attrs := make([]sax.ParsedAttribute, len(ids))
	for i, id := range ids {
		attrs[i] = parsedAttribute{tree: e.tree, id: id}
	}
	return attrs
}

type parsedAttribute struct {
	tree *node.Tree
	id   node.ID
}

func (a parsedAttribute) Name() string {
	return a.tree.Name(a.id)
}

func (a parsedAttribute) Value() string {
	return a.tree.Value(a.id)
}

type parsedDefinition struct {
	tree *node.Tree
	id   node.ID
}

func (d parsedDefinition) PublicID() (string, bool) {
	return d.tree.PublicID(d.id)
}

func (d parsedDefinition) SystemID() (string, bool) {
	return d.tree.SystemID(d.id)
}
