package beaver

import (
	"fmt"

	"github.com/lestrrat-go/beaver/node"
)

// FromTree projects a node tree, as produced by the tree builder, into
// a Document
func FromTree(tree *node.Tree) (*Document, error) {
	doc := NewDocument()
	for _, id := range tree.Roots() {
		if tree.Type(id) == node.DefinitionType {
			if doc.definition != nil {
				return nil, ErrMultipleDefinitions
			}
			doc.SetDefinition(definitionFromTree(tree, id))
			continue
		}

		e, err := elementFromTree(tree, id)
		if err != nil {
			return nil, err
		}
		if err := doc.Add(e); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func definitionFromTree(tree *node.Tree, id node.ID) *Definition {
	def := NewDefinition()
	if v, ok := tree.PublicID(id); ok {
		def.SetPublicID(v)
	}
	if v, ok := tree.SystemID(id); ok {
		def.SetSystemID(v)
	}
	return def
}

func elementFromTree(tree *node.Tree, id node.ID) (*Element, error) {
	switch typ := tree.Type(id); typ {
	case node.CommentType:
		return NewComment(tree.Data(id)), nil
	case node.TextType:
		return NewText(tree.Data(id)), nil
	case node.ElementType:
		e := NewElement(tree.Name(id))
		for _, attr := range tree.Attributes(id) {
			if err := e.AddAttribute(NewAttribute(tree.Name(attr), tree.Value(attr))); err != nil {
				return nil, err
			}
		}
		for _, child := range tree.Children(id) {
			c, err := elementFromTree(tree, child)
			if err != nil {
				return nil, err
			}
			if err := e.AddChild(c); err != nil {
				return nil, err
			}
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unexpected %s %d in tree: %w", typ, id, node.ErrInvalidNode)
	}
}
