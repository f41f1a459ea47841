package treebuilder

import (
	"errors"
	"fmt"

	"github.com/lestrrat-go/beaver/internal/orderedmap"
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/token"
)

func (ctx *buildCtx) attachAttributes(id node.ID, attrs []token.Attribute) error {
	if len(attrs) == 0 {
		return nil
	}

	if ctx.duplicates == DuplicateAttributesPreserve {
		for _, attr := range attrs {
			if err := ctx.tree.AddAttribute(id, ctx.tree.CreateAttribute(attr.Name, attr.Value)); err != nil {
				return err
			}
		}
		return nil
	}

	m := orderedmap.New[string, string]()
	for _, attr := range attrs {
		if ctx.duplicates == DuplicateAttributesReject {
			if err := m.Set(attr.Name, attr.Value); err != nil {
				if errors.Is(err, orderedmap.ErrDuplicateEntry) {
					return fmt.Errorf("attribute %q: %w", attr.Name, ErrDuplicateAttribute)
				}
				return err
			}
			continue
		}
		m.Upsert(attr.Name, attr.Value)
	}

	for name, value := range m.Range() {
		if _, err := ctx.tree.SetAttribute(id, name, value); err != nil {
			return err
		}
	}
	return nil
}
