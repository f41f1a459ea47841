package treebuilder

import (
	"github.com/lestrrat-go/beaver/sax"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identSAXHandler struct{}
type identDuplicateAttributes struct{}

// WithSAXHandler registers h to receive an event for every node
// inserted into the tree
func WithSAXHandler(h sax.Handler) Option {
	return option.New(identSAXHandler{}, h)
}

// WithDuplicateAttributes sets the policy for repeated attribute
// names. The default is DuplicateAttributesPreserve.
func WithDuplicateAttributes(v DuplicateAttributes) Option {
	return option.New(identDuplicateAttributes{}, v)
}
