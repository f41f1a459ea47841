package beaver

import (
	"log/slog"

	"github.com/lestrrat-go/beaver/sax"
	"github.com/lestrrat-go/beaver/treebuilder"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

type identASCIIText struct{}
type identSAXHandler struct{}
type identDuplicateAttributes struct{}
type identLogger struct{}

// DuplicateAttributes is the policy applied to repeated attribute names
type DuplicateAttributes = treebuilder.DuplicateAttributes

const (
	DuplicateAttributesPreserve = treebuilder.DuplicateAttributesPreserve
	DuplicateAttributesReplace  = treebuilder.DuplicateAttributesReplace
	DuplicateAttributesReject   = treebuilder.DuplicateAttributesReject
)

// WithASCIIText rejects non-ASCII characters in text content
func WithASCIIText(v bool) ParseOption {
	return &parseOption{option.New(identASCIIText{}, v)}
}

// WithSAXHandler registers a handler that is notified of every node
// inserted into the tree
func WithSAXHandler(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAXHandler{}, v)}
}

// WithDuplicateAttributes sets the policy for attribute names that
// appear more than once in a start tag
func WithDuplicateAttributes(v DuplicateAttributes) ParseOption {
	return &parseOption{option.New(identDuplicateAttributes{}, v)}
}

// WithLogger specifies the logger that receives trace output. It has
// the same effect as calling WithTraceLogger on the context passed
// to Parse, except that a logger already in the context wins.
func WithLogger(v *slog.Logger) ParseOption {
	return &parseOption{option.New(identLogger{}, v)}
}
