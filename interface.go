// Package beaver parses a subset of HTML into a document tree and
// serializes it back to markup.
//
// Parsing runs in two stages. The tokenizer package turns the input
// into tokens, and the treebuilder package assembles those into a
// node.Tree. Parse and Parser combine both and project the tree into
// a Document.
package beaver

import (
	"errors"
	"log/slog"

	"github.com/lestrrat-go/beaver/tokenizer"
	"github.com/lestrrat-go/beaver/treebuilder"
)

var (
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrMultipleDefinitions = errors.New("document has more than one definition")
)

type Parser struct {
	tokenizerOptions []tokenizer.Option
	builderOptions   []treebuilder.Option
	logger           *slog.Logger
}

// Document is the parsed form of an HTML document: an optional
// definition (the doctype) and a root element. Comments and text
// that precede the root element are kept in order.
type Document struct {
	definition *Definition
	prolog     []*Element
	root       *Element
}

// Definition holds the identifiers of a doctype declaration. Both are
// optional.
type Definition struct {
	publicID    string
	systemID    string
	hasPublicID bool
	hasSystemID bool
}

// Kind is the kind of an Element
type Kind int

const (
	ElementKind Kind = iota
	CommentKind
	TextKind
)

// Element is a node of the document. Depending on its Kind, it is an
// element with a name, attributes and children, or a comment or text
// with a value.
type Element struct {
	kind       Kind
	name       string
	value      string
	attributes []*Attribute
	children   []*Element
}

type Attribute struct {
	name  string
	value string
}

type Dumper struct{}
