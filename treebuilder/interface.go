// Package treebuilder turns a token sequence into a node tree by running
// the insertion mode state machine over it.
package treebuilder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lestrrat-go/beaver/internal/stack"
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/sax"
	"github.com/lestrrat-go/beaver/token"
)

var (
	ErrMissingHtmlTag     = errors.New("missing html tag")
	ErrMissingHeadTag     = errors.New("missing head tag")
	ErrMissingBodyTag     = errors.New("missing body tag")
	ErrMissingDoctypeTag  = errors.New("missing doctype")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTag         = errors.New("invalid tag")
	ErrDuplicateAttribute = errors.New("duplicate attribute")
)

// Mode is the insertion mode of the builder
type Mode int

const (
	ModeInitial Mode = iota
	ModeBeforeHTML
	ModeBeforeHead
	ModeInHead
	ModeAfterHead
	ModeInBody
	ModeText
	ModeAfterBody
	maxMode
)

// Error is returned when a token is not acceptable in the current
// insertion mode. Index is the position of Token in the input, or -1
// when the error was detected after the last token.
type Error struct {
	Err   error
	Mode  Mode
	Token token.Token
	Index int
}

// DuplicateAttributes controls what happens when a start tag carries
// the same attribute name more than once
type DuplicateAttributes int

const (
	// DuplicateAttributesPreserve keeps every occurrence in source order
	DuplicateAttributesPreserve DuplicateAttributes = iota
	// DuplicateAttributesReplace keeps the position of the first
	// occurrence and the value of the last one
	DuplicateAttributesReplace
	// DuplicateAttributesReject fails with ErrDuplicateAttribute
	DuplicateAttributesReject
)

type Builder struct {
	sax        sax.Handler
	duplicates DuplicateAttributes
}

type buildCtx struct {
	ctx        context.Context
	mode       Mode
	original   Mode
	tree       *node.Tree
	open       stack.Stack[node.ID]
	sax        sax.Handler
	duplicates DuplicateAttributes
	index      int
	token      token.Token
	log        *slog.Logger
	tracing    bool
}
