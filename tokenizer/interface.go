package tokenizer

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/beaver/token"
	"github.com/lestrrat-go/strcursor"
	"golang.org/x/text/cases"
)

var (
	ErrInvalidCharacter        = errors.New("invalid character")
	ErrInvalidDoctype          = errors.New("invalid doctype")
	ErrInvalidRootDeclaration  = errors.New("invalid root declaration")
	ErrInvalidKeyword          = errors.New("invalid keyword")
	ErrMissingRootDeclaration  = errors.New("missing root declaration")
	ErrMissingTagName          = errors.New("missing tag name")
	ErrMissingCommentDash      = errors.New("missing dash")
	ErrMissingPublicIdentifier = errors.New("missing public identifier")
	ErrMissingSystemIdentifier = errors.New("missing system identifier")
	ErrMissingWhitespace       = errors.New("missing whitespace")
	ErrEmptyComment            = errors.New("empty comment")
)

// Error is returned for every lexical error. Err is always one of the
// Err* sentinels above, so callers can use errors.Is to classify it.
type Error struct {
	Err        error
	Char       rune   // offending character
	Text       string // offending buffer contents, for the Invalid* keyword errors
	State      State
	Column     int
	Line       string
	LineNumber int
	Offset     int
}

// State is a state of the tokenizer. The zero value is StateData,
// which is where every run starts.
type State int

const (
	StateData State = iota
	StateStartTag
	StateMarkup
	StateTagName
	StateSelfClosing
	StateEndTag
	StateBeforeAttributeName
	StateAttributeName
	StateBeforeAttributeValue
	StateAttributeValue
	StateAfterAttributeValue
	StateCommentStart
	StateCommentStartDash
	StateComment
	StateCommentEndDash
	StateCommentEnd
	StateDoctype
	StateRootDeclaration
	StateKeyword
	StateBeforePublicIdentifier
	StatePublicIdentifier
	StateAfterPublicIdentifier
	StateBeforeSystemIdentifier
	StateSystemIdentifier
	StateAfterSystemIdentifier
	StateText
	maxState
)

// Tokenizer turns markup into a sequence of tokens. It only holds
// configuration, so a single Tokenizer may be shared.
type Tokenizer struct {
	asciiText bool
}

// consumeCtx holds the state of a single Consume call
type consumeCtx struct {
	state  State
	cursor strcursor.Cursor
	offset int // bytes consumed so far
	tokens []token.Token

	// the in-progress token, and the in-progress attribute when
	// current is a *token.Tag
	current token.Token
	attr    *token.Attribute
	quote   rune

	// character data of the in-progress comment or text token
	data strings.Builder

	// look-ahead buffer for the doctype keywords
	temp   strings.Builder
	rounds int

	caser     cases.Caser
	asciiText bool
	log       *slog.Logger
	tracing   bool
}
