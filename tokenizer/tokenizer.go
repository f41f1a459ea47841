// Package tokenizer implements the lexical stage of the parser: a
// character driven state machine that turns markup into tokens.
package tokenizer

import (
	"bytes"
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/lestrrat-go/beaver/internal/debug"
	"github.com/lestrrat-go/beaver/internal/trace"
	"github.com/lestrrat-go/beaver/token"
	"github.com/lestrrat-go/strcursor"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Consume tokenizes b with a default Tokenizer
func Consume(ctx context.Context, b []byte) ([]token.Token, error) {
	return New().Consume(ctx, b)
}

func New(options ...Option) *Tokenizer {
	var t Tokenizer
	for _, option := range options {
		switch option.Ident() {
		case identASCIIText{}:
			t.asciiText = option.Value().(bool)
		}
	}
	return &t
}

// Consume runs the state machine over b and returns the emitted tokens.
// The first malformed character aborts the run; no tokens are returned
// in that case. Running out of input in the middle of a construct is
// not an error, the unfinished token is simply dropped.
//
// Input must be valid UTF-8. U+FFFD is rejected as well, since the
// cursor cannot tell it apart from a decoding failure.
func (t *Tokenizer) Consume(ctx context.Context, b []byte) ([]token.Token, error) {
	if err := checkEncoding(b); err != nil {
		return nil, err
	}

	cctx := newConsumeCtx(ctx, t, b)
	for !cctx.cursor.Done() {
		c := cctx.cursor.Peek()
		next, err := cctx.step(c)
		if err != nil {
			if cctx.tracing {
				cctx.log.DebugContext(ctx, "tokenizer error", slog.String("error", err.Error()))
			}
			return nil, err
		}
		if cctx.tracing && next != cctx.state {
			cctx.log.DebugContext(ctx, "transition",
				slog.String("from", cctx.state.String()),
				slog.String("to", next.String()),
				slog.String("char", string(c)),
			)
		}
		cctx.state = next
		if err := cctx.cursor.Advance(1); err != nil {
			return nil, cctx.error(err, c)
		}
		cctx.offset += utf8.RuneLen(c)
	}
	cctx.finish()
	if debug.Enabled {
		debug.Dump(cctx.tokens)
	}
	return cctx.tokens, nil
}

func newConsumeCtx(ctx context.Context, t *Tokenizer, b []byte) *consumeCtx {
	l := trace.FromContext(ctx, "tokenizer")
	return &consumeCtx{
		state:     StateData,
		cursor:    strcursor.NewRuneCursor(bytes.NewReader(b)),
		caser:     cases.Upper(language.Und),
		asciiText: t.asciiText,
		log:       l,
		tracing:   l.Enabled(ctx, slog.LevelDebug),
	}
}

// checkEncoding reports the first byte sequence in b that does not
// decode to a usable rune. The position is computed the same way the
// cursor does it: lines and columns count from 1.
func checkEncoding(b []byte) error {
	lineno, column, start := 1, 1, 0
	for i := 0; i < len(b); {
		r, w := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError {
			return Error{
				Err:        ErrInvalidCharacter,
				Char:       r,
				State:      StateData,
				Column:     column,
				Line:       string(b[start:i]),
				LineNumber: lineno,
				Offset:     i,
			}
		}
		i += w
		if r == '\n' {
			lineno++
			column = 1
			start = i
			continue
		}
		column++
	}
	return nil
}

// step dispatches c to the handler for the current state and returns
// the state to move to.
func (ctx *consumeCtx) step(c rune) (State, error) {
	if debug.Enabled {
		debug.Printf("%s <- %q", ctx.state, c)
	}

	switch ctx.state {
	case StateData:
		return ctx.consumeData(c)
	case StateStartTag:
		return ctx.consumeStartTag(c)
	case StateMarkup:
		return ctx.consumeMarkup(c)
	case StateTagName:
		return ctx.consumeTagName(c)
	case StateSelfClosing:
		return ctx.consumeSelfClosing(c)
	case StateEndTag:
		return ctx.consumeEndTag(c)
	case StateBeforeAttributeName:
		return ctx.consumeBeforeAttributeName(c)
	case StateAttributeName:
		return ctx.consumeAttributeName(c)
	case StateBeforeAttributeValue:
		return ctx.consumeBeforeAttributeValue(c)
	case StateAttributeValue:
		return ctx.consumeAttributeValue(c)
	case StateAfterAttributeValue:
		return ctx.consumeAfterAttributeValue(c)
	case StateCommentStart:
		return ctx.consumeCommentStart(c)
	case StateCommentStartDash:
		return ctx.consumeCommentStartDash(c)
	case StateComment:
		return ctx.consumeComment(c)
	case StateCommentEndDash:
		return ctx.consumeCommentEndDash(c)
	case StateCommentEnd:
		return ctx.consumeCommentEnd(c)
	case StateDoctype:
		return ctx.consumeDoctype(c)
	case StateRootDeclaration:
		return ctx.consumeRootDeclaration(c)
	case StateKeyword:
		return ctx.consumeKeyword(c)
	case StateBeforePublicIdentifier:
		return ctx.consumeBeforePublicIdentifier(c)
	case StatePublicIdentifier:
		return ctx.consumePublicIdentifier(c)
	case StateAfterPublicIdentifier:
		return ctx.consumeAfterPublicIdentifier(c)
	case StateBeforeSystemIdentifier:
		return ctx.consumeBeforeSystemIdentifier(c)
	case StateSystemIdentifier:
		return ctx.consumeSystemIdentifier(c)
	case StateAfterSystemIdentifier:
		return ctx.consumeAfterSystemIdentifier(c)
	case StateText:
		return ctx.consumeText(c)
	}
	return ctx.state, ctx.error(ErrInvalidCharacter, c)
}

// emit moves the in-progress token to the output
func (ctx *consumeCtx) emit() {
	if ctx.current == nil {
		return
	}
	switch t := ctx.current.(type) {
	case *token.Comment:
		t.Data = ctx.data.String()
	case *token.Text:
		t.Data = ctx.data.String()
	}
	ctx.data.Reset()

	if ctx.tracing {
		ctx.log.Debug("emit", slog.String("token", ctx.current.String()))
	}
	ctx.tokens = append(ctx.tokens, ctx.current)
	ctx.current = nil
	ctx.attr = nil
}

// finish is called when the input is exhausted. Only pending text is
// kept, everything else that is unterminated is dropped.
func (ctx *consumeCtx) finish() {
	if ctx.state == StateText {
		if _, ok := ctx.current.(*token.Text); ok && ctx.data.Len() > 0 {
			ctx.emit()
		}
	}
	ctx.current = nil
	ctx.attr = nil
}

// reset clears the look-ahead buffer and allows it to receive
// at most rounds more letters.
func (ctx *consumeCtx) reset(rounds int) {
	ctx.temp.Reset()
	ctx.rounds = rounds
}

func (ctx *consumeCtx) tag() *token.Tag {
	t, _ := ctx.current.(*token.Tag)
	return t
}

func (ctx *consumeCtx) document() *token.Document {
	d, _ := ctx.current.(*token.Document)
	return d
}

