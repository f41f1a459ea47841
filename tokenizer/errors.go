package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func (e Error) Error() string {
	msg := e.Err.Error()
	switch {
	case e.Text != "":
		msg += " " + strconv.Quote(e.Text)
	case errors.Is(e.Err, ErrInvalidCharacter):
		msg += " " + strconv.QuoteRune(e.Char)
	}
	return fmt.Sprintf(
		"%s (state %s) at line %d, column %d\n -> '%s' <-- around here",
		msg,
		e.State,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e Error) Unwrap() error {
	return e.Err
}

// error decorates err with the position of the cursor. The cursor has
// not been advanced past c yet, so the position points at c itself and
// Line holds what precedes c on the current line.
func (ctx *consumeCtx) error(err error, c rune) error {
	return Error{
		Err:        err,
		Char:       c,
		State:      ctx.state,
		Column:     ctx.cursor.Column(),
		Line:       strings.TrimPrefix(ctx.cursor.Line(), "\n"),
		LineNumber: ctx.cursor.LineNumber(),
		Offset:     ctx.offset,
	}
}

func (ctx *consumeCtx) errorText(err error, c rune, text string) error {
	e := ctx.error(err, c).(Error)
	e.Text = text
	return e
}
