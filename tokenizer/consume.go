package tokenizer

import "github.com/lestrrat-go/beaver/token"

func (ctx *consumeCtx) consumeData(c rune) (State, error) {
	if c == '<' {
		return StateStartTag, nil
	}
	return StateData, nil
}

func (ctx *consumeCtx) consumeStartTag(c rune) (State, error) {
	switch {
	case c == '>':
		return StateStartTag, ctx.error(ErrMissingTagName, c)
	case c == '!':
		return StateMarkup, nil
	case c == '/':
		return StateEndTag, nil
	case isLetter(c):
		ctx.current = &token.Tag{Name: string(c)}
		return StateTagName, nil
	}
	return StateStartTag, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeEndTag(c rune) (State, error) {
	switch {
	case c == '>':
		return StateEndTag, ctx.error(ErrMissingTagName, c)
	case isLetter(c):
		ctx.current = &token.Tag{Name: string(c), EndTag: true}
		return StateTagName, nil
	}
	return StateEndTag, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeTagName(c rune) (State, error) {
	switch {
	case isBlankCh(c):
		return StateBeforeAttributeName, nil
	case c == '/':
		return StateSelfClosing, nil
	case c == '>':
		ctx.emit()
		return StateText, nil
	case isLetterOrDigit(c):
		if t := ctx.tag(); t != nil {
			t.Name += string(c)
		}
		return StateTagName, nil
	}
	return StateTagName, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeSelfClosing(c rune) (State, error) {
	if c == '>' {
		if t := ctx.tag(); t != nil {
			t.SelfClosing = true
		}
		ctx.emit()
		return StateText, nil
	}
	// anything between '/' and '>' is ignored
	return StateSelfClosing, nil
}

func (ctx *consumeCtx) consumeBeforeAttributeName(c rune) (State, error) {
	switch {
	case isBlankCh(c):
		return StateBeforeAttributeName, nil
	case c == '/':
		return StateSelfClosing, nil
	case c == '>':
		ctx.emit()
		return StateText, nil
	case isLetter(c):
		ctx.attr = &token.Attribute{Name: string(c)}
		return StateAttributeName, nil
	}
	return StateBeforeAttributeName, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeAttributeName(c rune) (State, error) {
	switch {
	case c == '=':
		return StateBeforeAttributeValue, nil
	case isLetter(c):
		if ctx.attr != nil {
			ctx.attr.Name += string(c)
		}
		return StateAttributeName, nil
	}
	return StateAttributeName, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeBeforeAttributeValue(c rune) (State, error) {
	if isQuote(c) {
		ctx.quote = c
		return StateAttributeValue, nil
	}
	return StateBeforeAttributeValue, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeAttributeValue(c rune) (State, error) {
	switch {
	case c == ctx.quote:
		if t, attr := ctx.tag(), ctx.attr; t != nil && attr != nil {
			t.AddAttribute(attr.Name, attr.Value)
		}
		ctx.attr = nil
		ctx.quote = 0
		return StateAfterAttributeValue, nil
	case isLetter(c):
		if ctx.attr != nil {
			ctx.attr.Value += string(c)
		}
		return StateAttributeValue, nil
	}
	return StateAttributeValue, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeAfterAttributeValue(c rune) (State, error) {
	switch {
	case c == '/':
		return StateSelfClosing, nil
	case c == '>':
		ctx.emit()
		return StateText, nil
	case isBlankCh(c):
		return StateBeforeAttributeName, nil
	}
	return StateAfterAttributeValue, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeMarkup(c rune) (State, error) {
	switch {
	case isLetter(c):
		ctx.reset(7)
		ctx.current = &token.Document{}
		return ctx.consumeDoctype(c)
	case c == '-':
		ctx.current = &token.Comment{}
		ctx.data.Reset()
		return StateCommentStart, nil
	}
	return StateMarkup, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeCommentStart(c rune) (State, error) {
	switch c {
	case '-':
		return StateCommentStartDash, nil
	case '>':
		return StateCommentStart, ctx.error(ErrEmptyComment, c)
	}
	return StateCommentStart, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeCommentStartDash(c rune) (State, error) {
	switch c {
	case '-':
		return StateCommentEndDash, nil
	case '>':
		return StateCommentStartDash, ctx.error(ErrEmptyComment, c)
	}
	return ctx.consumeComment(c)
}

func (ctx *consumeCtx) consumeComment(c rune) (State, error) {
	if c == '-' {
		return StateCommentEndDash, nil
	}
	ctx.data.WriteRune(c)
	return StateComment, nil
}

// consumeCommentEndDash handles the character after a single '-' in
// a comment body. Either it completes the closing "--", or the dash
// was part of the comment's data.
func (ctx *consumeCtx) consumeCommentEndDash(c rune) (State, error) {
	switch {
	case c == '-':
		return StateCommentEnd, nil
	case isLetter(c):
		ctx.data.WriteByte('-')
		return ctx.consumeComment(c)
	}
	return StateCommentEndDash, ctx.error(ErrMissingCommentDash, c)
}

func (ctx *consumeCtx) consumeCommentEnd(c rune) (State, error) {
	if c == '>' {
		ctx.emit()
		return StateText, nil
	}
	return StateCommentEnd, ctx.error(ErrInvalidCharacter, c)
}

// consumeKeywordLetter appends c to the look-ahead buffer, failing
// once the buffer has taken as many letters as the keyword it
// is checked against.
func (ctx *consumeCtx) consumeKeywordLetter(c rune, st State) (State, error) {
	if ctx.rounds <= 0 {
		return st, ctx.error(ErrMissingWhitespace, c)
	}
	ctx.temp.WriteRune(c)
	ctx.rounds--
	return st, nil
}

// checkKeyword compares the look-ahead buffer case-insensitively
// against expected
func (ctx *consumeCtx) checkKeyword(c rune, expected string, err error) error {
	if ctx.caser.String(ctx.temp.String()) != expected {
		return ctx.errorText(err, c, ctx.temp.String())
	}
	return nil
}

func (ctx *consumeCtx) consumeDoctype(c rune) (State, error) {
	switch {
	case c == '>':
		return StateDoctype, ctx.error(ErrMissingRootDeclaration, c)
	case isLetter(c):
		return ctx.consumeKeywordLetter(c, StateDoctype)
	case isBlankCh(c):
		if err := ctx.checkKeyword(c, "DOCTYPE", ErrInvalidDoctype); err != nil {
			return StateDoctype, err
		}
		ctx.reset(4)
		return StateRootDeclaration, nil
	}
	return StateDoctype, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeRootDeclaration(c rune) (State, error) {
	switch {
	case c == '>':
		if ctx.temp.Len() == 0 {
			return StateRootDeclaration, ctx.error(ErrMissingRootDeclaration, c)
		}
		if err := ctx.checkKeyword(c, "HTML", ErrInvalidRootDeclaration); err != nil {
			return StateRootDeclaration, err
		}
		ctx.emit()
		return StateData, nil
	case isLetter(c):
		return ctx.consumeKeywordLetter(c, StateRootDeclaration)
	case isBlankCh(c):
		if err := ctx.checkKeyword(c, "HTML", ErrInvalidRootDeclaration); err != nil {
			return StateRootDeclaration, err
		}
		ctx.reset(6)
		return StateKeyword, nil
	}
	return StateRootDeclaration, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeKeyword(c rune) (State, error) {
	switch {
	case c == '>':
		if ctx.temp.Len() > 0 {
			if err := ctx.checkKeyword(c, "PUBLIC", ErrInvalidKeyword); err != nil {
				return StateKeyword, err
			}
		}
		return StateKeyword, ctx.error(ErrMissingPublicIdentifier, c)
	case isLetter(c):
		return ctx.consumeKeywordLetter(c, StateKeyword)
	case isBlankCh(c):
		if err := ctx.checkKeyword(c, "PUBLIC", ErrInvalidKeyword); err != nil {
			return StateKeyword, err
		}
		ctx.reset(0)
		return StateBeforePublicIdentifier, nil
	}
	return StateKeyword, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeBeforePublicIdentifier(c rune) (State, error) {
	switch {
	case isQuote(c):
		if d := ctx.document(); d != nil {
			d.HasPublicID = true
		}
		ctx.quote = c
		return StatePublicIdentifier, nil
	case isBlankCh(c):
		return StateBeforePublicIdentifier, nil
	case c == '>':
		return StateBeforePublicIdentifier, ctx.error(ErrMissingPublicIdentifier, c)
	}
	return StateBeforePublicIdentifier, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumePublicIdentifier(c rune) (State, error) {
	if c == ctx.quote {
		ctx.quote = 0
		return StateAfterPublicIdentifier, nil
	}
	if d := ctx.document(); d != nil {
		d.PublicID += string(c)
	}
	return StatePublicIdentifier, nil
}

func (ctx *consumeCtx) consumeAfterPublicIdentifier(c rune) (State, error) {
	switch {
	case isBlankCh(c):
		return StateBeforeSystemIdentifier, nil
	case c == '>':
		ctx.emit()
		return StateData, nil
	}
	return StateAfterPublicIdentifier, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeBeforeSystemIdentifier(c rune) (State, error) {
	switch {
	case isQuote(c):
		if d := ctx.document(); d != nil {
			d.HasSystemID = true
		}
		ctx.quote = c
		return StateSystemIdentifier, nil
	case isBlankCh(c):
		return StateBeforeSystemIdentifier, nil
	case c == '>':
		return StateBeforeSystemIdentifier, ctx.error(ErrMissingSystemIdentifier, c)
	}
	return StateBeforeSystemIdentifier, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeSystemIdentifier(c rune) (State, error) {
	if c == ctx.quote {
		ctx.quote = 0
		return StateAfterSystemIdentifier, nil
	}
	if d := ctx.document(); d != nil {
		d.SystemID += string(c)
	}
	return StateSystemIdentifier, nil
}

func (ctx *consumeCtx) consumeAfterSystemIdentifier(c rune) (State, error) {
	switch {
	case c == '>':
		ctx.emit()
		return StateData, nil
	case isBlankCh(c):
		return StateAfterSystemIdentifier, nil
	}
	return StateAfterSystemIdentifier, ctx.error(ErrInvalidCharacter, c)
}

func (ctx *consumeCtx) consumeText(c rune) (State, error) {
	if c == '<' {
		if _, ok := ctx.current.(*token.Text); ok && ctx.data.Len() > 0 {
			ctx.emit()
		}
		ctx.current = nil
		return StateStartTag, nil
	}

	if ctx.asciiText && !isASCII(c) {
		return StateText, ctx.error(ErrInvalidCharacter, c)
	}

	if _, ok := ctx.current.(*token.Text); !ok {
		ctx.current = &token.Text{}
		ctx.data.Reset()
	}
	ctx.data.WriteRune(c)
	return StateText, nil
}
