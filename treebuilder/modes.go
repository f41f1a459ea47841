package treebuilder

import (
	"github.com/lestrrat-go/beaver/token"
)

var headVoidElements = map[string]struct{}{
	"meta": {},
	"base": {},
	"link": {},
}

var bodyVoidElements = map[string]struct{}{
	"input": {},
	"img":   {},
	"area":  {},
	"embed": {},
	"hr":    {},
	"wbr":   {},
	"br":    {},
}

// elements whose content is collected in text mode
var rawTextElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"textarea": {},
	"title":    {},
}

func (ctx *buildCtx) processInitial(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Document:
		if err := ctx.insertDefinition(t); err != nil {
			return ModeInitial, err
		}
		return ModeBeforeHTML, nil
	case *token.Text:
		if isBlank(t.Data) {
			return ModeInitial, nil
		}
	}
	return ModeInitial, ErrInvalidToken
}

func (ctx *buildCtx) processBeforeHTML(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Tag:
		if t.EndTag {
			return ModeBeforeHTML, ErrInvalidTag
		}
		if t.Name != "html" {
			return ModeBeforeHTML, ErrMissingHtmlTag
		}
		if _, err := ctx.insertElement(t); err != nil {
			return ModeBeforeHTML, err
		}
		return ModeBeforeHead, nil
	case *token.Comment:
		return ModeBeforeHTML, ctx.insertComment(t)
	case *token.Text:
		if isBlank(t.Data) {
			return ModeBeforeHTML, nil
		}
	}
	return ModeBeforeHTML, ErrInvalidToken
}

func (ctx *buildCtx) processBeforeHead(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Tag:
		if t.EndTag || t.Name != "head" {
			return ModeBeforeHead, ErrMissingHeadTag
		}
		if _, err := ctx.insertElement(t); err != nil {
			return ModeBeforeHead, err
		}
		return ModeInHead, nil
	case *token.Comment:
		return ModeBeforeHead, ctx.insertComment(t)
	case *token.Text:
		if isBlank(t.Data) {
			return ModeBeforeHead, nil
		}
	}
	return ModeBeforeHead, ErrInvalidToken
}

func (ctx *buildCtx) processInHead(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Comment:
		return ModeInHead, ctx.insertComment(t)
	case *token.Text:
		return ModeInHead, ctx.insertText(t)
	case *token.Tag:
		if t.EndTag {
			id, err := ctx.pop()
			if err != nil {
				return ModeInHead, err
			}
			if ctx.tree.Name(id) == "head" {
				return ModeAfterHead, nil
			}
			return ModeInHead, nil
		}
		return ctx.processStartTag(t, ModeInHead, headVoidElements)
	}
	return ModeInHead, ErrInvalidToken
}

func (ctx *buildCtx) processAfterHead(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Comment:
		return ModeAfterHead, ctx.insertComment(t)
	case *token.Text:
		return ModeAfterHead, ctx.insertText(t)
	case *token.Tag:
		if t.EndTag || t.Name != "body" {
			return ModeAfterHead, ErrMissingBodyTag
		}
		if _, err := ctx.insertElement(t); err != nil {
			return ModeAfterHead, err
		}
		return ModeInBody, nil
	}
	return ModeAfterHead, ErrInvalidToken
}

func (ctx *buildCtx) processInBody(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Comment:
		return ModeInBody, ctx.insertComment(t)
	case *token.Text:
		return ModeInBody, ctx.insertText(t)
	case *token.Tag:
		if t.EndTag {
			id, err := ctx.pop()
			if err != nil {
				return ModeInBody, err
			}
			if ctx.tree.Name(id) == "body" {
				return ModeAfterBody, nil
			}
			return ModeInBody, nil
		}
		return ctx.processStartTag(t, ModeInBody, bodyVoidElements)
	}
	return ModeInBody, ErrInvalidToken
}

// processStartTag opens an element for t. Void and self closing
// elements are closed right away; raw text elements switch to
// text mode until their end tag.
func (ctx *buildCtx) processStartTag(t *token.Tag, mode Mode, voids map[string]struct{}) (Mode, error) {
	if _, err := ctx.insertElement(t); err != nil {
		return mode, err
	}

	if _, ok := voids[t.Name]; ok || t.SelfClosing {
		if _, err := ctx.pop(); err != nil {
			return mode, err
		}
		return mode, nil
	}

	if _, ok := rawTextElements[t.Name]; ok {
		ctx.original = mode
		return ModeText, nil
	}
	return mode, nil
}

// processText collects the content of a raw text element. Only the
// end tag matching the open element closes it; any other markup inside
// it is an error.
func (ctx *buildCtx) processText(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Text:
		return ModeText, ctx.insertText(t)
	case *token.Tag:
		current, ok := ctx.open.Peek()
		if !ok || !t.EndTag || t.Name != ctx.tree.Name(current) {
			return ModeText, ErrInvalidTag
		}
		if _, err := ctx.pop(); err != nil {
			return ModeText, err
		}
		return ctx.original, nil
	}
	return ModeText, ErrInvalidToken
}

func (ctx *buildCtx) processAfterBody(tok token.Token) (Mode, error) {
	switch t := tok.(type) {
	case *token.Comment:
		return ModeAfterBody, ctx.insertComment(t)
	case *token.Text:
		if isBlank(t.Data) {
			return ModeAfterBody, nil
		}
	case *token.Tag:
		if !t.EndTag {
			return ModeAfterBody, ErrInvalidTag
		}
		if t.Name != "html" {
			return ModeAfterBody, ErrMissingHtmlTag
		}
		if _, err := ctx.pop(); err != nil {
			return ModeAfterBody, err
		}
		return ModeAfterBody, nil
	}
	return ModeAfterBody, ErrInvalidToken
}
