// Package token defines the tokens emitted by the tokenizer.
//
// Token is a closed set: the only implementations are *Document, *Tag,
// *Comment and *Text. Consumers are expected to use a type switch
// over these four types.
package token

import (
	"strconv"
	"strings"
)

type Kind int

const (
	InvalidKind Kind = iota
	DocumentKind
	StartTagKind
	EndTagKind
	CommentKind
	TextKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "Document"
	case StartTagKind:
		return "StartTag"
	case EndTagKind:
		return "EndTag"
	case CommentKind:
		return "Comment"
	case TextKind:
		return "Text"
	default:
		return "Invalid"
	}
}

type Token interface {
	Kind() Kind
	String() string

	token()
}

// Document is the token emitted for a doctype declaration.
// Identifiers are optional; the Has* fields report their presence.
type Document struct {
	PublicID    string
	SystemID    string
	HasPublicID bool
	HasSystemID bool
}

// Attribute is a name/value pair attached to a Tag
type Attribute struct {
	Name  string
	Value string
}

type Tag struct {
	Name        string
	EndTag      bool
	SelfClosing bool
	Attributes  []Attribute
}

type Comment struct {
	Data string
}

type Text struct {
	Data string
}

var (
	_ Token = (*Document)(nil)
	_ Token = (*Tag)(nil)
	_ Token = (*Comment)(nil)
	_ Token = (*Text)(nil)
)

func (*Document) token() {}
func (*Tag) token()      {}
func (*Comment) token()  {}
func (*Text) token()     {}

func (*Document) Kind() Kind {
	return DocumentKind
}

func (t *Document) String() string {
	var sb strings.Builder
	sb.WriteString("Document(")
	if t.HasPublicID {
		sb.WriteString("public=")
		sb.WriteString(strconv.Quote(t.PublicID))
	}
	if t.HasSystemID {
		if t.HasPublicID {
			sb.WriteByte(' ')
		}
		sb.WriteString("system=")
		sb.WriteString(strconv.Quote(t.SystemID))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (t *Tag) Kind() Kind {
	if t.EndTag {
		return EndTagKind
	}
	return StartTagKind
}

// AddAttribute appends an attribute. Names are not deduplicated.
func (t *Tag) AddAttribute(name, value string) {
	t.Attributes = append(t.Attributes, Attribute{Name: name, Value: value})
}

func (t *Tag) String() string {
	var sb strings.Builder
	sb.WriteString(t.Kind().String())
	sb.WriteByte('(')
	sb.WriteString(t.Name)
	for _, attr := range t.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(attr.Value))
	}
	if t.SelfClosing {
		sb.WriteString(" /")
	}
	sb.WriteByte(')')
	return sb.String()
}

func (*Comment) Kind() Kind {
	return CommentKind
}

func (t *Comment) String() string {
	return "Comment(" + strconv.Quote(t.Data) + ")"
}

func (*Text) Kind() Kind {
	return TextKind
}

func (t *Text) String() string {
	return "Text(" + strconv.Quote(t.Data) + ")"
}
