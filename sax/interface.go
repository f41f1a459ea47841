package sax

import "context"

type StartDocumentFunc func(context.Context) error
type EndDocumentFunc func(context.Context) error
type DocumentTypeFunc func(context.Context, ParsedDefinition) error
type StartElementFunc func(context.Context, ParsedElement) error
type EndElementFunc func(context.Context, ParsedElement) error
type CharactersFunc func(context.Context, []byte) error
type CommentFunc func(context.Context, []byte) error

// Handler receives the events produced while the tree is being
// constructed. Events arrive in document order: StartElement when an
// element is opened, EndElement when it is closed and attached to
// its parent. Returning an error aborts the parse.
type Handler interface {
	StartDocument(context.Context) error
	EndDocument(context.Context) error
	DocumentType(context.Context, ParsedDefinition) error
	StartElement(context.Context, ParsedElement) error
	EndElement(context.Context, ParsedElement) error
	Characters(context.Context, []byte) error
	Comment(context.Context, []byte) error
}

type ParsedDefinition interface {
	PublicID() (string, bool)
	SystemID() (string, bool)
}

type ParsedElement interface {
	Name() string
	Attributes() []ParsedAttribute
}

type ParsedAttribute interface {
	Name() string
	Value() string
}

// SAX2 is the callback based Handler. Events without a registered
// callback are ignored.
type SAX2 struct {
	CharactersHandler    CharactersFunc
	CommentHandler       CommentFunc
	DocumentTypeHandler  DocumentTypeFunc
	EndDocumentHandler   EndDocumentFunc
	EndElementHandler    EndElementFunc
	StartDocumentHandler StartDocumentFunc
	StartElementHandler  StartElementFunc
}
