package sax

import "context"

// New creates a new instance of SAX2. All callbacks are
// uninitialized.
func New() *SAX2 {
	return &SAX2{}
}

func (s *SAX2) StartDocument(ctx context.Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) EndDocument(ctx context.Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) DocumentType(ctx context.Context, def ParsedDefinition) error {
	if h := s.DocumentTypeHandler; h != nil {
		return h(ctx, def)
	}
	return nil
}

func (s *SAX2) StartElement(ctx context.Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *SAX2) EndElement(ctx context.Context, elem ParsedElement) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *SAX2) Characters(ctx context.Context, data []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX2) Comment(ctx context.Context, data []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}
