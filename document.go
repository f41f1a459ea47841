package beaver

import (
	"bytes"

	"github.com/lestrrat-go/beaver/internal/pool"
)

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Definition() *Definition {
	return d.definition
}

func (d *Document) SetDefinition(def *Definition) {
	d.definition = def
}

// Root returns the document element, or nil if none has been added
func (d *Document) Root() *Element {
	return d.root
}

// Prolog returns the comments and text added before the root element
func (d *Document) Prolog() []*Element {
	return d.prolog
}

// Add inserts e into the document. The first element becomes the root;
// everything added after that is appended to the root's children.
// Comments and text added while there is no root are kept in the
// prolog.
func (d *Document) Add(e *Element) error {
	if d.root == nil {
		if e.kind != ElementKind {
			d.prolog = append(d.prolog, e)
			return nil
		}
		d.root = e
		return nil
	}
	return d.root.AddChild(e)
}

// HTMLString serializes the document using a Dumper
func (d *Document) HTMLString() (string, error) {
	b := pool.ByteSlice().Get()
	buf := bytes.NewBuffer(b)
	defer func() { pool.ByteSlice().Put(buf.Bytes()) }()

	var dumper Dumper
	if err := dumper.DumpDoc(buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
