package beaver

import (
	"io"

	"github.com/lestrrat-go/beaver/s11n"
)

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if def := doc.Definition(); def != nil {
		if err := d.DumpDefinition(out, def); err != nil {
			return err
		}
	}
	for _, e := range doc.Prolog() {
		if err := d.DumpNode(out, e); err != nil {
			return err
		}
	}
	if root := doc.Root(); root != nil {
		return d.DumpNode(out, root)
	}
	return nil
}

// DumpDefinition writes the doctype. Identifiers are only written
// when both are present.
func (d *Dumper) DumpDefinition(out io.Writer, def *Definition) error {
	publicID, hasPublicID := def.PublicID()
	systemID, hasSystemID := def.SystemID()
	if !hasPublicID || !hasSystemID {
		return d.writeString(out, "<!DOCTYPE html>")
	}

	if err := d.writeString(out, `<!DOCTYPE HTML PUBLIC "`+publicID+`" "`+systemID+`">`); err != nil {
		return err
	}
	return nil
}

func (d *Dumper) DumpNode(out io.Writer, e *Element) error {
	switch e.Kind() {
	case TextKind:
		return d.writeString(out, e.Value())
	case CommentKind:
		return d.writeString(out, "<!--"+e.Value()+"-->")
	}

	if err := d.writeString(out, "<"+e.Name()); err != nil {
		return err
	}
	for _, attr := range e.Attributes() {
		if err := d.writeString(out, " "+attr.Name()+"="); err != nil {
			return err
		}
		if err := s11n.DumpQuotedString(out, attr.Value()); err != nil {
			return err
		}
	}
	if err := d.writeString(out, ">"); err != nil {
		return err
	}

	for _, child := range e.Children() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}

	return d.writeString(out, "</"+e.Name()+">")
}
