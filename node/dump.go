package node

import (
	"io"
	"strconv"
	"strings"

	"github.com/lestrrat-go/beaver/s11n"
)

// Dump writes an indented outline of the tree to out, one node
// per line.
func (t *Tree) Dump(out io.Writer) error {
	return t.Walk(func(id ID, depth int) error {
		if _, err := io.WriteString(out, strings.Repeat("  ", depth)); err != nil {
			return err
		}
		if _, err := io.WriteString(out, t.Type(id).String()); err != nil {
			return err
		}

		switch t.Type(id) {
		case DefinitionType:
			if v, ok := t.PublicID(id); ok {
				if err := dumpPair(out, "public", v); err != nil {
					return err
				}
			}
			if v, ok := t.SystemID(id); ok {
				if err := dumpPair(out, "system", v); err != nil {
					return err
				}
			}
		case ElementType:
			if _, err := io.WriteString(out, " "+t.Name(id)); err != nil {
				return err
			}
			for _, attr := range t.Attributes(id) {
				if err := dumpPair(out, t.Name(attr), t.Value(attr)); err != nil {
					return err
				}
			}
		case CommentType, TextType:
			if _, err := io.WriteString(out, " "+strconv.Quote(t.Data(id))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(out, "\n")
		return err
	})
}

func dumpPair(out io.Writer, name, value string) error {
	if _, err := io.WriteString(out, " "+name+"="); err != nil {
		return err
	}
	return s11n.DumpQuotedString(out, value)
}
