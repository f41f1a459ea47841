// Package s11n contains low level helpers shared by the serializers
package s11n

import (
	"io"
	"strings"
)

var (
	qch_dquote = []byte{'"'}
	qch_quote  = []byte{'\''}
	esc_quot   = []byte("&#34;")
)

// DumpQuotedString writes s surrounded by quotes. Double quotes are
// used unless s contains one, in which case single quotes are used.
// If s contains both, double quotes are used and the ones in s are
// written as character references.
func DumpQuotedString(out io.Writer, s string) error {
	dqi := strings.IndexByte(s, qch_dquote[0])
	if dqi < 0 {
		return writeQuoted(out, qch_dquote, s)
	}

	if qi := strings.IndexByte(s, qch_quote[0]); qi < 0 {
		return writeQuoted(out, qch_quote, s)
	}

	if _, err := out.Write(qch_dquote); err != nil {
		return err
	}
	for dqi > -1 {
		if _, err := io.WriteString(out, s[:dqi]); err != nil {
			return err
		}
		if _, err := out.Write(esc_quot); err != nil {
			return err
		}
		s = s[dqi+1:]
		dqi = strings.IndexByte(s, qch_dquote[0])
	}

	if len(s) > 0 {
		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
	}
	_, err := out.Write(qch_dquote)
	return err
}

func writeQuoted(out io.Writer, q []byte, s string) error {
	if _, err := out.Write(q); err != nil {
		return err
	}
	if _, err := io.WriteString(out, s); err != nil {
		return err
	}
	_, err := out.Write(q)
	return err
}
