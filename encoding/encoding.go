// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Input is always tokenized as UTF-8, so
// documents in other charsets must be decoded first; this package
// maps a charset name to its decoder.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// names that are not labels in the WHATWG encoding index
var extras = map[string]enc.Encoding{
	"utf8":        unicode.UTF8,
	"cp437":       charmap.CodePage437,
	"cp932":       japanese.ShiftJIS,
	"shiftjis":    japanese.ShiftJIS,
	"jis":         japanese.ISO2022JP,
	"hz-gb2312":   simplifiedchinese.HZGB2312,
	"hz-gb-2312":  simplifiedchinese.HZGB2312,
	"koi8r":       charmap.KOI8R,
	"koi8u":       charmap.KOI8U,
	"windows1250": charmap.Windows1250,
	"windows1251": charmap.Windows1251,
	"windows1252": charmap.Windows1252,
	"windows1253": charmap.Windows1253,
	"windows1254": charmap.Windows1254,
	"windows1255": charmap.Windows1255,
	"windows1256": charmap.Windows1256,
	"windows1257": charmap.Windows1257,
	"windows1258": charmap.Windows1258,
	"windows874":  charmap.Windows874,
}

// Load returns the encoding called name. Names are matched case
// insensitively against the labels browsers accept ("utf-8",
// "shift_jis", "iso-8859-1", ...) and a few common aliases.
func Load(name string) (enc.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := extras[name]; ok {
		return e, nil
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}
	return e, nil
}

// Decode converts b from the encoding called name to UTF-8
func Decode(name string, b []byte) ([]byte, error) {
	e, err := Load(name)
	if err != nil {
		return nil, err
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", name, err)
	}
	return out, nil
}
