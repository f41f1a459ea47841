package tokenizer

import "unicode"

func isBlankCh(c rune) bool {
	return c == 0x20 || (0x9 <= c && c <= 0xa) || c == 0xc || c == 0xd
}

func isLetter(c rune) bool {
	return unicode.IsLetter(c)
}

func isLetterOrDigit(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isQuote(c rune) bool {
	return c == '"' || c == '\''
}

func isASCII(c rune) bool {
	return c < 0x80
}
