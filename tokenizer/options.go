package tokenizer

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identASCIIText struct{}

// WithASCIIText makes the tokenizer reject non-ASCII characters in
// text content with ErrInvalidCharacter.
func WithASCIIText(v bool) Option {
	return option.New(identASCIIText{}, v)
}
