package beaver

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/beaver/internal/trace"
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/sax"
	"github.com/lestrrat-go/beaver/token"
	"github.com/lestrrat-go/beaver/tokenizer"
	"github.com/lestrrat-go/beaver/treebuilder"
	"github.com/pkg/errors"
)

func Parse(ctx context.Context, b []byte, options ...ParseOption) (*Document, error) {
	return NewParser(options...).Parse(ctx, b)
}

func NewParser(options ...ParseOption) *Parser {
	var p Parser
	for _, option := range options {
		switch option.Ident() {
		case identASCIIText{}:
			p.tokenizerOptions = append(p.tokenizerOptions, tokenizer.WithASCIIText(option.Value().(bool)))
		case identSAXHandler{}:
			p.builderOptions = append(p.builderOptions, treebuilder.WithSAXHandler(option.Value().(sax.Handler)))
		case identDuplicateAttributes{}:
			p.builderOptions = append(p.builderOptions, treebuilder.WithDuplicateAttributes(option.Value().(DuplicateAttributes)))
		case identLogger{}:
			p.logger = option.Value().(*slog.Logger)
		}
	}
	return &p
}

func (p *Parser) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return trace.WithLogger(ctx, p.logger)
}

// Tokenize runs only the tokenizer over b
func (p *Parser) Tokenize(ctx context.Context, b []byte) ([]token.Token, error) {
	tokens, err := tokenizer.New(p.tokenizerOptions...).Consume(p.context(ctx), b)
	if err != nil {
		return nil, errors.Wrap(err, `failed to tokenize document`)
	}
	return tokens, nil
}

// ParseTree tokenizes b and builds the node tree, without projecting
// it into a Document
func (p *Parser) ParseTree(ctx context.Context, b []byte) (*node.Tree, error) {
	ctx = p.context(ctx)
	tokens, err := p.Tokenize(ctx, b)
	if err != nil {
		return nil, err
	}

	tree, err := treebuilder.New(p.builderOptions...).Process(ctx, tokens)
	if err != nil {
		return nil, errors.Wrap(err, `failed to construct tree`)
	}
	return tree, nil
}

func (p *Parser) Parse(ctx context.Context, b []byte) (*Document, error) {
	tree, err := p.ParseTree(ctx, b)
	if err != nil {
		return nil, err
	}

	doc, err := FromTree(tree)
	if err != nil {
		return nil, errors.Wrap(err, `failed to build document`)
	}
	return doc, nil
}
