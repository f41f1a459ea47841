package treebuilder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/beaver/internal/debug"
	"github.com/lestrrat-go/beaver/internal/trace"
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/sax"
	"github.com/lestrrat-go/beaver/token"
)

func New(options ...Option) *Builder {
	var b Builder
	for _, option := range options {
		switch option.Ident() {
		case identSAXHandler{}:
			b.sax = option.Value().(sax.Handler)
		case identDuplicateAttributes{}:
			b.duplicates = option.Value().(DuplicateAttributes)
		}
	}
	return &b
}

// Process runs the insertion mode state machine over tokens and returns
// the resulting tree. The first unacceptable token aborts the run and
// no tree is returned.
func (b *Builder) Process(ctx context.Context, tokens []token.Token) (*node.Tree, error) {
	bctx := newBuildCtx(ctx, b)
	if len(tokens) == 0 {
		return nil, Error{Err: ErrMissingDoctypeTag, Mode: ModeInitial, Index: -1}
	}

	if err := bctx.sax.StartDocument(ctx); err != nil {
		return nil, err
	}

	for i, tok := range tokens {
		bctx.index = i
		bctx.token = tok
		next, err := bctx.step(tok)
		if err != nil {
			if bctx.tracing {
				bctx.log.DebugContext(ctx, "tree builder error", slog.String("error", err.Error()))
			}
			return nil, bctx.error(err)
		}
		if bctx.tracing && next != bctx.mode {
			bctx.log.DebugContext(ctx, "transition",
				slog.String("from", bctx.mode.String()),
				slog.String("to", next.String()),
				slog.String("token", tok.String()),
			)
		}
		bctx.mode = next
	}

	if err := bctx.finish(); err != nil {
		return nil, err
	}
	if debug.Enabled {
		debug.Dump(bctx.tree)
	}
	return bctx.tree, nil
}

func newBuildCtx(ctx context.Context, b *Builder) *buildCtx {
	l := trace.FromContext(ctx, "treebuilder")
	h := b.sax
	if h == nil {
		h = sax.New()
	}
	return &buildCtx{
		ctx:        ctx,
		mode:       ModeInitial,
		tree:       node.New(),
		sax:        h,
		duplicates: b.duplicates,
		log:        l,
		tracing:    l.Enabled(ctx, slog.LevelDebug),
	}
}

func (ctx *buildCtx) step(tok token.Token) (Mode, error) {
	if debug.Enabled {
		debug.Printf("%s <- %s", ctx.mode, tok)
	}

	switch ctx.mode {
	case ModeInitial:
		return ctx.processInitial(tok)
	case ModeBeforeHTML:
		return ctx.processBeforeHTML(tok)
	case ModeBeforeHead:
		return ctx.processBeforeHead(tok)
	case ModeInHead:
		return ctx.processInHead(tok)
	case ModeAfterHead:
		return ctx.processAfterHead(tok)
	case ModeInBody:
		return ctx.processInBody(tok)
	case ModeText:
		return ctx.processText(tok)
	case ModeAfterBody:
		return ctx.processAfterBody(tok)
	}
	return ctx.mode, ErrInvalidToken
}

// finish closes every element still open, innermost first
func (ctx *buildCtx) finish() error {
	ctx.index = -1
	ctx.token = nil
	if ctx.mode == ModeInitial {
		return ctx.error(ErrMissingDoctypeTag)
	}
	for ctx.open.Len() > 0 {
		if _, err := ctx.pop(); err != nil {
			return ctx.error(err)
		}
	}
	return ctx.sax.EndDocument(ctx.ctx)
}

// insertElement creates an element for tag, attaches its attributes and
// makes it the current node. The element is attached to its parent
// when it is popped.
func (ctx *buildCtx) insertElement(tag *token.Tag) (node.ID, error) {
	id := ctx.tree.CreateElement(tag.Name)
	if err := ctx.attachAttributes(id, tag.Attributes); err != nil {
		return node.InvalidID, err
	}
	ctx.push(id)
	if err := ctx.sax.StartElement(ctx.ctx, parsedElement{tree: ctx.tree, id: id}); err != nil {
		return node.InvalidID, err
	}
	return id, nil
}

func (ctx *buildCtx) push(id node.ID) {
	if ctx.tracing {
		ctx.log.DebugContext(ctx.ctx, "push", slog.String("name", ctx.tree.Name(id)), slog.Int("depth", ctx.open.Len()))
	}
	ctx.open.Push(id)
}

// pop removes the current node and attaches it to the element beneath
// it. With nothing beneath it, it becomes a root.
func (ctx *buildCtx) pop() (node.ID, error) {
	id, ok := ctx.open.Pop()
	if !ok {
		return node.InvalidID, ErrInvalidTag
	}
	if ctx.tracing {
		ctx.log.DebugContext(ctx.ctx, "pop", slog.String("name", ctx.tree.Name(id)), slog.Int("depth", ctx.open.Len()))
	}

	if parent, ok := ctx.open.Peek(); ok {
		if err := ctx.tree.AddChild(parent, id); err != nil {
			return node.InvalidID, err
		}
	} else {
		if err := ctx.tree.AddRoot(id); err != nil {
			return node.InvalidID, err
		}
	}

	if err := ctx.sax.EndElement(ctx.ctx, parsedElement{tree: ctx.tree, id: id}); err != nil {
		return node.InvalidID, err
	}
	return id, nil
}

// attach appends id to the current node, or to the roots if no
// element is open
func (ctx *buildCtx) attach(id node.ID) error {
	if parent, ok := ctx.open.Peek(); ok {
		return ctx.tree.AddChild(parent, id)
	}
	return ctx.tree.AddRoot(id)
}

func (ctx *buildCtx) insertComment(c *token.Comment) error {
	if err := ctx.attach(ctx.tree.CreateComment(c.Data)); err != nil {
		return err
	}
	return ctx.sax.Comment(ctx.ctx, []byte(c.Data))
}

func (ctx *buildCtx) insertText(t *token.Text) error {
	if err := ctx.attach(ctx.tree.CreateText(t.Data)); err != nil {
		return err
	}
	return ctx.sax.Characters(ctx.ctx, []byte(t.Data))
}

func (ctx *buildCtx) insertDefinition(d *token.Document) error {
	id := ctx.tree.CreateDefinition()
	if d.HasPublicID {
		if err := ctx.tree.SetPublicID(id, d.PublicID); err != nil {
			return err
		}
	}
	if d.HasSystemID {
		if err := ctx.tree.SetSystemID(id, d.SystemID); err != nil {
			return err
		}
	}
	if err := ctx.tree.AddRoot(id); err != nil {
		return err
	}
	return ctx.sax.DocumentType(ctx.ctx, parsedDefinition{tree: ctx.tree, id: id})
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t\n\f\r") == ""
}
