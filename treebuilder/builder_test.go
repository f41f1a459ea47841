package treebuilder_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/beaver/internal/trace"
	"github.com/lestrrat-go/beaver/node"
	"github.com/lestrrat-go/beaver/token"
	"github.com/lestrrat-go/beaver/tokenizer"
	"github.com/lestrrat-go/beaver/treebuilder"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, input string, options ...treebuilder.Option) (*node.Tree, error) {
	t.Helper()
	tokens, err := tokenizer.Consume(context.Background(), []byte(input))
	require.NoError(t, err, "Consume should succeed for '%s'", input)
	return treebuilder.New(options...).Process(context.Background(), tokens)
}

// names returns the element names of the children of id
func names(tree *node.Tree, id node.ID) []string {
	var list []string
	for _, child := range tree.Children(id) {
		switch tree.Type(child) {
		case node.ElementType:
			list = append(list, tree.Name(child))
		default:
			list = append(list, "#"+tree.Type(child).String())
		}
	}
	return list
}

func TestDocument(t *testing.T) {
	tree, err := build(t, `<!DOCTYPE html><html><head><title>Document</title></head><body></body></html>`)
	require.NoError(t, err, "Process should succeed")

	roots := tree.Roots()
	require.Len(t, roots, 2)
	require.Equal(t, node.DefinitionType, tree.Type(roots[0]))
	_, ok := tree.PublicID(roots[0])
	require.False(t, ok)
	_, ok = tree.SystemID(roots[0])
	require.False(t, ok)

	html := roots[1]
	require.Equal(t, "html", tree.Name(html))
	require.Equal(t, []string{"head", "body"}, names(tree, html))

	head := tree.Children(html)[0]
	require.Equal(t, []string{"title"}, names(tree, head))
	title := tree.Children(head)[0]
	require.Equal(t, []string{"#text"}, names(tree, title))
	require.Equal(t, "Document", tree.Data(tree.Children(title)[0]))

	body := tree.Children(html)[1]
	require.Empty(t, tree.Children(body))
}

func TestDefinitionIdentifiers(t *testing.T) {
	tree, err := build(t, `<!DOCTYPE HTML PUBLIC "pub" "sys"><html><head></head><body></body></html>`)
	require.NoError(t, err)

	def := tree.Roots()[0]
	v, ok := tree.PublicID(def)
	require.True(t, ok)
	require.Equal(t, "pub", v)
	v, ok = tree.SystemID(def)
	require.True(t, ok)
	require.Equal(t, "sys", v)
}

func TestErrors(t *testing.T) {
	testcases := []struct {
		Name  string
		Input string
		Error error
		Mode  treebuilder.Mode
		Index int
	}{
		{
			Name:  "MissingDoctype",
			Input: `<html><head><title>Document</title></head><body></body></html>`,
			Error: treebuilder.ErrInvalidToken,
			Mode:  treebuilder.ModeInitial,
			Index: 0,
		},
		{
			Name:  "DoubleDoctype",
			Input: `<!DOCTYPE html><!DOCTYPE html>`,
			Error: treebuilder.ErrInvalidToken,
			Mode:  treebuilder.ModeBeforeHTML,
			Index: 1,
		},
		{
			Name:  "EndTagBeforeHTML",
			Input: `<!DOCTYPE html></html>`,
			Error: treebuilder.ErrInvalidTag,
			Mode:  treebuilder.ModeBeforeHTML,
			Index: 1,
		},
		{
			Name:  "MissingHTML",
			Input: `<!DOCTYPE html><body>`,
			Error: treebuilder.ErrMissingHtmlTag,
			Mode:  treebuilder.ModeBeforeHTML,
			Index: 1,
		},
		{
			Name:  "MissingHead",
			Input: `<!DOCTYPE html><html><body>`,
			Error: treebuilder.ErrMissingHeadTag,
			Mode:  treebuilder.ModeBeforeHead,
			Index: 2,
		},
		{
			Name:  "MissingBody",
			Input: `<!DOCTYPE html><html><head></head><div>`,
			Error: treebuilder.ErrMissingBodyTag,
			Mode:  treebuilder.ModeAfterHead,
			Index: 4,
		},
		{
			Name:  "StartTagAfterBody",
			Input: `<!DOCTYPE html><html><head></head><body></body><p>`,
			Error: treebuilder.ErrInvalidTag,
			Mode:  treebuilder.ModeAfterBody,
			Index: 6,
		},
		{
			Name:  "EndTagAfterBody",
			Input: `<!DOCTYPE html><html><head></head><body></body></p>`,
			Error: treebuilder.ErrMissingHtmlTag,
			Mode:  treebuilder.ModeAfterBody,
			Index: 6,
		},
		{
			Name:  "PopEmptyStack",
			Input: `<!DOCTYPE html><html><head></head><body></body></html></html>`,
			Error: treebuilder.ErrInvalidTag,
			Mode:  treebuilder.ModeAfterBody,
			Index: 7,
		},
		{
			Name:  "TextAfterBody",
			Input: `<!DOCTYPE html><html><head></head><body></body>text`,
			Error: treebuilder.ErrInvalidToken,
			Mode:  treebuilder.ModeAfterBody,
			Index: 6,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			tree, err := build(t, tc.Input)
			require.ErrorIs(t, err, tc.Error, "Process should fail for '%s'", tc.Input)
			require.Nil(t, tree, "no partial tree should be returned")

			var berr treebuilder.Error
			require.True(t, errors.As(err, &berr), "error should be a treebuilder.Error")
			require.Equal(t, tc.Mode, berr.Mode, "expected mode %s, got %s", tc.Mode, berr.Mode)
			require.Equal(t, tc.Index, berr.Index)
			require.NotNil(t, berr.Token)
		})
	}

	t.Run("NoTokens", func(t *testing.T) {
		_, err := treebuilder.New().Process(context.Background(), nil)
		require.ErrorIs(t, err, treebuilder.ErrMissingDoctypeTag)
	})
	t.Run("NeverLeftInitial", func(t *testing.T) {
		_, err := treebuilder.New().Process(context.Background(), []token.Token{&token.Text{Data: " \n"}})
		require.ErrorIs(t, err, treebuilder.ErrMissingDoctypeTag)

		var berr treebuilder.Error
		require.True(t, errors.As(err, &berr))
		require.Equal(t, -1, berr.Index)
		require.Nil(t, berr.Token)
	})
	t.Run("TextBeforeHTML", func(t *testing.T) {
		_, err := treebuilder.New().Process(context.Background(), []token.Token{
			&token.Document{},
			&token.Text{Data: "x"},
		})
		require.ErrorIs(t, err, treebuilder.ErrInvalidToken)
	})
}

func TestComments(t *testing.T) {
	t.Run("InHead", func(t *testing.T) {
		tree, err := build(t, `<!DOCTYPE html><html><head><!--c--></head><body></body></html>`)
		require.NoError(t, err)
		head := tree.Children(tree.Roots()[1])[0]
		require.Equal(t, []string{"#comment"}, names(tree, head))
		require.Equal(t, "c", tree.Data(tree.Children(head)[0]))
	})
	t.Run("AfterBody", func(t *testing.T) {
		tree, err := build(t, `<!DOCTYPE html><html><head></head><body></body><!--c--></html>`)
		require.NoError(t, err)
		require.Equal(t, []string{"head", "body", "#comment"}, names(tree, tree.Roots()[1]))
	})
	t.Run("BeforeHTML", func(t *testing.T) {
		tree, err := build(t, `<!DOCTYPE html><!--c--><html><head></head><body></body></html>`)
		require.NoError(t, err)
		roots := tree.Roots()
		require.Len(t, roots, 3)
		require.Equal(t, node.CommentType, tree.Type(roots[1]))
	})
}

func TestVoidElements(t *testing.T) {
	tree, err := build(t, `<!DOCTYPE html><html><head><meta><base><link></head><body><input><img><area><embed><hr><wbr><br><div/><p>x</p></body></html>`)
	require.NoError(t, err)

	html := tree.Roots()[1]
	head := tree.Children(html)[0]
	body := tree.Children(html)[1]
	require.Equal(t, []string{"meta", "base", "link"}, names(tree, head))
	require.Equal(t, []string{"input", "img", "area", "embed", "hr", "wbr", "br", "div", "p"}, names(tree, body))
	for _, id := range tree.Children(body)[:8] {
		require.Empty(t, tree.Children(id), "%s should have no children", tree.Name(id))
	}
}

func TestRawText(t *testing.T) {
	tree, err := build(t, `<!DOCTYPE html><html><head><title>a</title><meta></head><body><script>b</script><p>c</p></body></html>`)
	require.NoError(t, err)

	html := tree.Roots()[1]
	head := tree.Children(html)[0]
	require.Equal(t, []string{"title", "meta"}, names(tree, head), "mode should return to inhead after </title>")

	body := tree.Children(html)[1]
	require.Equal(t, []string{"script", "p"}, names(tree, body), "mode should return to inbody after </script>")
	script := tree.Children(body)[0]
	require.Equal(t, "b", tree.Data(tree.Children(script)[0]))

	t.Run("Errors", func(t *testing.T) {
		testcases := []struct {
			Name     string
			Input    string
			Expected error
			Index    int
		}{
			{Name: "StartTag", Input: `<!DOCTYPE html><html><head><title>a<b>c</title></head>`, Expected: treebuilder.ErrInvalidTag, Index: 5},
			{Name: "MismatchedEndTag", Input: `<!DOCTYPE html><html><head><title>a</b>d</title></head>`, Expected: treebuilder.ErrInvalidTag, Index: 5},
			{Name: "Comment", Input: `<!DOCTYPE html><html><head><script><!--x--></script></head>`, Expected: treebuilder.ErrInvalidToken, Index: 4},
		}
		for _, tc := range testcases {
			t.Run(tc.Name, func(t *testing.T) {
				_, err := build(t, tc.Input)
				require.ErrorIs(t, err, tc.Expected)

				var berr treebuilder.Error
				require.True(t, errors.As(err, &berr), "error should be a treebuilder.Error")
				require.Equal(t, treebuilder.ModeText, berr.Mode)
				require.Equal(t, tc.Index, berr.Index)
			})
		}
	})
}

func TestUnclosed(t *testing.T) {
	tree, err := build(t, `<!DOCTYPE html><html><head></head><body><div><p>text`)
	require.NoError(t, err, "elements left open should be closed at the end")

	roots := tree.Roots()
	require.Len(t, roots, 2)
	html := roots[1]
	body := tree.Children(html)[1]
	require.Equal(t, []string{"div"}, names(tree, body))
	div := tree.Children(body)[0]
	require.Equal(t, []string{"p"}, names(tree, div))
}

func TestDuplicateAttributes(t *testing.T) {
	const input = `<!DOCTYPE html><html lang="en" dir="ltr" lang="de"><head></head><body></body></html>`

	attrs := func(tree *node.Tree) [][2]string {
		var list [][2]string
		for _, id := range tree.Attributes(tree.Roots()[1]) {
			list = append(list, [2]string{tree.Name(id), tree.Value(id)})
		}
		return list
	}

	t.Run("Preserve", func(t *testing.T) {
		tree, err := build(t, input)
		require.NoError(t, err)
		require.Equal(t, [][2]string{{"lang", "en"}, {"dir", "ltr"}, {"lang", "de"}}, attrs(tree))
	})
	t.Run("Replace", func(t *testing.T) {
		tree, err := build(t, input, treebuilder.WithDuplicateAttributes(treebuilder.DuplicateAttributesReplace))
		require.NoError(t, err)
		require.Equal(t, [][2]string{{"lang", "de"}, {"dir", "ltr"}}, attrs(tree))
	})
	t.Run("Reject", func(t *testing.T) {
		_, err := build(t, input, treebuilder.WithDuplicateAttributes(treebuilder.DuplicateAttributesReject))
		require.ErrorIs(t, err, treebuilder.ErrDuplicateAttribute)

		tree, err := build(t, `<!DOCTYPE html><html lang="en" dir="ltr"><head></head><body></body></html>`,
			treebuilder.WithDuplicateAttributes(treebuilder.DuplicateAttributesReject))
		require.NoError(t, err, "distinct names should be accepted")
		require.Equal(t, [][2]string{{"lang", "en"}, {"dir", "ltr"}}, attrs(tree))
	})
}

func TestReuse(t *testing.T) {
	tokens, err := tokenizer.Consume(context.Background(), []byte(`<!DOCTYPE html><html><head></head><body></body></html>`))
	require.NoError(t, err)

	b := treebuilder.New()
	first, err := b.Process(context.Background(), tokens)
	require.NoError(t, err)
	second, err := b.Process(context.Background(), tokens)
	require.NoError(t, err)
	require.Equal(t, first, second, "a builder should produce identical trees across runs")
}

func TestModeString(t *testing.T) {
	require.Equal(t, "beforehtml", treebuilder.ModeBeforeHTML.String())
	require.Equal(t, "afterbody", treebuilder.ModeAfterBody.String())
	require.Equal(t, "unknown", treebuilder.Mode(42).String())
}

func TestTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := trace.WithLogger(context.Background(), logger)

	tokens, err := tokenizer.Consume(context.Background(), []byte(`<!DOCTYPE html><html><head></head><body></body></html>`))
	require.NoError(t, err)
	_, err = treebuilder.New().Process(ctx, tokens)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "component=treebuilder")
	require.Contains(t, out, "from=initial to=beforehtml")
	require.Contains(t, out, "msg=push")
	require.Contains(t, out, "msg=pop")
	require.Contains(t, out, "name=html")
}
