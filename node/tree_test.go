package node_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lestrrat-go/beaver/node"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	t.Run("CreateElement", func(t *testing.T) {
		tree := node.New()
		e := tree.CreateElement("test")
		require.Equal(t, node.ElementType, tree.Type(e))
		require.Equal(t, "test", tree.Name(e))
		require.Equal(t, 1, tree.Len())
	})

	t.Run("Definition", func(t *testing.T) {
		tree := node.New()
		d := tree.CreateDefinition()
		_, ok := tree.PublicID(d)
		require.False(t, ok, "new definition should have no public identifier")

		require.NoError(t, tree.SetPublicID(d, ""))
		require.NoError(t, tree.SetSystemID(d, "sys"))

		v, ok := tree.PublicID(d)
		require.True(t, ok, "empty identifier should still be present")
		require.Equal(t, "", v)
		v, ok = tree.SystemID(d)
		require.True(t, ok)
		require.Equal(t, "sys", v)

		e := tree.CreateElement("html")
		require.ErrorIs(t, tree.SetPublicID(e, "x"), node.ErrInvalidOperation)
	})

	t.Run("TreeOperations", func(t *testing.T) {
		t.Run("AddChild", func(t *testing.T) {
			tree := node.New()
			parent := tree.CreateElement("parent")
			child1 := tree.CreateElement("child1")
			child2 := tree.CreateText("text")

			require.NoError(t, tree.AddChild(parent, child1))
			require.NoError(t, tree.AddChild(parent, child2))
			require.Equal(t, []node.ID{child1, child2}, tree.Children(parent))
			require.Equal(t, "text", tree.Data(child2))
		})

		t.Run("AddChildToNonElement", func(t *testing.T) {
			tree := node.New()
			text := tree.CreateText("text")
			child := tree.CreateElement("child")
			require.ErrorIs(t, tree.AddChild(text, child), node.ErrInvalidOperation)
		})

		t.Run("AddAttributeAsChild", func(t *testing.T) {
			tree := node.New()
			parent := tree.CreateElement("parent")
			attr := tree.CreateAttribute("name", "value")
			require.ErrorIs(t, tree.AddChild(parent, attr), node.ErrInvalidOperation)
		})

		t.Run("AddToSelf", func(t *testing.T) {
			tree := node.New()
			e := tree.CreateElement("e")
			require.ErrorIs(t, tree.AddChild(e, e), node.ErrInvalidOperation)
		})

		t.Run("InvalidID", func(t *testing.T) {
			tree := node.New()
			e := tree.CreateElement("e")
			require.ErrorIs(t, tree.AddChild(e, node.ID(42)), node.ErrInvalidNode)
			require.ErrorIs(t, tree.AddChild(node.InvalidID, e), node.ErrInvalidNode)
			require.ErrorIs(t, tree.AddRoot(node.ID(42)), node.ErrInvalidNode)
			require.Equal(t, node.InvalidType, tree.Type(node.ID(42)))
			require.Empty(t, tree.Name(node.InvalidID))
			require.Nil(t, tree.Children(node.ID(42)))
		})
	})

	t.Run("Attributes", func(t *testing.T) {
		t.Run("AddAttribute", func(t *testing.T) {
			tree := node.New()
			e := tree.CreateElement("html")
			a1 := tree.CreateAttribute("lang", "en")
			a2 := tree.CreateAttribute("lang", "de")
			require.NoError(t, tree.AddAttribute(e, a1))
			require.NoError(t, tree.AddAttribute(e, a2))
			require.Equal(t, []node.ID{a1, a2}, tree.Attributes(e), "duplicates are preserved")
			require.Equal(t, "de", tree.Value(a2))
		})

		t.Run("AddNonAttribute", func(t *testing.T) {
			tree := node.New()
			e := tree.CreateElement("html")
			c := tree.CreateComment("c")
			require.ErrorIs(t, tree.AddAttribute(e, c), node.ErrInvalidOperation)
		})

		t.Run("SetAttribute", func(t *testing.T) {
			tree := node.New()
			e := tree.CreateElement("html")
			first, err := tree.SetAttribute(e, "lang", "en")
			require.NoError(t, err)
			_, err = tree.SetAttribute(e, "dir", "ltr")
			require.NoError(t, err)
			replaced, err := tree.SetAttribute(e, "lang", "de")
			require.NoError(t, err)

			require.Equal(t, first, replaced, "existing attribute should be replaced in place")
			attrs := tree.Attributes(e)
			require.Len(t, attrs, 2)
			require.Equal(t, "lang", tree.Name(attrs[0]))
			require.Equal(t, "de", tree.Value(attrs[0]))
		})
	})

	t.Run("Walk", func(t *testing.T) {
		tree := node.New()
		d := tree.CreateDefinition()
		html := tree.CreateElement("html")
		head := tree.CreateElement("head")
		body := tree.CreateElement("body")
		require.NoError(t, tree.AddChild(html, head))
		require.NoError(t, tree.AddChild(html, body))
		require.NoError(t, tree.AddRoot(d))
		require.NoError(t, tree.AddRoot(html))

		var visited []string
		var depths []int
		err := tree.Walk(func(id node.ID, depth int) error {
			visited = append(visited, tree.Type(id).String()+":"+tree.Name(id))
			depths = append(depths, depth)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"definition:", "element:html", "element:head", "element:body"}, visited)
		require.Equal(t, []int{0, 0, 1, 1}, depths)

		stop := errors.New("stop")
		var count int
		err = tree.Walk(func(node.ID, int) error {
			count++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, count)
	})

	t.Run("Dump", func(t *testing.T) {
		tree := node.New()
		d := tree.CreateDefinition()
		require.NoError(t, tree.SetPublicID(d, "pub"))
		html := tree.CreateElement("html")
		_, err := tree.SetAttribute(html, "lang", "en")
		require.NoError(t, err)
		require.NoError(t, tree.AddChild(html, tree.CreateComment(" c ")))
		require.NoError(t, tree.AddChild(html, tree.CreateText("hi\n")))
		require.NoError(t, tree.AddRoot(d))
		require.NoError(t, tree.AddRoot(html))

		var buf bytes.Buffer
		require.NoError(t, tree.Dump(&buf))
		require.Equal(t, "definition public=\"pub\"\nelement html lang=\"en\"\n  comment \" c \"\n  text \"hi\\n\"\n", buf.String())
	})
}
