package tagboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LintSpec(t *testing.T) {
	t.Run("should stay silent on a clean spec", func(t *testing.T) {
		assert.Empty(t, LintSpec("%25tag1(Title)|tag2"))
	})

	t.Run("should flag duplicate tags on the later descriptor", func(t *testing.T) {
		diags := LintSpec("a|a")
		require.Len(t, diags, 1)
		assert.Equal(t, CodeDuplicateTag, diags[0].Code)
		assert.Equal(t, 1, diags[0].Pos.Descriptor)
		assert.Contains(t, diags[0].Message, `"a"`)
	})

	t.Run("should flag empty descriptors", func(t *testing.T) {
		diags := LintSpec("a||b")
		require.Len(t, diags, 1)
		assert.Equal(t, CodeEmptyDescriptor, diags[0].Code)
		assert.Equal(t, 1, diags[0].Pos.Descriptor)
	})

	t.Run("should flag zero-width columns", func(t *testing.T) {
		diags := LintSpec("%0a")
		require.Len(t, diags, 1)
		assert.Equal(t, CodeZeroWidth, diags[0].Code)
		assert.Equal(t, Position{Descriptor: 0, Offset: 1}, diags[0].Pos)
	})

	t.Run("should flag a title cut at the first closing paren", func(t *testing.T) {
		diags := LintSpec("a(b(c)d)")
		require.Len(t, diags, 1)
		assert.Equal(t, CodeTitleCut, diags[0].Code)
		assert.Equal(t, Position{Descriptor: 0, Offset: 5}, diags[0].Pos)
	})

	t.Run("should not mistake fallback tags with parens for cut titles", func(t *testing.T) {
		// "(T)x" never forms a title group; the whole segment is the tag.
		require.Len(t, ParseColumns("(T)x"), 1)
		assert.Empty(t, LintSpec("(T)x"))
	})

	t.Run("should never block parsing", func(t *testing.T) {
		spec := "%0a|a|"
		assert.NotEmpty(t, LintSpec(spec))
		cols := ParseColumns(spec)
		require.Len(t, cols, 2)
	})
}

func Test_LintRegistry(t *testing.T) {
	t.Run("should run custom rules in registration order", func(t *testing.T) {
		reg := NewLintRegistry()
		reg.Register(RuleFunc(func(_ string, descriptors []string, _ []*Column) []Diagnostic {
			if len(descriptors) > 2 {
				return []Diagnostic{NewDiagnostic(Position{}, "too-many-columns", "keep boards narrow", descriptors[0])}
			}
			return nil
		}))
		diags := reg.Lint("a|b|c")
		require.Len(t, diags, 1)
		assert.Equal(t, "too-many-columns", diags[0].Code)
	})

	t.Run("should ignore nil rules", func(t *testing.T) {
		reg := NewLintRegistry()
		reg.Register(nil)
		assert.Empty(t, reg.Lint("a|a"))
	})
}

func Test_Diagnostic(t *testing.T) {
	t.Run("should format position and caret context", func(t *testing.T) {
		d := NewDiagnostic(Position{Descriptor: 0, Offset: 1}, CodeZeroWidth, "column width 0", "%0a")
		assert.Contains(t, d.String(), "descriptor 0, offset 1")
		assert.Equal(t, "%0a\n ^", d.Context)
	})

	t.Run("should omit context for empty descriptors", func(t *testing.T) {
		d := NewDiagnostic(Position{Descriptor: 2}, CodeEmptyDescriptor, "empty", "")
		assert.Empty(t, d.Context)
		assert.NotContains(t, d.String(), "Context")
	})
}
