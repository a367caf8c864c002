package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBody(t *testing.T) {
	t.Run("plain text passes through unchanged", func(t *testing.T) {
		lines := FormatBody("hello world")
		require.Len(t, lines, 1)
		require.Len(t, lines[0], 1)
		assert.Equal(t, Segment{Style: StylePlain, Text: "hello world"}, lines[0][0])
	})

	t.Run("mixed bold and mono line", func(t *testing.T) {
		lines := FormatBody("Hi *Aisyah*, you have `120` points")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{
			{Style: StylePlain, Text: "Hi "},
			{Style: StyleBold, Text: "Aisyah"},
			{Style: StylePlain, Text: ", you have "},
			{Style: StyleMono, Text: "120"},
			{Style: StylePlain, Text: " points"},
		}, lines[0])
	})

	t.Run("code spans are opaque to later passes", func(t *testing.T) {
		lines := FormatBody("*a `b*` c*")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{
			{Style: StylePlain, Text: "*a "},
			{Style: StyleMono, Text: "b*"},
			{Style: StylePlain, Text: " c*"},
		}, lines[0])
		for _, seg := range lines[0] {
			assert.NotEqual(t, StyleBold, seg.Style)
		}
	})

	t.Run("block mono runs before inline mono", func(t *testing.T) {
		lines := FormatBody("```code block```")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{{Style: StyleMono, Text: "code block"}}, lines[0])
	})

	t.Run("italic and strikethrough", func(t *testing.T) {
		lines := FormatBody("_soft_ and ~gone~")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{
			{Style: StyleItalic, Text: "soft"},
			{Style: StylePlain, Text: " and "},
			{Style: StyleStrike, Text: "gone"},
		}, lines[0])
	})

	t.Run("unpaired delimiters stay literal", func(t *testing.T) {
		lines := FormatBody("5 * 3 = 15_")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{{Style: StylePlain, Text: "5 * 3 = 15_"}}, lines[0])
	})

	t.Run("empty line renders a visible blank row", func(t *testing.T) {
		lines := FormatBody("first\n\nthird")
		require.Len(t, lines, 3)
		assert.Equal(t, Line{{Style: StylePlain, Text: "\u00a0"}}, lines[1])
	})

	t.Run("empty input yields one placeholder line", func(t *testing.T) {
		lines := FormatBody("")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{{Style: StylePlain, Text: "\u00a0"}}, lines[0])
	})

	t.Run("multiple matches keep source order", func(t *testing.T) {
		lines := FormatBody("*a* b *c*")
		require.Len(t, lines, 1)
		assert.Equal(t, Line{
			{Style: StyleBold, Text: "a"},
			{Style: StylePlain, Text: " b "},
			{Style: StyleBold, Text: "c"},
		}, lines[0])
	})

	t.Run("adversarial delimiter soup does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			FormatBody("***___```~~~***___``` * _ ~ `")
		})
	})
}
