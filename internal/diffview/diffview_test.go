package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	t.Run("identical texts produce no output", func(t *testing.T) {
		assert.Equal(t, "", Unified("same\ntext\n", "same\ntext\n"))
	})

	t.Run("insertion shows as added lines", func(t *testing.T) {
		before := "<head>\n</head>\n"
		after := "<head>\n<style></style>\n</head>\n"

		out := Unified(before, after)

		require.NotEmpty(t, out)
		assert.Contains(t, out, "+ <style></style>")
		assert.Contains(t, out, "  <head>")
		assert.NotContains(t, out, "- <head>")
	})

	t.Run("replacement shows removed and added lines", func(t *testing.T) {
		before := "a\nload();\n"
		after := "a\ninit();\n"

		out := Unified(before, after)

		assert.Contains(t, out, "- load();")
		assert.Contains(t, out, "+ init();")
	})

	t.Run("every output line is prefixed", func(t *testing.T) {
		out := Unified("one\ntwo\n", "one\nthree\n")

		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			prefix := line[:2]
			assert.Contains(t, []string{"  ", "+ ", "- "}, prefix)
		}
	})
}
