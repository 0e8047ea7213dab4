// Package diffview renders a line-level preview of a pending patch
// using the sergi/go-diff engine.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var dmp = newMatcher()

func newMatcher() *diffmatchpatch.DiffMatchPatch {
	m := diffmatchpatch.New()
	// Accuracy over speed; the documents are small.
	m.DiffTimeout = 0
	return m
}

// Unified renders the changes between before and after as prefixed
// lines: "  " context, "+ " added, "- " removed. Returns "" when the
// texts are identical.
func Unified(before, after string) string {
	if before == after {
		return ""
	}

	// Line-level reduction avoids newline boundary artifacts.
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// splitLines splits diff text into lines, dropping the empty trailing
// element a final newline produces.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
