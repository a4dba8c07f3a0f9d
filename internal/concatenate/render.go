package concatenate

import (
	"bufio"
	"io"
	"strings"

	"github.com/vitruves/bindery/internal/language"
)

const fence = "```"

// Render writes entries in the given order. Each entry is its path, a blank
// line and a fenced block tagged with the language; entries are separated
// by one blank line.
func Render(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(e.Path)
		bw.WriteString("\n\n")
		bw.WriteString(fence)
		bw.WriteString(language.Tag(e.Language))
		bw.WriteString("\n")
		bw.WriteString(e.Content)
		if !strings.HasSuffix(e.Content, "\n") {
			bw.WriteString("\n")
		}
		bw.WriteString(fence)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(entries []Entry) string {
	var b strings.Builder
	_ = Render(&b, entries)
	return b.String()
}
