// Package comments removes comments from source text using the delimiter
// tables in package language.
//
// The scanner knows three kinds of regions: string literals, comments and
// code. It never parses the language. At every position it tests the rest of
// the line against the descriptor's tokens by literal prefix, first match
// wins. String mode lasts until the end of the line at most; block comment
// mode carries across lines through State.
//
// Nested block comments are tracked flat: only one terminator is recorded,
// so an inner occurrence of the same pair closes the outer comment early.
package comments

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vitruves/bindery/internal/language"
)

const escape = '\\'

// State is the scanner state carried from one line to the next within a
// single file. The zero value is the state at the start of a file.
type State struct {
	InString         bool
	StringTerminator string
	InBlockComment   bool
	BlockTerminator  string
}

// Line is the result of scanning one line.
type Line struct {
	// Text is the code and string content kept from the line.
	Text string
	// Commented reports whether any comment text was removed.
	Commented bool
	// Consumed reports that the whole line sat inside a block comment opened
	// on an earlier line.
	Consumed bool
}

// ScanLine strips the comments from a single line (without its terminating
// newline) and returns the result together with the state for the next line.
func ScanLine(st State, desc language.Descriptor, line string) (Line, State) {
	if st.InBlockComment {
		end := strings.Index(line, st.BlockTerminator)
		if end < 0 {
			return Line{Commented: true, Consumed: true}, st
		}
		st.InBlockComment = false
		rest := line[end+len(st.BlockTerminator):]
		res, next := scanNormal(st, desc, rest)
		res.Commented = true
		if res.Text == "" {
			res.Consumed = true
		}
		return res, next
	}
	return scanNormal(st, desc, line)
}

func scanNormal(st State, desc language.Descriptor, line string) (Line, State) {
	var out strings.Builder
	out.Grow(len(line))
	res := Line{}

	st.InString = false
	st.StringTerminator = ""

	i := 0
	for i < len(line) {
		rest := line[i:]

		if !st.InString {
			if q, ok := matchPair(desc.Quotes, rest); ok {
				st.InString = true
				st.StringTerminator = q.End
				out.WriteString(q.Start)
				i += len(q.Start)
				continue
			}
		} else {
			if strings.HasPrefix(rest, st.StringTerminator) {
				out.WriteString(st.StringTerminator)
				i += len(st.StringTerminator)
				st.InString = false
				st.StringTerminator = ""
				continue
			}
			if rest[0] == escape && len(rest) > 1 {
				_, size := utf8.DecodeRuneInString(rest[1:])
				out.WriteString(rest[:1+size])
				i += 1 + size
				continue
			}
			_, size := utf8.DecodeRuneInString(rest)
			out.WriteString(rest[:size])
			i += size
			continue
		}

		block, ok := matchPair(desc.BlockComments, rest)
		if !ok {
			block, ok = matchPair(desc.NestedBlockComments, rest)
		}
		if ok {
			res.Commented = true
			after := rest[len(block.Start):]
			end := strings.Index(after, block.End)
			if end < 0 {
				st.InBlockComment = true
				st.BlockTerminator = block.End
				break
			}
			i += len(block.Start) + end + len(block.End)
			continue
		}

		if matchToken(desc.LineComments, rest) {
			res.Commented = true
			break
		}

		_, size := utf8.DecodeRuneInString(rest)
		out.WriteString(rest[:size])
		i += size
	}

	// A string left open at the end of the line ends with it.
	st.InString = false
	st.StringTerminator = ""

	res.Text = out.String()
	return res, st
}

func matchPair(pairs []language.Pair, s string) (language.Pair, bool) {
	for _, p := range pairs {
		if strings.HasPrefix(s, p.Start) {
			return p, true
		}
	}
	return language.Pair{}, false
}

func matchToken(tokens []string, s string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return true
		}
	}
	return false
}

// Strip removes every comment from content. Lines left empty by comment
// removal are dropped; blank lines of the original are kept. The result ends
// with a newline exactly when content does.
func Strip(content string, desc language.Descriptor) string {
	if content == "" {
		return ""
	}

	trailing := strings.HasSuffix(content, "\n")
	body := strings.TrimSuffix(content, "\n")
	lines := strings.Split(body, "\n")

	kept := make([]string, 0, len(lines))
	var st State
	for _, raw := range lines {
		line, cr := strings.CutSuffix(raw, "\r")

		var res Line
		res, st = ScanLine(st, desc, line)
		if !res.Commented {
			kept = append(kept, raw)
			continue
		}
		if res.Consumed {
			continue
		}

		text := strings.TrimRight(res.Text, " \t")
		if isBlank(text) && !isBlank(line) {
			continue
		}
		if cr {
			text += "\r"
		}
		kept = append(kept, text)
	}

	out := strings.Join(kept, "\n")
	if trailing && len(kept) > 0 {
		out += "\n"
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
