// Package ignore decides which paths under a scan root are left out of the
// document: user exclusion globs, .gitignore rule files and hidden entries.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// GitignoreFile is the rule file name honoured during a walk.
const GitignoreFile = ".gitignore"

// ErrInvalidPattern is returned for exclusion patterns with bad glob syntax.
var ErrInvalidPattern = errors.New("invalid exclusion pattern")

// Options configures a Matcher.
type Options struct {
	// Patterns are doublestar globs tested against every path component and
	// against the whole root-relative path.
	Patterns []string
	// IncludeHidden disables the dot-file filter.
	IncludeHidden bool
	// Gitignore enables .gitignore rule files found under the root.
	Gitignore bool
}

// Matcher answers exclusion queries for paths relative to one root. It is
// not safe for concurrent use while rule files are being loaded.
type Matcher struct {
	patterns      []string
	includeHidden bool
	gitignore     bool

	// lines holds, per directory with a rule file, the rules of that file
	// and of every ancestor, rewritten relative to the root.
	lines map[string][]string
	rules map[string]*gitignore.GitIgnore
}

// Validate checks every pattern for glob syntax errors.
func Validate(patterns []string) error {
	for _, p := range patterns {
		norm := normalize(p)
		if norm == "" || !doublestar.ValidatePattern(norm) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

func normalize(pattern string) string {
	if pattern == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(pattern))
}

// New returns a Matcher for opts, or an error if a pattern is malformed.
func New(opts Options) (*Matcher, error) {
	if err := Validate(opts.Patterns); err != nil {
		return nil, err
	}
	patterns := make([]string, len(opts.Patterns))
	for i, p := range opts.Patterns {
		patterns[i] = normalize(p)
	}
	return &Matcher{
		patterns:      patterns,
		includeHidden: opts.IncludeHidden,
		gitignore:     opts.Gitignore,
		lines:         make(map[string][]string),
		rules:         make(map[string]*gitignore.GitIgnore),
	}, nil
}

// LoadRules reads the .gitignore file in dir, if any. rel is dir relative to
// the root in slash form ("." for the root itself). Directories must be
// loaded parent first, as a walk visits them. A rule file that cannot be
// read is ignored.
func (m *Matcher) LoadRules(dir, rel string) {
	if !m.gitignore {
		return
	}
	data, err := os.ReadFile(filepath.Join(dir, GitignoreFile))
	if err != nil {
		return
	}

	var own []string
	for _, line := range strings.Split(string(data), "\n") {
		if r, ok := rebase(line, rel); ok {
			own = append(own, r)
		}
	}
	if len(own) == 0 {
		return
	}

	// Ancestor rules come first so a deeper file can override them.
	var all []string
	if _, inherited := m.nearest(rel); inherited != "" {
		all = append(all, m.lines[inherited]...)
	}
	all = append(all, own...)

	m.lines[rel] = all
	m.rules[rel] = gitignore.CompileIgnoreLines(all...)
}

// rebase rewrites one line of the rule file in directory rel so that it
// matches paths relative to the root. Blank lines and comments report false.
func rebase(line, rel string) (string, bool) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	if rel == "." {
		return line, true
	}

	negate := strings.HasPrefix(line, "!")
	pattern := strings.TrimPrefix(line, "!")
	if pattern == "" {
		return "", false
	}

	// A slash anywhere but at the end anchors the pattern to its directory;
	// otherwise it matches at any depth below it.
	if strings.Contains(strings.TrimSuffix(pattern, "/"), "/") {
		pattern = "/" + rel + "/" + strings.TrimPrefix(pattern, "/")
	} else {
		pattern = "/" + rel + "/**/" + pattern
	}
	if negate {
		pattern = "!" + pattern
	}
	return pattern, true
}

// nearest returns the closest strict ancestor of rel that holds rules.
func (m *Matcher) nearest(rel string) (*gitignore.GitIgnore, string) {
	if rel == "." || rel == "" {
		return nil, ""
	}
	for dir := path.Dir(rel); ; dir = path.Dir(dir) {
		if rules, ok := m.rules[dir]; ok {
			return rules, dir
		}
		if dir == "." || dir == "/" {
			return nil, ""
		}
	}
}

// Excluded reports whether the root-relative slash path rel is left out.
// isDir marks directories so that directory-only rules apply.
func (m *Matcher) Excluded(rel string, isDir bool) bool {
	if rel == "." || rel == "" {
		return false
	}
	if !m.includeHidden && Hidden(rel) {
		return true
	}
	if m.matchesPattern(rel) {
		return true
	}
	return m.matchesRules(rel, isDir)
}

func (m *Matcher) matchesPattern(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		for _, part := range parts {
			if ok, _ := doublestar.Match(p, part); ok {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) matchesRules(rel string, isDir bool) bool {
	rules, _ := m.nearest(rel)
	if rules == nil {
		return false
	}
	if isDir {
		rel += "/"
	}
	return rules.MatchesPath(rel)
}

// Hidden reports whether any component of the slash path rel starts with a
// dot. The "." and ".." components do not count.
func Hidden(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
