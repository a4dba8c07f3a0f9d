// Package language classifies source files by name and exposes the comment
// and quote delimiters for each supported language.
package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language identifies one entry of the closed set of supported languages.
type Language int

const (
	Unknown Language = iota
	PlainText
	Rust
	TypeScript
	TSX
	JavaScript
	JSX
	Python
	C
	CHeader
	Cpp
	CppHeader
	Go
	Java
	Kotlin
	Swift
	Ruby
	Scala
	Haskell
	CSharp
	Dart
	Zig
	PHP
	Lua
	SQL
	Shell
	Perl
	R
	Elixir
	Erlang
	OCaml
	Clojure
	HTML
	XML
	CSS
	SCSS
	YAML
	TOML
	JSON
	Markdown
	Makefile
	Dockerfile
	CMake
	Protobuf
	Vue
	Svelte
	ObjectiveC
	ObjectiveCpp
	Groovy
	PowerShell
	Batch
	HCL
	Julia
	FSharp
	INI
	GraphQL
	Solidity
	Nim
	Fortran
	Assembly
	GnuAssembly
	VimScript
	Elm
	Nix
	D
	Pascal
	VHDL
	Verilog
	Tcl
	Lisp
	Scheme
	Racket
	CoffeeScript
	Jsonnet
	Gleam
	Crystal
	TeX
	Thrift
	Starlark
	ReStructuredText
	AsciiDoc
)

// Pair is a start/end delimiter pair such as a quote or a block comment.
type Pair struct {
	Start string
	End   string
}

// Descriptor holds the delimiter tokens of one language. Tokens are matched
// by literal prefix in slice order, so a longer token must precede any
// shorter token that is its prefix.
type Descriptor struct {
	Quotes              []Pair
	LineComments        []string
	BlockComments       []Pair
	NestedBlockComments []Pair
}

type entry struct {
	name       string
	tag        string
	extensions []string
	filenames  []string
	desc       Descriptor
}

var (
	byExtension = make(map[string]Language)
	byFilename  = make(map[string]Language)
)

func init() {
	for lang, e := range table {
		for _, ext := range e.extensions {
			byExtension[ext] = lang
		}
		for _, name := range e.filenames {
			byFilename[name] = lang
		}
	}
}

// Classify resolves the language of path from its file name or extension.
// It reports false when the path maps to no known language.
func Classify(path string) (Language, bool) {
	base := filepath.Base(path)
	if lang, ok := byFilename[base]; ok {
		return lang, true
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return Unknown, false
	}
	lang, ok := byExtension[ext]
	return lang, ok
}

// Describe returns the delimiter table for lang. Unknown languages get an
// empty descriptor, which leaves content untouched when stripping.
func Describe(lang Language) Descriptor {
	return table[lang].desc
}

// Tag returns the short fence identifier used when rendering lang.
func Tag(lang Language) string {
	if e, ok := table[lang]; ok && e.tag != "" {
		return e.tag
	}
	return "text"
}

// Name returns a human readable name for lang.
func Name(lang Language) string {
	if e, ok := table[lang]; ok {
		return e.name
	}
	return "Unknown"
}

func (l Language) String() string {
	return Name(l)
}

// Extensions returns the file extensions and exact file names mapped to lang.
func Extensions(lang Language) []string {
	e := table[lang]
	out := make([]string, 0, len(e.extensions)+len(e.filenames))
	out = append(out, e.extensions...)
	out = append(out, e.filenames...)
	return out
}

// All returns every supported language sorted by name.
func All() []Language {
	langs := make([]Language, 0, len(table))
	for lang := range table {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return Name(langs[i]) < Name(langs[j])
	})
	return langs
}
