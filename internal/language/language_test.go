package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]Language{
		"src/main.rs":       Rust,
		"web/app.ts":        TypeScript,
		"web/App.tsx":       TSX,
		"lib/index.js":      JavaScript,
		"tool.PY":           Python,
		"kernel/sched.c":    C,
		"kernel/sched.h":    CHeader,
		"engine/world.cpp":  Cpp,
		"engine/world.hpp":  CppHeader,
		"cmd/main.go":       Go,
		"App.java":          Java,
		"build.gradle.kts":  Kotlin,
		"View.swift":        Swift,
		"Rakefile":          Ruby,
		"Vagrantfile":       Ruby,
		"Main.scala":        Scala,
		"Main.hs":           Haskell,
		"Makefile":          Makefile,
		"Dockerfile":        Dockerfile,
		"CMakeLists.txt":    CMake,
		"notes.txt":         PlainText,
		"api/service.proto": Protobuf,
		"web/App.vue":       Vue,
		"web/Comp.svelte":   Svelte,
		"ios/view.m":        ObjectiveC,
		"ios/bridge.mm":     ObjectiveCpp,
		"build.gradle":      Groovy,
		"ci/Job.groovy":     Groovy,
		"Jenkinsfile":       Groovy,
		"run.ps1":           PowerShell,
		"run.bat":           Batch,
		"infra/main.tf":     HCL,
		"calc.jl":           Julia,
		"app.fs":            FSharp,
		"conf.ini":          INI,
		"schema.graphql":    GraphQL,
		"Token.sol":         Solidity,
		"x.nim":             Nim,
		"mod.f90":           Fortran,
		"boot.asm":          Assembly,
		"start.S":           GnuAssembly,
		"plugin.vim":        VimScript,
		"Main.elm":          Elm,
		"flake.nix":         Nix,
		"app.d":             D,
		"unit.pas":          Pascal,
		"alu.vhd":           VHDL,
		"top.sv":            Verilog,
		"init.tcl":          Tcl,
		"init.el":           Lisp,
		"lib.scm":           Scheme,
		"main.rkt":          Racket,
		"app.coffee":        CoffeeScript,
		"main.jsonnet":      Jsonnet,
		"app.gleam":         Gleam,
		"src/app.cr":        Crystal,
		"paper.tex":         TeX,
		"api.thrift":        Thrift,
		"defs.bzl":          Starlark,
		"BUILD":             Starlark,
		"README.rst":        ReStructuredText,
		"guide.adoc":        AsciiDoc,
	}
	for path, want := range cases {
		got, ok := Classify(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, path := range []string{"image.png", "LICENSE", "archive.tar.gz", "out.lock", ".env"} {
		_, ok := Classify(path)
		assert.False(t, ok, path)
	}
}

func TestTag(t *testing.T) {
	tags := map[Language]string{
		Rust:       "rust",
		TypeScript: "ts",
		JavaScript: "js",
		Python:     "python",
		C:          "c",
		Cpp:        "cpp",
		Go:         "go",
		Java:       "java",
		Kotlin:     "kotlin",
		Swift:      "swift",
		Ruby:       "ruby",
		Scala:      "scala",
		Haskell:    "haskell",
		CHeader:    "text",
		Shell:      "text",
		PlainText:  "text",
		Unknown:    "text",
	}
	for lang, want := range tags {
		assert.Equal(t, want, Tag(lang), Name(lang))
	}
}

func TestDescriptorTokensAreNonEmpty(t *testing.T) {
	for _, lang := range All() {
		d := Describe(lang)
		for _, q := range d.Quotes {
			assert.NotEmpty(t, q.Start, Name(lang))
			assert.NotEmpty(t, q.End, Name(lang))
		}
		for _, tok := range d.LineComments {
			assert.NotEmpty(t, tok, Name(lang))
		}
		for _, p := range append(append([]Pair{}, d.BlockComments...), d.NestedBlockComments...) {
			assert.NotEmpty(t, p.Start, Name(lang))
			assert.NotEmpty(t, p.End, Name(lang))
		}
	}
}

// A token listed after a longer token it prefixes would never win a tie the
// other way round, so shorter prefixes must come last.
func TestLongerQuotesComeFirst(t *testing.T) {
	for _, lang := range All() {
		quotes := Describe(lang).Quotes
		for i := range quotes {
			for j := i + 1; j < len(quotes); j++ {
				assert.False(t,
					len(quotes[j].Start) > len(quotes[i].Start) && strings.HasPrefix(quotes[j].Start, quotes[i].Start),
					"%s: %q listed after %q", Name(lang), quotes[j].Start, quotes[i].Start)
			}
		}
	}
}

func TestExtensionsAreUnique(t *testing.T) {
	seen := make(map[string]Language)
	for _, lang := range All() {
		for _, ext := range Extensions(lang) {
			prev, dup := seen[ext]
			require.False(t, dup, "%s claimed by %s and %s", ext, Name(prev), Name(lang))
			seen[ext] = lang
		}
	}
}

func TestAllSortedByName(t *testing.T) {
	langs := All()
	require.NotEmpty(t, langs)
	for i := 1; i < len(langs); i++ {
		assert.LessOrEqual(t, Name(langs[i-1]), Name(langs[i]))
	}
	assert.Equal(t, "Rust", Rust.String())
}
