package language

var (
	doubleQuote = Pair{`"`, `"`}
	singleQuote = Pair{`'`, `'`}
	backtick    = Pair{"`", "`"}
	tripleDQ    = Pair{`"""`, `"""`}
	tripleSQ    = Pair{`'''`, `'''`}

	slashStar = Pair{"/*", "*/"}

	hashLine  = []string{"#"}
	slashLine = []string{"//"}
	dashLine  = []string{"--"}
	semiLine  = []string{";"}

	htmlComment = Pair{"<!--", "-->"}
)

func cStyle(quotes ...Pair) Descriptor {
	return Descriptor{
		Quotes:        quotes,
		LineComments:  slashLine,
		BlockComments: []Pair{slashStar},
	}
}

func hashStyle(quotes ...Pair) Descriptor {
	return Descriptor{Quotes: quotes, LineComments: hashLine}
}

var table = map[Language]entry{
	PlainText: {
		name:       "Plain Text",
		extensions: []string{".txt", ".text"},
	},
	Rust: {
		name:       "Rust",
		tag:        "rust",
		extensions: []string{".rs"},
		desc:       cStyle(doubleQuote),
	},
	TypeScript: {
		name:       "TypeScript",
		tag:        "ts",
		extensions: []string{".ts", ".mts", ".cts"},
		desc:       cStyle(doubleQuote, singleQuote, backtick),
	},
	TSX: {
		name:       "TSX",
		extensions: []string{".tsx"},
		desc:       cStyle(doubleQuote, singleQuote, backtick),
	},
	JavaScript: {
		name:       "JavaScript",
		tag:        "js",
		extensions: []string{".js", ".mjs", ".cjs"},
		desc:       cStyle(doubleQuote, singleQuote, backtick),
	},
	JSX: {
		name:       "JSX",
		extensions: []string{".jsx"},
		desc:       cStyle(doubleQuote, singleQuote, backtick),
	},
	Python: {
		name:       "Python",
		tag:        "python",
		extensions: []string{".py", ".pyw", ".pyi"},
		desc:       hashStyle(tripleDQ, tripleSQ, doubleQuote, singleQuote),
	},
	C: {
		name:       "C",
		tag:        "c",
		extensions: []string{".c"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	CHeader: {
		name:       "C Header",
		extensions: []string{".h"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Cpp: {
		name:       "C++",
		tag:        "cpp",
		extensions: []string{".cpp", ".cc", ".cxx", ".c++"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	CppHeader: {
		name:       "C++ Header",
		extensions: []string{".hpp", ".hh", ".hxx", ".h++"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Go: {
		name:       "Go",
		tag:        "go",
		extensions: []string{".go"},
		desc:       cStyle(doubleQuote, backtick, singleQuote),
	},
	Java: {
		name:       "Java",
		tag:        "java",
		extensions: []string{".java"},
		desc:       cStyle(tripleDQ, doubleQuote, singleQuote),
	},
	Kotlin: {
		name:       "Kotlin",
		tag:        "kotlin",
		extensions: []string{".kt", ".kts"},
		desc:       cStyle(tripleDQ, doubleQuote, singleQuote),
	},
	Swift: {
		name:       "Swift",
		tag:        "swift",
		extensions: []string{".swift"},
		desc:       cStyle(tripleDQ, doubleQuote),
	},
	Ruby: {
		name:       "Ruby",
		tag:        "ruby",
		extensions: []string{".rb", ".rake", ".gemspec"},
		filenames:  []string{"Rakefile", "Gemfile", "Vagrantfile"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  hashLine,
			BlockComments: []Pair{{"=begin", "=end"}},
		},
	},
	Scala: {
		name:       "Scala",
		tag:        "scala",
		extensions: []string{".scala", ".sc"},
		desc:       cStyle(tripleDQ, doubleQuote),
	},
	Haskell: {
		name:       "Haskell",
		tag:        "haskell",
		extensions: []string{".hs", ".lhs"},
		desc: Descriptor{
			Quotes:              []Pair{doubleQuote},
			LineComments:        dashLine,
			NestedBlockComments: []Pair{{"{-", "-}"}},
		},
	},
	CSharp: {
		name:       "C#",
		extensions: []string{".cs"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Dart: {
		name:       "Dart",
		extensions: []string{".dart"},
		desc:       cStyle(tripleDQ, tripleSQ, doubleQuote, singleQuote),
	},
	Zig: {
		name:       "Zig",
		extensions: []string{".zig"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}, LineComments: slashLine},
	},
	PHP: {
		name:       "PHP",
		extensions: []string{".php"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  []string{"//", "#"},
			BlockComments: []Pair{slashStar},
		},
	},
	Lua: {
		name:       "Lua",
		extensions: []string{".lua"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  dashLine,
			BlockComments: []Pair{{"--[[", "]]"}},
		},
	},
	SQL: {
		name:       "SQL",
		extensions: []string{".sql"},
		desc: Descriptor{
			Quotes:        []Pair{singleQuote, doubleQuote},
			LineComments:  dashLine,
			BlockComments: []Pair{slashStar},
		},
	},
	Shell: {
		name:       "Shell",
		extensions: []string{".sh", ".bash", ".zsh", ".fish"},
		desc:       hashStyle(doubleQuote, singleQuote),
	},
	Perl: {
		name:       "Perl",
		extensions: []string{".pl", ".pm"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  hashLine,
			BlockComments: []Pair{{"=pod", "=cut"}},
		},
	},
	R: {
		name:       "R",
		extensions: []string{".r"},
		desc:       hashStyle(doubleQuote, singleQuote),
	},
	Elixir: {
		name:       "Elixir",
		extensions: []string{".ex", ".exs"},
		desc:       hashStyle(tripleDQ, doubleQuote, singleQuote),
	},
	Erlang: {
		name:       "Erlang",
		extensions: []string{".erl", ".hrl"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}, LineComments: []string{"%"}},
	},
	OCaml: {
		name:       "OCaml",
		extensions: []string{".ml", ".mli"},
		desc: Descriptor{
			Quotes:              []Pair{doubleQuote},
			NestedBlockComments: []Pair{{"(*", "*)"}},
		},
	},
	Clojure: {
		name:       "Clojure",
		extensions: []string{".clj", ".cljs", ".cljc", ".edn"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}, LineComments: []string{";"}},
	},
	HTML: {
		name:       "HTML",
		extensions: []string{".html", ".htm", ".xhtml"},
		desc:       Descriptor{BlockComments: []Pair{htmlComment}},
	},
	XML: {
		name:       "XML",
		extensions: []string{".xml", ".svg", ".xsl"},
		desc:       Descriptor{BlockComments: []Pair{htmlComment}},
	},
	CSS: {
		name:       "CSS",
		extensions: []string{".css"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			BlockComments: []Pair{slashStar},
		},
	},
	SCSS: {
		name:       "SCSS",
		extensions: []string{".scss", ".sass", ".less"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	YAML: {
		name:       "YAML",
		extensions: []string{".yaml", ".yml"},
		desc:       hashStyle(doubleQuote, singleQuote),
	},
	TOML: {
		name:       "TOML",
		extensions: []string{".toml"},
		desc:       hashStyle(tripleDQ, tripleSQ, doubleQuote, singleQuote),
	},
	JSON: {
		name:       "JSON",
		extensions: []string{".json"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}},
	},
	Markdown: {
		name:       "Markdown",
		extensions: []string{".md", ".markdown"},
	},
	Makefile: {
		name:       "Makefile",
		extensions: []string{".mk", ".mak"},
		filenames:  []string{"Makefile", "makefile", "GNUmakefile"},
		desc:       hashStyle(),
	},
	Dockerfile: {
		name:       "Dockerfile",
		extensions: []string{".dockerfile"},
		filenames:  []string{"Dockerfile", "Containerfile"},
		desc:       hashStyle(doubleQuote, singleQuote),
	},
	CMake: {
		name:       "CMake",
		extensions: []string{".cmake"},
		filenames:  []string{"CMakeLists.txt"},
		desc:       hashStyle(doubleQuote),
	},
	Protobuf: {
		name:       "Protocol Buffers",
		extensions: []string{".proto"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Vue: {
		name:       "Vue",
		extensions: []string{".vue"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote, backtick},
			LineComments:  slashLine,
			BlockComments: []Pair{htmlComment, slashStar},
		},
	},
	Svelte: {
		name:       "Svelte",
		extensions: []string{".svelte"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote, backtick},
			LineComments:  slashLine,
			BlockComments: []Pair{htmlComment, slashStar},
		},
	},
	ObjectiveC: {
		name:       "Objective-C",
		extensions: []string{".m"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	ObjectiveCpp: {
		name:       "Objective-C++",
		extensions: []string{".mm"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Groovy: {
		name:       "Groovy",
		extensions: []string{".groovy", ".gradle", ".gvy"},
		filenames:  []string{"Jenkinsfile"},
		desc:       cStyle(tripleDQ, tripleSQ, doubleQuote, singleQuote),
	},
	PowerShell: {
		name:       "PowerShell",
		extensions: []string{".ps1", ".psm1", ".psd1"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  hashLine,
			BlockComments: []Pair{{"<#", "#>"}},
		},
	},
	// "REM" only counts with a following space so words like PREMIUM survive.
	Batch: {
		name:       "Batch",
		extensions: []string{".bat", ".cmd"},
		desc: Descriptor{
			Quotes:       []Pair{doubleQuote},
			LineComments: []string{"::", "REM ", "rem ", "@REM ", "@rem "},
		},
	},
	HCL: {
		name:       "HCL",
		extensions: []string{".tf", ".tfvars", ".hcl"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote},
			LineComments:  []string{"#", "//"},
			BlockComments: []Pair{slashStar},
		},
	},
	Julia: {
		name:       "Julia",
		extensions: []string{".jl"},
		desc: Descriptor{
			Quotes:              []Pair{tripleDQ, doubleQuote},
			LineComments:        hashLine,
			NestedBlockComments: []Pair{{"#=", "=#"}},
		},
	},
	FSharp: {
		name:       "F#",
		extensions: []string{".fs", ".fsi", ".fsx"},
		desc: Descriptor{
			Quotes:              []Pair{tripleDQ, doubleQuote},
			LineComments:        slashLine,
			NestedBlockComments: []Pair{{"(*", "*)"}},
		},
	},
	INI: {
		name:       "INI",
		extensions: []string{".ini", ".cfg"},
		desc:       Descriptor{LineComments: []string{";", "#"}},
	},
	GraphQL: {
		name:       "GraphQL",
		extensions: []string{".graphql", ".gql"},
		desc:       hashStyle(tripleDQ, doubleQuote),
	},
	Solidity: {
		name:       "Solidity",
		extensions: []string{".sol"},
		desc:       cStyle(doubleQuote, singleQuote),
	},
	Nim: {
		name:       "Nim",
		extensions: []string{".nim", ".nims", ".nimble"},
		desc: Descriptor{
			Quotes:              []Pair{tripleDQ, doubleQuote},
			LineComments:        hashLine,
			NestedBlockComments: []Pair{{"#[", "]#"}},
		},
	},
	Fortran: {
		name:       "Fortran",
		extensions: []string{".f90", ".f95", ".f03", ".f08", ".f", ".for"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote, singleQuote}, LineComments: []string{"!"}},
	},
	Assembly: {
		name:       "Assembly",
		extensions: []string{".asm", ".nasm"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote, singleQuote}, LineComments: semiLine},
	},
	GnuAssembly: {
		name:       "GNU Assembly",
		extensions: []string{".s"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote},
			LineComments:  []string{"#", "//"},
			BlockComments: []Pair{slashStar},
		},
	},
	VimScript: {
		name:       "Vim Script",
		extensions: []string{".vim"},
		desc:       Descriptor{Quotes: []Pair{singleQuote}, LineComments: []string{`"`}},
	},
	Elm: {
		name:       "Elm",
		extensions: []string{".elm"},
		desc: Descriptor{
			Quotes:              []Pair{tripleDQ, doubleQuote},
			LineComments:        dashLine,
			NestedBlockComments: []Pair{{"{-", "-}"}},
		},
	},
	Nix: {
		name:       "Nix",
		extensions: []string{".nix"},
		desc: Descriptor{
			Quotes:        []Pair{{"''", "''"}, doubleQuote},
			LineComments:  hashLine,
			BlockComments: []Pair{slashStar},
		},
	},
	D: {
		name:       "D",
		extensions: []string{".d", ".di"},
		desc: Descriptor{
			Quotes:              []Pair{doubleQuote, backtick},
			LineComments:        slashLine,
			BlockComments:       []Pair{slashStar},
			NestedBlockComments: []Pair{{"/+", "+/"}},
		},
	},
	Pascal: {
		name:       "Pascal",
		extensions: []string{".pas", ".pp", ".lpr"},
		desc: Descriptor{
			Quotes:        []Pair{singleQuote},
			LineComments:  slashLine,
			BlockComments: []Pair{{"(*", "*)"}, {"{", "}"}},
		},
	},
	VHDL: {
		name:       "VHDL",
		extensions: []string{".vhd", ".vhdl"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}, LineComments: dashLine},
	},
	Verilog: {
		name:       "SystemVerilog",
		extensions: []string{".sv", ".svh"},
		desc:       cStyle(doubleQuote),
	},
	Tcl: {
		name:       "Tcl",
		extensions: []string{".tcl"},
		desc:       hashStyle(doubleQuote),
	},
	Lisp: {
		name:       "Lisp",
		extensions: []string{".lisp", ".lsp", ".el"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote},
			LineComments:  semiLine,
			BlockComments: []Pair{{"#|", "|#"}},
		},
	},
	Scheme: {
		name:       "Scheme",
		extensions: []string{".scm", ".ss"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote},
			LineComments:  semiLine,
			BlockComments: []Pair{{"#|", "|#"}},
		},
	},
	Racket: {
		name:       "Racket",
		extensions: []string{".rkt"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote},
			LineComments:  semiLine,
			BlockComments: []Pair{{"#|", "|#"}},
		},
	},
	CoffeeScript: {
		name:       "CoffeeScript",
		extensions: []string{".coffee"},
		desc: Descriptor{
			Quotes:        []Pair{tripleDQ, tripleSQ, doubleQuote, singleQuote},
			LineComments:  hashLine,
			BlockComments: []Pair{{"###", "###"}},
		},
	},
	Jsonnet: {
		name:       "Jsonnet",
		extensions: []string{".jsonnet", ".libsonnet"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  []string{"//", "#"},
			BlockComments: []Pair{slashStar},
		},
	},
	Gleam: {
		name:       "Gleam",
		extensions: []string{".gleam"},
		desc:       Descriptor{Quotes: []Pair{doubleQuote}, LineComments: slashLine},
	},
	Crystal: {
		name:       "Crystal",
		extensions: []string{".cr"},
		desc:       hashStyle(doubleQuote),
	},
	TeX: {
		name:       "TeX",
		extensions: []string{".tex", ".sty", ".cls"},
		desc:       Descriptor{LineComments: []string{"%"}},
	},
	Thrift: {
		name:       "Thrift",
		extensions: []string{".thrift"},
		desc: Descriptor{
			Quotes:        []Pair{doubleQuote, singleQuote},
			LineComments:  []string{"//", "#"},
			BlockComments: []Pair{slashStar},
		},
	},
	Starlark: {
		name:       "Starlark",
		extensions: []string{".bzl", ".star", ".bazel"},
		filenames:  []string{"BUILD", "WORKSPACE", "Tiltfile"},
		desc:       hashStyle(tripleDQ, tripleSQ, doubleQuote, singleQuote),
	},
	ReStructuredText: {
		name:       "reStructuredText",
		extensions: []string{".rst"},
	},
	AsciiDoc: {
		name:       "AsciiDoc",
		extensions: []string{".adoc", ".asciidoc"},
	},
}
